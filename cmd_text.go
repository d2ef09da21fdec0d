package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/blixt/unistyle/textstyle"
)

var (
	styleFlag     string
	accentsFlag   bool
	copyFlag      bool
	keepMarksFlag bool
	variantFlag   string
	kindFlag      string
	yamlFlag      bool
)

var applyCmd = &cobra.Command{
	Use:   "apply [text]",
	Short: "Render text in a style",
	Long: `Renders ASCII letters and digits in the given style. Other characters are
left alone. The default style comes from UNISTYLE_STYLE.

Example:
  unistyle apply --style script Hello there`,
	RunE: func(cmd *cobra.Command, args []string) error {
		style := cfg.Style
		if styleFlag != "" {
			var err error
			if style, err = textstyle.ParseStyle(styleFlag); err != nil {
				return err
			}
		}
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		var styled string
		if accentsFlag {
			styled = textstyle.ApplyAccented(text, style)
		} else {
			styled = textstyle.Apply(text, style)
		}
		logger.Debug().Str("style", string(style)).Int("graphemes", textstyle.GraphemeCount(styled)).Msg("Applied style")
		maybeCopy(copyFlag, styled)
		return output(cmd, styled)
	},
}

var stripCmd = &cobra.Command{
	Use:   "strip [text]",
	Short: "Turn styled text back into plain text",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		return output(cmd, textstyle.StripFormatting(text, keepMarksFlag))
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [text]",
	Short: "Convert styled text to another variant, keeping bold and italic",
	Long: `Re-renders text in a variant while keeping each character's emphasis, so
bold stays bold and italic stays italic. Underline and strikethrough marks are
kept. The default variant comes from UNISTYLE_VARIANT.

Variants: ` + variantList(),
	RunE: func(cmd *cobra.Command, args []string) error {
		variant := cfg.Variant
		if variantFlag != "" {
			var err error
			if variant, err = textstyle.ParseStyle(variantFlag); err != nil {
				return err
			}
		}
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		converted := textstyle.ConvertPreservingEmphasis(text, variant)
		maybeCopy(copyFlag, converted)
		return output(cmd, converted)
	},
}

var detectCmd = &cobra.Command{
	Use:   "detect [text]",
	Short: "Show the plain character and emphasis behind each character",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CHAR\tCODE\tPLAIN\tEMPHASIS")
		for _, r := range text {
			plain, emphasis := textstyle.DetectEmphasis(r)
			fmt.Fprintf(tw, "%q\t%U\t%q\t%s\n", r, r, plain, emphasis)
		}
		return tw.Flush()
	},
}

var listCmd = &cobra.Command{
	Use:   "list [text]",
	Short: "Format lines as a list",
	Long: `Formats each non-blank line as a list item. Kinds: bullet, numbered,
checkbox, ascending, descending.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		list, err := textstyle.ToList(textstyle.ListKind(kindFlag), text)
		if err != nil {
			return err
		}
		return output(cmd, list)
	},
}

var markdownCmd = &cobra.Command{
	Use:   "markdown [text]",
	Short: "Render inline markdown emphasis as styled text",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		rendered := textstyle.RenderMarkdown(text)
		maybeCopy(copyFlag, rendered)
		return output(cmd, rendered)
	},
}

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the available styles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		styles := textstyle.AvailableStyles()
		if yamlFlag {
			data, err := yaml.Marshal(styles)
			if err != nil {
				return fmt.Errorf("failed to marshal styles: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, s := range styles {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.Name, s.Example)
		}
		return tw.Flush()
	},
}

func variantList() string {
	var names []string
	for _, v := range textstyle.Variants() {
		names = append(names, string(v))
	}
	return strings.Join(names, ", ")
}

func init() {
	applyCmd.Flags().StringVarP(&styleFlag, "style", "s", "", "Style to apply, see the styles command")
	applyCmd.Flags().BoolVar(&accentsFlag, "accents", false, "Also style accented Latin letters")
	stripCmd.Flags().BoolVar(&keepMarksFlag, "keep-marks", false, "Keep underline and strikethrough")
	convertCmd.Flags().StringVarP(&variantFlag, "variant", "t", "", "Variant to convert to")
	listCmd.Flags().StringVarP(&kindFlag, "kind", "k", string(textstyle.BulletList), "List kind")
	stylesCmd.Flags().BoolVar(&yamlFlag, "yaml", false, "Print the catalog as YAML")
	for _, cmd := range []*cobra.Command{applyCmd, convertCmd, markdownCmd} {
		cmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Also copy the result to the clipboard")
	}

	rootCmd.AddCommand(applyCmd, stripCmd, convertCmd, detectCmd, listCmd, markdownCmd, stylesCmd)
}
