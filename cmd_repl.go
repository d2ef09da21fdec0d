package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/blixt/unistyle/clipboard"
	"github.com/blixt/unistyle/textstyle"
)

const replHelp = `Type text to transform it. Commands:
  :style NAME     apply a style (default)
  :convert NAME   convert keeping emphasis
  :strip          remove styling
  :markdown       render inline markdown
  :list KIND      format lines as a list
  :styles         show available styles
  :copy           copy the last result
  :quit           leave`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Style text interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The liner package makes the input prompt a lot nicer to use, supporting
		// arrow keys and common keyboard shortcuts.
		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)

		r := newREPL(cfg.Style, clipboard.New(logger))
		line.SetCompleter(r.complete)
		fmt.Fprintln(cmd.OutOrStdout(), replHelp)
		for {
			input, err := line.Prompt(r.prompt())
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			} else if err != nil {
				return err
			}
			if strings.TrimSpace(input) == "" {
				continue
			}
			line.AppendHistory(input)
			out, quit, err := r.handle(input)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				continue
			}
			if quit {
				return nil
			}
			if out != "" {
				if err := output(cmd, out); err != nil {
					return err
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// repl holds the state of an interactive session: the current transform and
// the last result.
type repl struct {
	mode      string
	transform func(string) (string, error)
	last      string
	copier    *clipboard.Copier
}

func newREPL(style textstyle.Style, copier *clipboard.Copier) *repl {
	r := &repl{copier: copier}
	r.setStyle(style)
	return r
}

func (r *repl) prompt() string {
	return r.mode + "> "
}

func (r *repl) setStyle(style textstyle.Style) {
	r.mode = string(style)
	r.transform = func(s string) (string, error) { return textstyle.Apply(s, style), nil }
}

// handle runs one line of input and returns what to print.
func (r *repl) handle(input string) (string, bool, error) {
	if !strings.HasPrefix(input, ":") {
		out, err := r.transform(input)
		if err != nil {
			return "", false, err
		}
		r.last = out
		return out, false, nil
	}

	command, arg, _ := strings.Cut(strings.TrimPrefix(input, ":"), " ")
	arg = strings.TrimSpace(arg)
	switch command {
	case "quit", "q", "exit":
		return "", true, nil
	case "help":
		return replHelp, false, nil
	case "style":
		style, err := textstyle.ParseStyle(arg)
		if err != nil {
			return "", false, err
		}
		r.setStyle(style)
	case "convert":
		variant, err := textstyle.ParseStyle(arg)
		if err != nil {
			return "", false, err
		}
		r.mode = "convert " + string(variant)
		r.transform = func(s string) (string, error) { return textstyle.ConvertPreservingEmphasis(s, variant), nil }
	case "strip":
		r.mode = "strip"
		r.transform = func(s string) (string, error) { return textstyle.Strip(s), nil }
	case "markdown":
		r.mode = "markdown"
		r.transform = func(s string) (string, error) { return textstyle.RenderMarkdown(s), nil }
	case "list":
		kind := textstyle.ListKind(arg)
		if _, err := textstyle.ToList(kind, ""); err != nil {
			return "", false, err
		}
		r.mode = "list " + arg
		// Lines are entered one at a time, so "\n" separates items.
		r.transform = func(s string) (string, error) {
			return textstyle.ToList(kind, strings.ReplaceAll(s, `\n`, "\n"))
		}
	case "styles":
		var b strings.Builder
		for _, s := range textstyle.AvailableStyles() {
			fmt.Fprintf(&b, "%-18s %s\n", s.ID, s.Example)
		}
		return strings.TrimSuffix(b.String(), "\n"), false, nil
	case "copy":
		if r.last == "" {
			return "", false, errors.New("nothing to copy yet")
		}
		if !r.copier.Copy(r.last) {
			return "", false, errors.New("could not copy to the clipboard")
		}
		return "Copied.", false, nil
	default:
		return "", false, fmt.Errorf("unknown command %q, try :help", command)
	}
	return "", false, nil
}

func (r *repl) complete(line string) []string {
	if !strings.HasPrefix(line, ":") {
		return nil
	}
	var candidates []string
	for _, command := range []string{":style ", ":convert ", ":strip", ":markdown", ":list ", ":styles", ":copy", ":quit", ":help"} {
		if strings.HasPrefix(command, line) {
			candidates = append(candidates, command)
		}
	}
	if command, prefix, ok := strings.Cut(line, " "); ok {
		var names []string
		switch command {
		case ":style":
			for _, s := range textstyle.AvailableStyles() {
				names = append(names, string(s.ID))
			}
		case ":convert":
			for _, v := range textstyle.Variants() {
				names = append(names, string(v))
			}
		case ":list":
			for _, k := range textstyle.ListKinds() {
				names = append(names, string(k))
			}
		}
		for _, name := range names {
			if strings.HasPrefix(strings.ToLower(name), strings.ToLower(prefix)) {
				candidates = append(candidates, command+" "+name)
			}
		}
	}
	return candidates
}
