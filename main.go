package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/blixt/unistyle/clipboard"
	"github.com/blixt/unistyle/config"
	"github.com/blixt/unistyle/writer"
)

var (
	// Global flags
	verbose bool
	envFile string

	cfg    *config.Config
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "unistyle",
	Short: "Style plain text with Unicode bold, italic, script and more",
	Long: `unistyle renders ASCII letters and digits as Unicode look-alikes, so that
bold, italic, script, monospace and other looks survive on surfaces that only
take plain text. It can also strip styling, convert between styles while
keeping each character's bold/italic emphasis, and format lists.

Text is taken from the arguments, or from stdin when there are none.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if verbose {
			cfg.LogLevel = zerolog.DebugLevel
		}
		logger = cfg.Logger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", config.EnvFile, "Environment file to load")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput returns the text to work on: the arguments joined by spaces, or
// all of stdin without its final newline.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", fmt.Errorf("no text given; pass it as arguments or pipe it in")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// output writes text and a newline to the command's output, wrapped to the
// terminal width when there is one.
func output(cmd *cobra.Command, text string) error {
	out := cmd.OutOrStdout()
	var w *writer.Writer
	if f, ok := out.(*os.File); ok {
		w = writer.NewTerminal(f)
	} else {
		w = writer.New(out, 0)
	}
	if _, err := fmt.Fprintln(w, text); err != nil {
		return err
	}
	return w.Flush()
}

// maybeCopy copies text to the clipboard when requested. A failed copy is
// logged but does not fail the command.
func maybeCopy(copyOut bool, text string) {
	if copyOut && clipboard.New(logger).Copy(text) {
		logger.Info().Msg("Copied to clipboard")
	}
}
