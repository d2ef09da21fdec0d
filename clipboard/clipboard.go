package clipboard

import (
	"errors"

	sysclip "github.com/atotto/clipboard"
	"github.com/rs/zerolog"

	"github.com/blixt/unistyle/textstyle"
)

var errUnsupported = errors.New("no clipboard utility available")

// Copier puts styled text on the system clipboard.
type Copier struct {
	logger zerolog.Logger
	write  func(string) error
}

func New(logger zerolog.Logger) *Copier {
	return &Copier{logger: logger, write: writeSystem}
}

func writeSystem(text string) error {
	if sysclip.Unsupported {
		return errUnsupported
	}
	return sysclip.WriteAll(text)
}

// CopyStyled styles text and copies it to the clipboard. It reports whether
// the copy succeeded; failures are logged and never retried.
func (c *Copier) CopyStyled(text string, style textstyle.Style) bool {
	return c.Copy(textstyle.Apply(text, style))
}

// Copy copies text as is.
func (c *Copier) Copy(text string) bool {
	if err := c.write(text); err != nil {
		c.logger.Warn().Err(err).Msg("Could not copy to clipboard")
		return false
	}
	c.logger.Debug().Int("graphemes", textstyle.GraphemeCount(text)).Msg("Copied to clipboard")
	return true
}
