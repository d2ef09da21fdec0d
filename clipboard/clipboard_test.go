package clipboard

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/blixt/unistyle/textstyle"
)

func TestCopyStyled(t *testing.T) {
	var got string
	c := New(zerolog.Nop())
	c.write = func(text string) error {
		got = text
		return nil
	}
	assert.True(t, c.CopyStyled("Hi", textstyle.Bold))
	assert.Equal(t, textstyle.Apply("Hi", textstyle.Bold), got)
}

func TestCopyFailureIsReported(t *testing.T) {
	var logs bytes.Buffer
	c := New(zerolog.New(&logs))
	c.write = func(string) error { return errors.New("permission denied") }
	assert.False(t, c.CopyStyled("Hi", textstyle.Italic))
	assert.Contains(t, logs.String(), "permission denied")
}
