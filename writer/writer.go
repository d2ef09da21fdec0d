package writer

import (
	"io"
	"os"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

// MaxLineWidth caps the wrap width on wide terminals.
const MaxLineWidth = 100

// Writer wraps text at a column width counted in grapheme clusters, which
// keeps styled letters (four bytes each) and combining underline or
// strikethrough marks (no width) from throwing the count off.
type Writer struct {
	out   io.Writer
	width int

	mu         sync.Mutex
	pending    []byte // last cluster, which a later write may still extend
	word       []byte
	wordWidth  int
	lineLength int
}

// New returns a Writer that wraps at width. A width of zero or less disables
// wrapping.
func New(out io.Writer, width int) *Writer {
	return &Writer{out: out, width: width}
}

// NewTerminal returns a Writer for f that wraps at the terminal width, capped
// at MaxLineWidth. Output that isn't a terminal is not wrapped.
func NewTerminal(f *os.File) *Writer {
	width := 0
	if term.IsTerminal(int(f.Fd())) {
		width = MaxLineWidth
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w < width {
			width = w
		}
	}
	return New(f, width)
}

// Write buffers p and emits every complete grapheme cluster. All of p is
// taken even when writing to the underlying writer fails, so n is always
// len(p).
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = append(w.pending, p...)
	rest, err := w.emitAll(w.pending, false)
	w.pending = append(w.pending[:0], rest...)
	return len(p), err
}

// Flush writes out anything still held back. Call it after the last Write.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.emitAll(w.pending, true); err != nil {
		return err
	}
	w.pending = w.pending[:0]
	return w.flushWord()
}

// emitAll emits every complete cluster in b and returns what it held back.
func (w *Writer) emitAll(b []byte, final bool) ([]byte, error) {
	state := -1
	for len(b) > 0 {
		cluster, rest, boundaries, newState := uniseg.Step(b, state)
		if len(rest) == 0 && !final {
			return b, nil
		}
		if err := w.emit(cluster, boundaries>>uniseg.ShiftWidth); err != nil {
			return rest, err
		}
		b, state = rest, newState
	}
	return nil, nil
}

func (w *Writer) emit(cluster []byte, width int) error {
	if w.width <= 0 {
		_, err := w.out.Write(cluster)
		return err
	}
	r, _ := utf8.DecodeRune(cluster)
	switch {
	case r == '\n' || r == '\r':
		if err := w.flushWord(); err != nil {
			return err
		}
		w.lineLength = 0
		_, err := w.out.Write(cluster)
		return err
	case unicode.IsSpace(r):
		if err := w.flushWord(); err != nil {
			return err
		}
		if w.lineLength+width > w.width {
			// If whitespace is what causes the line to break, don't print it.
			w.lineLength = 0
			_, err := io.WriteString(w.out, "\n")
			return err
		}
		w.lineLength += width
		_, err := w.out.Write(cluster)
		return err
	}
	w.word = append(w.word, cluster...)
	w.wordWidth += width
	if w.wordWidth >= w.width {
		// The word fills a whole line on its own, so break it here.
		return w.flushWord()
	}
	return nil
}

// flushWord writes the current word, moving it to the next line if it doesn't
// fit on this one.
func (w *Writer) flushWord() error {
	if len(w.word) == 0 {
		return nil
	}
	if w.lineLength > 0 && w.lineLength+w.wordWidth > w.width {
		if _, err := io.WriteString(w.out, "\n"); err != nil {
			return err
		}
		w.lineLength = 0
	}
	if _, err := w.out.Write(w.word); err != nil {
		return err
	}
	w.lineLength += w.wordWidth
	w.word = w.word[:0]
	w.wordWidth = 0
	return nil
}
