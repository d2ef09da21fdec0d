package textstyle

import (
	"errors"
	"fmt"
	"strings"
)

// Style identifies a way of rendering text with plain Unicode code points.
type Style string

const (
	Normal         Style = "normal"
	Bold           Style = "bold"
	Italic         Style = "italic"
	BoldItalic     Style = "boldItalic"
	SansNormal     Style = "sansNormal"
	BoldSans       Style = "boldSans"
	ItalicSans     Style = "italicSans"
	BoldItalicSans Style = "boldItalicSans"
	Script         Style = "script"
	Fraktur        Style = "fraktur"
	Monospace      Style = "monospace"
	DoubleStruck   Style = "doublestruck"

	Underline         Style = "underline"
	Strikethrough     Style = "strikethrough"
	BoldUnderline     Style = "boldUnderline"
	BoldStrikethrough Style = "boldStrikethrough"
)

const (
	underlineMark     = '\u0332' // COMBINING LOW LINE
	strikethroughMark = '\u0336' // COMBINING LONG STROKE OVERLAY
)

var ErrUnknownStyle = errors.New("unknown style")

// blockStart describes where a style's letters and digits live. A zero value
// means the style has no glyphs for that range.
type blockStart struct {
	upper, lower, digit rune
	// Letters whose slot in the contiguous block is reserved because the glyph
	// was encoded earlier in Letterlike Symbols.
	exceptions map[rune]rune
}

// letterStyles is the fixed iteration order used when merging tables.
var letterStyles = []Style{
	Bold, Italic, BoldItalic,
	SansNormal, BoldSans, ItalicSans, BoldItalicSans,
	Script, Fraktur, Monospace, DoubleStruck,
}

var blocks = map[Style]blockStart{
	Bold:       {upper: 0x1D400, lower: 0x1D41A, digit: 0x1D7CE},
	Italic:     {upper: 0x1D434, lower: 0x1D44E, exceptions: map[rune]rune{'h': 'ℎ'}},
	BoldItalic: {upper: 0x1D468, lower: 0x1D482},

	SansNormal:     {upper: 0x1D5A0, lower: 0x1D5BA, digit: 0x1D7E2},
	BoldSans:       {upper: 0x1D5D4, lower: 0x1D5EE, digit: 0x1D7EC},
	ItalicSans:     {upper: 0x1D608, lower: 0x1D622},
	BoldItalicSans: {upper: 0x1D63C, lower: 0x1D656},

	Script: {upper: 0x1D49C, lower: 0x1D4B6, exceptions: map[rune]rune{
		'B': 'ℬ', 'E': 'ℰ', 'F': 'ℱ', 'H': 'ℋ', 'I': 'ℐ', 'L': 'ℒ', 'M': 'ℳ', 'R': 'ℛ',
		'e': 'ℯ', 'g': 'ℊ', 'o': 'ℴ',
	}},
	Fraktur: {upper: 0x1D504, lower: 0x1D51E, exceptions: map[rune]rune{
		'C': 'ℭ', 'H': 'ℌ', 'I': 'ℑ', 'R': 'ℜ', 'Z': 'ℨ',
	}},
	Monospace: {upper: 0x1D670, lower: 0x1D68A, digit: 0x1D7F6},
	DoubleStruck: {upper: 0x1D538, lower: 0x1D552, digit: 0x1D7D8, exceptions: map[rune]rune{
		'C': 'ℂ', 'H': 'ℍ', 'N': 'ℕ', 'P': 'ℙ', 'Q': 'ℚ', 'R': 'ℝ', 'Z': 'ℤ',
	}},
}

// styleMap holds the per-range tables of a single letter style.
type styleMap struct {
	upper, lower, digits map[rune]rune
}

func (m styleMap) lookup(r rune) (rune, bool) {
	if s, ok := m.upper[r]; ok {
		return s, true
	}
	if s, ok := m.lower[r]; ok {
		return s, true
	}
	if m.digits != nil {
		if s, ok := m.digits[r]; ok {
			return s, true
		}
	}
	return r, false
}

var styleMaps = buildStyleMaps()

func buildStyleMaps() map[Style]styleMap {
	maps := make(map[Style]styleMap, len(blocks))
	for style, b := range blocks {
		m := styleMap{
			upper: make(map[rune]rune, 26),
			lower: make(map[rune]rune, 26),
		}
		for i := rune(0); i < 26; i++ {
			m.upper['A'+i] = b.upper + i
			m.lower['a'+i] = b.lower + i
		}
		for from, to := range b.exceptions {
			if from >= 'A' && from <= 'Z' {
				m.upper[from] = to
			} else {
				m.lower[from] = to
			}
		}
		if b.digit != 0 {
			m.digits = make(map[rune]rune, 10)
			for i := rune(0); i < 10; i++ {
				m.digits['0'+i] = b.digit + i
			}
		}
		maps[style] = m
	}
	return maps
}

var styleIDs = func() map[string]Style {
	ids := make(map[string]Style)
	for _, s := range append([]Style{Normal, Underline, Strikethrough, BoldUnderline, BoldStrikethrough}, letterStyles...) {
		ids[strings.ToLower(string(s))] = s
	}
	return ids
}()

// ParseStyle returns the style with the given identifier, ignoring case.
func ParseStyle(s string) (Style, error) {
	if style, ok := styleIDs[strings.ToLower(strings.TrimSpace(s))]; ok {
		return style, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// IsCombining reports whether the style is expressed with combining marks
// rather than letter substitution.
func (s Style) IsCombining() bool {
	switch s {
	case Underline, Strikethrough, BoldUnderline, BoldStrikethrough:
		return true
	}
	return false
}
