package textstyle

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Apply renders text in the given style. Letter styles substitute ASCII
// letters and digits; everything else is copied through byte for byte. The
// underline and strikethrough styles append a combining mark after every
// code point. Unknown styles leave the text as is.
func Apply(text string, style Style) string {
	switch style {
	case Underline:
		return appendMark(text, underlineMark)
	case Strikethrough:
		return appendMark(text, strikethroughMark)
	case BoldUnderline:
		return appendMark(Apply(text, Bold), underlineMark)
	case BoldStrikethrough:
		return appendMark(Apply(text, Bold), strikethroughMark)
	}
	m, ok := styleMaps[style]
	if !ok {
		return text
	}
	var result strings.Builder
	result.Grow(len(text) * 4)
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if styled, ok := m.lookup(r); ok {
			result.WriteRune(styled)
		} else {
			result.WriteString(text[i : i+size])
		}
		i += size
	}
	return result.String()
}

func appendMark(text string, mark rune) string {
	var result strings.Builder
	result.Grow(len(text) * 3)
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		result.WriteString(text[i : i+size])
		result.WriteRune(mark)
		i += size
	}
	return result.String()
}

// applyRune styles a single plain rune. Normal means plain.
func applyRune(r rune, style Style) rune {
	m, ok := styleMaps[style]
	if !ok {
		return r
	}
	styled, _ := m.lookup(r)
	return styled
}

// ApplyAccented is like Apply but also styles accented Latin letters by
// splitting them into a base letter followed by its combining accents, so
// "é" in bold becomes bold "e" plus U+0301. Other characters are untouched.
func ApplyAccented(text string, style Style) string {
	switch style {
	case Underline, Strikethrough:
		return Apply(text, style)
	case BoldUnderline:
		return appendMark(ApplyAccented(text, Bold), underlineMark)
	case BoldStrikethrough:
		return appendMark(ApplyAccented(text, Bold), strikethroughMark)
	}
	if _, ok := styleMaps[style]; !ok {
		return text
	}
	var result strings.Builder
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		chunk := text[i : i+size]
		i += size
		if r >= utf8.RuneSelf {
			if d := norm.NFD.String(chunk); d != chunk && isASCIILetter(rune(d[0])) {
				chunk = d
			}
		}
		result.WriteString(Apply(chunk, style))
	}
	return result.String()
}

// Fold maps styled text back to plain characters using Unicode compatibility
// normalization (NFKC). It also handles look-alikes outside our own tables,
// such as fullwidth or circled letters, but it recomposes accents too, so it
// is not an exact inverse of Apply. Use Strip for that.
func Fold(text string) string {
	return norm.NFKC.String(text)
}

// GraphemeCount returns the number of user-perceived characters in text.
// Combining marks never add to it.
func GraphemeCount(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
