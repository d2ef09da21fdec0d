package textstyle

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"
)

type reverseEntry struct {
	plain rune
	style Style
}

var (
	reverseOnce  sync.Once
	reverseTable map[rune]reverseEntry
)

// reverse returns the merged styled-to-plain table, building it on first use.
func reverse() map[rune]reverseEntry {
	reverseOnce.Do(func() {
		table, err := buildReverse(letterStyles)
		if err != nil {
			// The style tables are constants; a collision is a bug in them.
			panic(err)
		}
		reverseTable = table
	})
	return reverseTable
}

func buildReverse(styles []Style) (map[rune]reverseEntry, error) {
	table := make(map[rune]reverseEntry, len(styles)*62)
	for _, style := range styles {
		m := styleMaps[style]
		for _, part := range []map[rune]rune{m.upper, m.lower, m.digits} {
			for plain, styled := range part {
				if prev, ok := table[styled]; ok {
					return nil, fmt.Errorf("code point %U is produced by both %s(%q) and %s(%q)", styled, prev.style, prev.plain, style, plain)
				}
				table[styled] = reverseEntry{plain: plain, style: style}
			}
		}
	}
	return table, nil
}

var markRemover = strings.NewReplacer(string(underlineMark), "", string(strikethroughMark), "")

// Strip removes all formatting from text, returning plain ASCII letters and
// digits and dropping underline and strikethrough marks.
func Strip(text string) string {
	return StripFormatting(text, false)
}

// StripFormatting maps every styled letter or digit back to its ASCII source.
// Underline and strikethrough marks are removed unless preserveCombining is
// set.
func StripFormatting(text string, preserveCombining bool) string {
	if !preserveCombining {
		text = markRemover.Replace(text)
	}
	table := reverse()
	var result strings.Builder
	result.Grow(len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if e, ok := table[r]; ok {
			result.WriteRune(e.plain)
		} else {
			result.WriteString(text[i : i+size])
		}
		i += size
	}
	return result.String()
}
