package textstyle

import (
	"regexp"
	"strings"
)

// Inline markdown emphasis, tried left to right. The longer delimiters come
// first so "***" is not read as "*" around "**...**".
var inlinePattern = regexp.MustCompile("`([^`]+)`" +
	`|\*\*\*([^*]+)\*\*\*` +
	`|\*\*([^*]+)\*\*|\b__([^_]+)__\b` +
	`|~~([^~]+)~~` +
	`|\*([^*\s][^*]*)\*|\b_([^_]+)_\b`)

// Submatch group of inlinePattern to the style it renders with.
var inlineStyles = []Style{
	1: Monospace,
	2: BoldItalic,
	3: Bold,
	4: Bold,
	5: Strikethrough,
	6: Italic,
	7: Italic,
}

// RenderMarkdown replaces inline markdown emphasis (bold, italic, code and
// strikethrough) with the equivalent styled characters. Other markdown is
// left alone.
func RenderMarkdown(text string) string {
	var result strings.Builder
	last := 0
	for _, m := range inlinePattern.FindAllStringSubmatchIndex(text, -1) {
		result.WriteString(text[last:m[0]])
		for group := 1; group < len(inlineStyles); group++ {
			start, end := m[2*group], m[2*group+1]
			if start >= 0 {
				result.WriteString(Apply(text[start:end], inlineStyles[group]))
				break
			}
		}
		last = m[1]
	}
	result.WriteString(text[last:])
	return result.String()
}
