package textstyle

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Emphasis is the bold/italic weight of a character, independent of the
// family (serif, sans-serif) it is drawn in.
type Emphasis int

const (
	EmphasisNone Emphasis = iota
	EmphasisBold
	EmphasisItalic
	EmphasisBoldItalic
)

func (e Emphasis) String() string {
	switch e {
	case EmphasisBold:
		return "bold"
	case EmphasisItalic:
		return "italic"
	case EmphasisBoldItalic:
		return "boldItalic"
	}
	return "none"
}

func (e Emphasis) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Emphasis) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*e = EmphasisNone
	case "bold":
		*e = EmphasisBold
	case "italic":
		*e = EmphasisItalic
	case "boldItalic":
		*e = EmphasisBoldItalic
	default:
		return fmt.Errorf("unknown emphasis %q", text)
	}
	return nil
}

// Script, fraktur, monospace, double-struck and plain sans-serif are their own
// visual families and carry no emphasis.
var styleEmphasis = map[Style]Emphasis{
	Bold:           EmphasisBold,
	BoldSans:       EmphasisBold,
	Italic:         EmphasisItalic,
	ItalicSans:     EmphasisItalic,
	BoldItalic:     EmphasisBoldItalic,
	BoldItalicSans: EmphasisBoldItalic,
}

// variantEmphasis says which style each emphasis level turns into when text
// is converted to a variant. Normal as a target means plain ASCII.
var variantEmphasis = map[Style][4]Style{
	//                EmphasisNone  EmphasisBold    EmphasisItalic  EmphasisBoldItalic
	Normal:         {Normal, Bold, Italic, BoldItalic},
	Bold:           {Bold, Bold, BoldItalic, BoldItalic},
	Italic:         {Italic, BoldItalic, Italic, BoldItalic},
	BoldItalic:     {BoldItalic, BoldItalic, BoldItalic, BoldItalic},
	SansNormal:     {SansNormal, BoldSans, ItalicSans, BoldItalicSans},
	BoldSans:       {BoldSans, BoldSans, BoldItalicSans, BoldItalicSans},
	ItalicSans:     {ItalicSans, BoldItalicSans, ItalicSans, BoldItalicSans},
	BoldItalicSans: {BoldItalicSans, BoldItalicSans, BoldItalicSans, BoldItalicSans},
	Script:         {Script, Script, Script, Script},
	Monospace:      {Monospace, Monospace, Monospace, Monospace},
	DoubleStruck:   {DoubleStruck, DoubleStruck, DoubleStruck, DoubleStruck},
}

// Variants returns the styles that ConvertPreservingEmphasis accepts, in
// picker order.
func Variants() []Style {
	return []Style{
		Normal, Bold, Italic, BoldItalic,
		SansNormal, BoldSans, ItalicSans, BoldItalicSans,
		Script, Monospace, DoubleStruck,
	}
}

// DetectEmphasis returns the plain character behind r and the emphasis it was
// styled with. Characters that are not styled come back unchanged with
// EmphasisNone.
func DetectEmphasis(r rune) (rune, Emphasis) {
	e, ok := reverse()[r]
	if !ok {
		return r, EmphasisNone
	}
	return e.plain, styleEmphasis[e.style]
}

// ConvertPreservingEmphasis re-renders text in the given variant while keeping
// each character's bold/italic emphasis. Combining marks such as underline and
// strikethrough stay attached to the character they followed. Text is
// returned as is when the variant has no emphasis mapping.
func ConvertPreservingEmphasis(text string, variant Style) string {
	targets, ok := variantEmphasis[variant]
	if !ok {
		return text
	}
	var result strings.Builder
	result.Grow(len(text))
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cluster := gr.Str()
		base, size := utf8.DecodeRuneInString(cluster)
		if (base == utf8.RuneError && size <= 1) || hasVariationSelector(cluster[size:]) {
			// Keycaps and other emoji sequences must keep their base.
			result.WriteString(cluster)
			continue
		}
		plain, emphasis := DetectEmphasis(base)
		result.WriteRune(applyRune(plain, targets[emphasis]))
		result.WriteString(cluster[size:])
	}
	return result.String()
}

func hasVariationSelector(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Variation_Selector, r) {
			return true
		}
	}
	return false
}
