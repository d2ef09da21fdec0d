package textstyle

// StyleInfo describes a style for pickers.
type StyleInfo struct {
	ID      Style  `json:"id"`
	Name    string `json:"name"`
	Example string `json:"example"`
}

const exampleText = "Abc"

var catalog = []struct {
	id   Style
	name string
}{
	{Normal, "Normal"},
	{Bold, "Bold"},
	{Italic, "Italic"},
	{BoldItalic, "Bold Italic"},
	{SansNormal, "Sans-Serif"},
	{BoldSans, "Sans-Serif Bold"},
	{ItalicSans, "Sans-Serif Italic"},
	{BoldItalicSans, "Sans-Serif Bold Italic"},
	{Script, "Script"},
	{Fraktur, "Fraktur"},
	{Monospace, "Monospace"},
	{DoubleStruck, "Double-Struck"},
	{Underline, "Underline"},
	{Strikethrough, "Strikethrough"},
	{BoldUnderline, "Bold Underline"},
	{BoldStrikethrough, "Bold Strikethrough"},
}

// AvailableStyles lists every style with a display name and "Abc" rendered in
// that style.
func AvailableStyles() []StyleInfo {
	infos := make([]StyleInfo, len(catalog))
	for i, c := range catalog {
		infos[i] = StyleInfo{ID: c.id, Name: c.name, Example: Apply(exampleText, c.id)}
	}
	return infos
}
