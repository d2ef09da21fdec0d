package textstyle

import (
	"fmt"
	"strconv"
	"strings"
)

// ListKind selects the marker placed in front of each line by ToList.
type ListKind string

const (
	BulletList     ListKind = "bullet"
	NumberedList   ListKind = "numbered"
	CheckboxList   ListKind = "checkbox"
	AscendingList  ListKind = "ascending"
	DescendingList ListKind = "descending"
)

// ListKinds returns every supported list kind.
func ListKinds() []ListKind {
	return []ListKind{BulletList, NumberedList, CheckboxList, AscendingList, DescendingList}
}

func ToBulletList(text string) string     { return prefixLines(text, fixedMarker("• ")) }
func ToCheckboxList(text string) string   { return prefixLines(text, fixedMarker("☐ ")) }
func ToAscendingList(text string) string  { return prefixLines(text, fixedMarker("↑ ")) }
func ToDescendingList(text string) string { return prefixLines(text, fixedMarker("↓ ")) }

func ToNumberedList(text string) string {
	return prefixLines(text, func(n int) string {
		return strconv.Itoa(n) + ". "
	})
}

// ToList formats text as a list of the given kind.
func ToList(kind ListKind, text string) (string, error) {
	switch kind {
	case BulletList:
		return ToBulletList(text), nil
	case NumberedList:
		return ToNumberedList(text), nil
	case CheckboxList:
		return ToCheckboxList(text), nil
	case AscendingList:
		return ToAscendingList(text), nil
	case DescendingList:
		return ToDescendingList(text), nil
	}
	return "", fmt.Errorf("unknown list kind %q", kind)
}

func fixedMarker(marker string) func(int) string {
	return func(int) string { return marker }
}

// prefixLines trims every line, drops the blank ones and prefixes the rest
// with marker(n), where n counts kept lines from 1.
func prefixLines(text string, marker func(n int) string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, marker(len(lines)+1)+line)
	}
	return strings.Join(lines, "\n")
}
