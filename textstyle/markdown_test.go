package textstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text",
			in:   "nothing to see here",
			want: "nothing to see here",
		},
		{
			name: "bold and italic",
			in:   "**Hi** and *there*",
			want: Apply("Hi", Bold) + " and " + Apply("there", Italic),
		},
		{
			name: "bold italic",
			in:   "***wow***!",
			want: Apply("wow", BoldItalic) + "!",
		},
		{
			name: "underscores",
			in:   "__strong__ _soft_",
			want: Apply("strong", Bold) + " " + Apply("soft", Italic),
		},
		{
			name: "snake case is not emphasis",
			in:   "call snake_case_name now",
			want: "call snake_case_name now",
		},
		{
			name: "double underscores inside a word are not emphasis",
			in:   "call snake__case__name now",
			want: "call snake__case__name now",
		},
		{
			name: "code and strikethrough",
			in:   "run `go test` ~~never~~",
			want: "run " + Apply("go test", Monospace) + " " + Apply("never", Strikethrough),
		},
		{
			name: "lone asterisks stay",
			in:   "2 * 3 = 6",
			want: "2 * 3 = 6",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderMarkdown(tt.in))
		})
	}
}
