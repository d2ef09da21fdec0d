package textstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLists(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{
			name: "bullet drops blank lines",
			fn:   ToBulletList,
			in:   "a\n\nb",
			want: "• a\n• b",
		},
		{
			name: "numbered",
			fn:   ToNumberedList,
			in:   "x\ny\nz",
			want: "1. x\n2. y\n3. z",
		},
		{
			name: "numbered counts only kept lines",
			fn:   ToNumberedList,
			in:   "\n  first  \n\t\nsecond\r\n",
			want: "1. first\n2. second",
		},
		{
			name: "checkbox",
			fn:   ToCheckboxList,
			in:   "milk\neggs",
			want: "☐ milk\n☐ eggs",
		},
		{
			name: "ascending",
			fn:   ToAscendingList,
			in:   "low\nhigh",
			want: "↑ low\n↑ high",
		},
		{
			name: "descending",
			fn:   ToDescendingList,
			in:   "high\nlow",
			want: "↓ high\n↓ low",
		},
		{
			name: "only blank lines",
			fn:   ToBulletList,
			in:   "\n \n",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.in))
		})
	}
}

func TestToList(t *testing.T) {
	for _, kind := range ListKinds() {
		_, err := ToList(kind, "a")
		require.NoError(t, err, "kind %s", kind)
	}
	got, err := ToList(NumberedList, "a\nb")
	require.NoError(t, err)
	assert.Equal(t, "1. a\n2. b", got)

	_, err = ToList("roman", "a")
	require.Error(t, err)
}
