package texting

import (
	"reflect"
	"testing"
)

func TestParseCmdArgs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Simple flags",
			input:    "--all",
			expected: []string{"--all"},
		},
		{
			name:     "Multiple tokens",
			input:    "one two three",
			expected: []string{"one", "two", "three"},
		},
		{
			name:     "Quoted value",
			input:    "set 'a long value' done",
			expected: []string{"set", "a long value", "done"},
		},
		{
			name:     "Escaped quote",
			input:    `it\'s fine`,
			expected: []string{"it's", "fine"},
		},
		{
			name:     "Collapsed spaces",
			input:    "  a   b  ",
			expected: []string{"a", "b"},
		},
		{
			name:     "Empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ParseCmdArgs(tt.input); !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("ParseCmdArgs(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
