package throttler

import "testing"

func TestFingerprint(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		same  bool
	}{
		{
			name:  "Identical text",
			left:  "buy my course",
			right: "buy my course",
			same:  true,
		},
		{
			name:  "Case folded",
			left:  "BUY MY COURSE",
			right: "buy my course",
			same:  true,
		},
		{
			name:  "Whitespace squeezed",
			left:  "buy   my\n\tcourse",
			right: "buy my course",
			same:  true,
		},
		{
			name:  "Surrounding space trimmed",
			left:  "  buy my course  ",
			right: "buy my course",
			same:  true,
		},
		{
			name:  "Unicode composition normalized",
			left:  "café",
			right: "café",
			same:  true,
		},
		{
			name:  "Different text",
			left:  "buy my course",
			right: "sell my course",
			same:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if same := Fingerprint(tt.left) == Fingerprint(tt.right); same != tt.same {
				t.Errorf("Fingerprint(%q) == Fingerprint(%q) is %v, expected %v", tt.left, tt.right, same, tt.same)
			}
		})
	}
}
