package styles

import "testing"

func TestFormatPetalCount(t *testing.T) {
	tests := []struct {
		name     string
		left     int
		total    int
		expected string
	}{
		{"no petals configured", 0, 0, ""},
		{"full flower", 13, 13, "\U0001F33C 13/13"},
		{"some plucked", 9, 13, "\U0001F33C 9/13"},
		{"none left", 0, 13, "\U0001F33C 0/13"},
		{"clamped high", 20, 13, "\U0001F33C 13/13"},
		{"clamped low", -2, 13, "\U0001F33C 0/13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPetalCount(tt.left, tt.total)
			if got != tt.expected {
				t.Errorf("FormatPetalCount(%d, %d) = %q, want %q",
					tt.left, tt.total, got, tt.expected)
			}
		})
	}
}
