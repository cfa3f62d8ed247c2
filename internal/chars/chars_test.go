package chars

import "testing"

func TestIsSpace(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"space", ' ', true},
		{"no-break space", NBSP, true},
		{"narrow no-break space", NNBSP, true},
		{"demi em space", DemiEm, true},
		{"tab", '\t', false},
		{"newline", '\n', false},
		{"carriage return", '\r', false},
		{"em space", '\u2003', false},
		{"letter", 'a', false},
		{"marker", Marker, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSpace(tt.r); got != tt.want {
				t.Errorf("IsSpace(%q U+%04X) = %v, want %v", tt.r, tt.r, got, tt.want)
			}
		})
	}
}

func TestIsNoBreak(t *testing.T) {
	for _, r := range []rune{NBSP, NNBSP, DemiEm} {
		if !IsNoBreak(r) {
			t.Errorf("IsNoBreak(U+%04X) = false, want true", r)
		}
	}
	if IsNoBreak(' ') {
		t.Error("IsNoBreak(' ') = true, want false")
	}
}
