package clean

import "testing"

func TestDashes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"foo - bar", "foo - bar"},
		{"foo -- bar", "foo – bar"},
		{"foo --- bar", "foo — bar"},
		{"foo --- bar--", "foo — bar–"},
		{"--- Hi, he said -- unexpectedly", "— Hi, he said – unexpectedly"},
		{"a----b", "a—-b"},
		{"a-----b", "a—–b"},
		{"é--è", "é–è"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Dashes(tt.input); got != tt.want {
				t.Errorf("Dashes(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGuillemets(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<< Foo >>", "« Foo »"},
		{"<< Foo", "« Foo"},
		{"Foo >>", "Foo »"},
		{"<< Foo < Bar >>", "« Foo < Bar »"},
		{"a >> b << c", "a » b « c"},
		{"<<<", "«<"},
		{"x < y > z", "x < y > z"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Guillemets(tt.input); got != tt.want {
				t.Errorf("Guillemets(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEllipsis(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"three dots", "Foo...", "Foo…"},
		{"three dots then word", "Foo... Bar", "Foo… Bar"},
		{"four dots keep the last", "foo....", "foo…."},
		{"two dots untouched", "foo..", "foo.."},
		{"spaced dots", "foo. . . ", "foo.\u00a0.\u00a0. "},
		{"spaced dots before a dot", "foo. . . .", "foo.\u00a0.\u00a0.\u00a0."},
		{"spaced dots then word", "Euh. . . bon", "Euh.\u00a0.\u00a0. bon"},
		{"spaced without trailing space", "foo. . .", "foo. . ."},
		{"six dots", "......", "……"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ellipsis(tt.input); got != tt.want {
				t.Errorf("Ellipsis(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLigaturesIdempotent(t *testing.T) {
	inputs := []string{
		"foo --- bar -- baz ---- qux",
		"<< Foo < Bar >> <<<",
		"foo.... bar. . . . baz. . . end...",
		"Finding  some  random strings -- possibly exposing   all features -- is not 'easy'. . . ",
	}
	passes := map[string]func(string) string{
		"Dashes":     Dashes,
		"Guillemets": Guillemets,
		"Ellipsis":   Ellipsis,
	}

	for name, pass := range passes {
		for _, s := range inputs {
			once := pass(s)
			twice := pass(once)
			if once != twice {
				t.Errorf("%s not idempotent on %q: %q then %q", name, s, once, twice)
			}
		}
	}
}
