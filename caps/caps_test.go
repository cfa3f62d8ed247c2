package caps

import (
	"testing"
	"unsafe"
)

func TestTeX(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Some ACRONYM or SCREAMING or whatever.", `Some \textsc{acronym} or \textsc{screaming} or whatever.`},
		{"Nothing to change.", "Nothing to change."},
		{"A single letter is not capitalized. TWO or more are.", `A single letter is not capitalized. \textsc{two} or more are.`},
		{"BEGIN with caps", `\textsc{begin} with caps`},
		{"BEGINning with caps", "BEGINning with caps"},
		{"Ending with CAPS", `Ending with \textsc{caps}`},
		{"Some A.W.D (Acronym With Dots)", `Some \textsc{a.w.d} (Acronym With Dots)`},
		{"Sentence ending with A.W.D.", `Sentence ending with \textsc{a.w.d}.`},
		{"L'ÉTÉ arrive", `L'\textsc{été} arrive`},
		{"Un MP3 ou un CD", `Un MP3 ou un \textsc{cd}`},
		{"Voir AB.C", `Voir \textsc{ab}.C`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := TeX(tt.input); got != tt.want {
				t.Errorf("TeX(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTeXReturnsInput(t *testing.T) {
	s := "Rien A faire ici."
	if got := TeX(s); unsafe.StringData(got) != unsafe.StringData(s) {
		t.Errorf("TeX(%q) = %q, built a new string", s, got)
	}
}
