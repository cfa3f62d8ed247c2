package escape

import (
	"testing"
	"unsafe"
)

const plain = "Some string without any character to escape"

func TestReturnsInputWhenNothingToEscape(t *testing.T) {
	funcs := map[string]func(string) string{
		"HTML":         HTML,
		"TeX":          TeX,
		"NBSpacesHTML": NBSpacesHTML,
		"NBSpacesTeX":  NBSpacesTeX,
		"Quotes":       Quotes,
	}
	for name, fn := range funcs {
		t.Run(name, func(t *testing.T) {
			got := fn(plain)
			if got != plain {
				t.Fatalf("%s(%q) = %q", name, plain, got)
			}
			if unsafe.StringData(got) != unsafe.StringData(plain) {
				t.Errorf("%s built a new string", name)
			}
		})
	}
}

func TestHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<p>Some characters need escaping & something</p>", "&lt;p&gt;Some characters need escaping &amp; something&lt;/p&gt;"},
		{"<foo> & <bar>", "&lt;foo&gt; &amp; &lt;bar&gt;"},
		{"Déjà & « voilà »", "Déjà &amp; « voilà »"},
		{"&amp;", "&amp;amp;"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := HTML(tt.input); got != tt.want {
				t.Errorf("HTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTeX(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`\foo{bar}`, `\textbackslash{}foo\{bar\}`},
		{"foo[bar]", "foo{[}bar{]}"},
		{"--foo, ---bar", "-{}-foo, -{}-{}-bar"},
		{"a-b", "a-b"},
		{"30000$ is 10% of number #1 income", `30000\$ is 10\% of number \#1 income`},
		{"command --foo # calls command with option foo", `command -{}-foo \# calls command with option foo`},
		{"snake_case & co", `snake\_case \& co`},
		{"~user ^ <a> !", `\textasciitilde{}user \textasciicircum{} \textless{}a\textgreater{} !{}`},
		{"Déjà 50 %", `Déjà 50 \%`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := TeX(tt.input); got != tt.want {
				t.Errorf("TeX(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNBSpacesTeX(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Des espaces insécables\u202f? Ça alors\u202f!", `Des espaces insécables\,? Ça alors\,!`},
		{"«\u00a0Bonjour\u00a0»", "«~Bonjour~»"},
		{"—\u2002Oui", `—\enspace Oui`},
		{"10\u202f000\u202f€", `10\,000\,€`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NBSpacesTeX(tt.input); got != tt.want {
				t.Errorf("NBSpacesTeX(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNBSpacesHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Test\u202f?", `<span class = "nnbsp">Test&#160;?</span>`},
		{
			"Ceci est un «\u202fTest\u202f»\u202f!",
			`Ceci est un <span class = "nnbsp">«&#160;Test&#160;»&#160;!</span>`,
		},
		{"Un\u00a0espace standard", "Un\u00a0espace standard"},
		{"10\u202f000 et 20\u202f%", `<span class = "nnbsp">10&#160;000</span> et <span class = "nnbsp">20&#160;%</span>`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NBSpacesHTML(tt.input); got != tt.want {
				t.Errorf("NBSpacesHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestQuotes(t *testing.T) {
	if got, want := Quotes(`Some text with "quotes"`), "Some text with 'quotes'"; got != want {
		t.Errorf("Quotes() = %q, want %q", got, want)
	}
}

func TestTeXThenNBSpaces(t *testing.T) {
	// The order matters: the conversion writes characters TeX escapes.
	s := "50\u202f% de ~rien~"
	if got, want := NBSpacesTeX(TeX(s)), `50\,\% de \textasciitilde{}rien\textasciitilde{}`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
