package clean

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/typo/internal/chars"
)

// Compose returns s in Unicode normalization form C. Decomposed letters such
// as "e" followed by U+0301 become a single precomposed character, so that they count as
// one alphanumeric character when quote direction is decided.
func Compose(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	composed, _, err := transform.String(norm.NFC, s)
	if err != nil {
		return s
	}
	return composed
}

// NewWhitespaceTransformer returns a transform.Transformer that collapses
// runs of space-like characters the same way [Whitespaces] does, across
// buffer boundaries. It can be wrapped around any reader:
//
//	r := transform.NewReader(f, clean.NewWhitespaceTransformer())
func NewWhitespaceTransformer() transform.Transformer {
	return &whitespaceTransformer{}
}

type whitespaceTransformer struct {
	previousSpace bool
}

func (t *whitespaceTransformer) Reset() { t.previousSpace = false }

func (t *whitespaceTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])

		space := chars.IsSpace(r)
		if space && t.previousSpace {
			nSrc += size
			continue
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], src[nSrc:nSrc+size])
		nDst += size
		nSrc += size
		t.previousSpace = space
	}
	return nDst, nSrc, nil
}
