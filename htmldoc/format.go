package htmldoc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/typo/escape"
)

// Format copies the HTML document read from r to w, replacing the content
// of every text token t outside raw elements with fn(t). Markup is copied
// unchanged. The input does not need to be well formed.
func Format(r io.Reader, w io.Writer, fn func(string) string) error {
	z := html.NewTokenizer(r)
	raw := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return fmt.Errorf("tokenizing HTML: %w", err)
			}
			return nil
		}

		// Raw must be written before TagName, which lowercases the buffer
		// in place.
		data := z.Raw()
		if tt == html.TextToken && raw == 0 {
			data = []byte(escape.HTML(fn(html.UnescapeString(string(data)))))
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing HTML: %w", err)
		}

		switch tt {
		case html.StartTagToken:
			if name, _ := z.TagName(); isRawElement(string(name)) {
				raw++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); isRawElement(string(name)) && raw > 0 {
				raw--
			}
		}
	}
}

// FormatString is like [Format] for a document held in a string.
func FormatString(s string, fn func(string) string) (string, error) {
	var b bytes.Buffer
	b.Grow(len(s) + len(s)/8)
	if err := Format(strings.NewReader(s), &b, fn); err != nil {
		return "", err
	}
	return b.String(), nil
}

// FormatFile formats the HTML file filename and writes the result to w.
func FormatFile(filename string, w io.Writer, fn func(string) string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Format(f, w, fn)
}

// FormatNode replaces the data of every text node under n with fn(data),
// skipping raw elements. The tree holds unescaped text, so nothing needs
// escaping here; [html.Render] will do it.
func FormatNode(n *html.Node, fn func(string) string) {
	if n.Type == html.ElementNode && isRawElement(n.Data) {
		return
	}
	if n.Type == html.TextNode {
		n.Data = fn(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		FormatNode(c, fn)
	}
}

// isRawElement reports whether the text inside tagName must be left alone.
func isRawElement(tagName string) bool {
	switch tagName {
	case "script", "style", "pre", "code", "kbd", "samp", "textarea", "math", "svg", "template":
		return true
	}
	return false
}
