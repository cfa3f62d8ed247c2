// Package format detects whether an input is plain text or HTML.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Text indicates plain text, formatted line by line.
	Text
	// HTML indicates an HTML document, formatted text node by text node.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Text:
		return "Text"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Text:
		return ".txt"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

// Detect determines the format from the filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".txt", ".text", ".md", ".markdown":
		return Text
	default:
		return Unknown
	}
}

// sniffLen is how much of the input DetectFromBytes looks at.
const sniffLen = 512

// DetectFromBytes inspects the start of the content to determine the
// format: an HTML signature means HTML, anything else that is valid UTF-8
// without NUL bytes is Text. Binary content is Unknown.
func DetectFromBytes(data []byte) Format {
	head := data[:min(sniffLen, len(data))]
	if detectHTMLMagic(head) {
		return HTML
	}
	if bytes.IndexByte(head, 0) >= 0 {
		return Unknown
	}
	// A multi-byte character may straddle the cut.
	for i := 0; len(data) > sniffLen && i < utf8.UTFMax-1 && !utf8.Valid(head); i++ {
		head = head[:len(head)-1]
	}
	if !utf8.Valid(head) {
		return Unknown
	}
	return Text
}

// DetectFile combines both methods: the extension when it is known, the
// content otherwise.
func DetectFile(filename string, data []byte) Format {
	if f := Detect(filename); f != Unknown {
		return f
	}
	return DetectFromBytes(data)
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	// A byte order mark may come first.
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.TrimLeft(data, " \t\n\r")
	if len(data) == 0 {
		return false
	}

	upper := strings.ToUpper(string(data))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}
	return false
}
