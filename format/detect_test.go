package format

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Text, "Text"},
		{HTML, "HTML"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Text, ".txt"},
		{HTML, ".html"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"chapitre.txt", Text},
		{"chapitre.TXT", Text},
		{"chapitre.text", Text},
		{"README.md", Text},
		{"notes.markdown", Text},
		{"page.html", HTML},
		{"page.HTML", HTML},
		{"page.Html", HTML},
		{"page.htm", HTML},
		{"page.xhtml", HTML},
		{"document.pdf", Unknown},
		{"document", Unknown},
		{"", Unknown},
		{"/path/to/file.md", Text},
		{"/path/to/file.htm", HTML},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromBytes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{
			name: "HTML with DOCTYPE",
			data: []byte("<!DOCTYPE html>\n<html>"),
			want: HTML,
		},
		{
			name: "HTML with html tag",
			data: []byte("<html><head>"),
			want: HTML,
		},
		{
			name: "HTML with whitespace before DOCTYPE",
			data: []byte("  \n  <!DOCTYPE HTML PUBLIC"),
			want: HTML,
		},
		{
			name: "HTML after a byte order mark",
			data: []byte("\xef\xbb\xbf<!doctype html>"),
			want: HTML,
		},
		{
			name: "XHTML",
			data: []byte(`<?xml version="1.0" encoding="UTF-8"?>` + "\n" + `<html xmlns="http://www.w3.org/1999/xhtml">`),
			want: HTML,
		},
		{
			name: "XML that is not XHTML",
			data: []byte(`<?xml version="1.0"?><feed></feed>`),
			want: Text,
		},
		{
			name: "text file",
			data: []byte("Bonjour, « monde » !"),
			want: Text,
		},
		{
			name: "empty data",
			data: []byte{},
			want: Text,
		},
		{
			name: "PDF magic bytes",
			data: []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3"),
			want: Unknown,
		},
		{
			name: "binary with NUL",
			data: []byte{0x50, 0x4B, 0x03, 0x04, 0x00, 0x00},
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromBytes(tt.data); got != tt.want {
				t.Errorf("DetectFromBytes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromBytes_CutCharacter(t *testing.T) {
	// "é" is two bytes; put its first byte at the end of the sniffed window.
	data := []byte(strings.Repeat("a", sniffLen-1) + "é suite")
	if got := DetectFromBytes(data); got != Text {
		t.Errorf("DetectFromBytes() = %v, want Text", got)
	}
}

func TestDetectFile(t *testing.T) {
	html := []byte("<!DOCTYPE html><p>x</p>")

	if got := DetectFile("page.txt", html); got != Text {
		t.Errorf("known extension: got %v, want Text", got)
	}
	if got := DetectFile("page", html); got != HTML {
		t.Errorf("no extension: got %v, want HTML", got)
	}
	if got := DetectFile("-", bytes.Repeat([]byte("a"), 10)); got != Text {
		t.Errorf("stdin: got %v, want Text", got)
	}
}
