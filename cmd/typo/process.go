package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/transform"

	"github.com/tsawler/typo/clean"
	"github.com/tsawler/typo/format"
	"github.com/tsawler/typo/htmldoc"
)

// maxLineSize bounds the length of a single line of text input.
const maxLineSize = 1 << 20

var errUnsupportedFormat = errors.New("unsupported input format")

// processor formats inputs with fn.
type processor struct {
	fn      func(string) string
	html    bool
	workers int
	stdin   io.Reader
	log     *slog.Logger

	// Standard input is read once, however many times "-" is given.
	stdinOnce sync.Once
	stdinData []byte
	stdinErr  error
}

// result holds the formatted content of one input.
type result struct {
	out bytes.Buffer
	err error
}

// processAll formats every input, at most p.workers at a time, and writes
// the results to w in input order. Failed inputs are logged and skipped.
// It returns the number of failures.
func (p *processor) processAll(ctx context.Context, names []string, w io.Writer) int {
	results := make([]result, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].err = err
				return nil
			}
			p.log.Debug("processing input", "path", name)
			results[i].err = p.process(name, &results[i].out)
			return nil
		})
	}
	// Every goroutine returns nil: failures are per input.
	_ = g.Wait()

	failed := 0
	for i, name := range names {
		if err := results[i].err; err != nil {
			p.log.Error("formatting input failed", "path", name, "error", err)
			failed++
			continue
		}
		if _, err := results[i].out.WriteTo(w); err != nil {
			p.log.Error("writing output", "path", name, "error", err)
			failed++
		}
	}
	return failed
}

// process formats the input called name into w.
func (p *processor) process(name string, w io.Writer) error {
	if name == pipeName {
		data, err := p.readStdin()
		if err != nil {
			return err
		}
		if p.html {
			return htmldoc.Format(bytes.NewReader(data), w, p.fn)
		}
		return formatText(bytes.NewReader(data), w, p.fn)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	f := format.DetectFile(name, data)
	if p.html {
		f = format.HTML
	}
	switch f {
	case format.HTML:
		return htmldoc.Format(bytes.NewReader(data), w, p.fn)
	case format.Text:
		return formatText(bytes.NewReader(data), w, p.fn)
	default:
		return fmt.Errorf("%w: %s", errUnsupportedFormat, name)
	}
}

// formatText applies fn to each line of r, a line being a paragraph.
// Whitespace is collapsed while reading.
func formatText(r io.Reader, w io.Writer, fn func(string) string) error {
	sc := bufio.NewScanner(transform.NewReader(r, clean.NewWhitespaceTransformer()))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		if _, err := io.WriteString(w, fn(sc.Text())+"\n"); err != nil {
			return fmt.Errorf("writing text: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading text: %w", err)
	}
	return nil
}

// readStdin returns the whole of standard input.
func (p *processor) readStdin() ([]byte, error) {
	p.stdinOnce.Do(func() {
		p.stdinData, p.stdinErr = io.ReadAll(p.stdin)
		if p.stdinErr != nil {
			p.stdinErr = fmt.Errorf("reading standard input: %w", p.stdinErr)
		}
	})
	return p.stdinData, p.stdinErr
}
