package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/tsawler/typo"
	"github.com/tsawler/typo/internal/config"
	"github.com/tsawler/typo/internal/logger"
)

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const helpBanner = `typo %s

Read each FILE, or standard input, apply each transformation in order and
print the result on standard output. Whitespace is always collapsed first.

Usage: typo [flags] [FILE...]

Flags:
`

// options holds the command-line flags.
type options struct {
	configPath string
	transforms string
	html       bool
	workers    int
	list       bool
	files      []string
	set        map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("typo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Configuration file (default typo.yaml if present)")
	fs.StringVar(&opts.transforms, "t", "", "Comma-separated transformations to apply (default format_french)")
	fs.BoolVar(&opts.html, "html", false, "Format input as HTML, touching text nodes only")
	fs.IntVar(&opts.workers, "conc", config.DefaultWorkers, "Number of files to process concurrently")
	fs.BoolVar(&opts.list, "list", false, "List the available transformations")
	fs.Usage = func() {
		fmt.Fprintf(stderr, helpBanner, Version)
		fs.PrintDefaults()
		fmt.Fprintln(stderr)
		printTransforms(stderr)
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Example: typo -t clean_quotes,clean_ellipsis,escape_html < in.txt")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	opts.files = fs.Args()
	return opts, nil
}

// splitList splits a transformation list on commas and spaces.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
}

func printTransforms(w io.Writer) {
	fmt.Fprintln(w, "Transformations:")
	for _, t := range typo.Transforms() {
		fmt.Fprintf(w, "    %s: %s\n", t.Name, t.Description)
	}
}

// run is the whole command; it returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}

	if opts.list {
		printTransforms(stdout)
		return exitOK
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "typo: %v\n", err)
		return exitUsage
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "typo: %v: %v\n", config.ErrConfiguration, err)
		return exitUsage
	}

	log := logger.New(stderr, cfg.Log.Level, cfg.Log.Format == "json")
	log.Debug("configuration loaded",
		"transforms", cfg.Transforms,
		"workers", cfg.Workers,
		"html", cfg.HTML,
		"quote_len", cfg.French.QuoteLen,
		"unit_len", cfg.French.UnitLen,
		"currency_len", cfg.French.CurrencyLen,
		"real_word_len", cfg.French.RealWordLen)

	fn, err := cfg.Pipeline().Func()
	if err != nil {
		fmt.Fprintf(stderr, "typo: %v\n", err)
		return exitUsage
	}

	files := opts.files
	if len(files) == 0 {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			fmt.Fprintln(stderr, "typo: no input file given and standard input is a terminal")
			fmt.Fprintln(stderr, "Run 'typo -h' for usage.")
			return exitUsage
		}
		files = []string{pipeName}
	}

	out := bufio.NewWriter(stdout)
	p := &processor{
		fn:      fn,
		html:    cfg.HTML,
		workers: cfg.Workers,
		stdin:   stdin,
		log:     log,
	}
	failed := p.processAll(ctx, files, out)
	if err := out.Flush(); err != nil {
		log.Error("writing output", "error", err)
		return exitFailure
	}
	if failed > 0 {
		return exitFailure
	}
	return exitOK
}

// applyFlags lets explicitly set flags override the configuration.
func applyFlags(cfg *config.Config, opts *options) {
	if opts.set["t"] {
		cfg.Transforms = splitList(opts.transforms)
	}
	if opts.set["conc"] {
		cfg.Workers = opts.workers
	}
	if opts.html {
		cfg.HTML = true
	}
}
