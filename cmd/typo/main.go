// Command typo reads text, applies typographic transformations to it and
// prints the result.
//
// Usage:
//
//	typo [flags] [FILE...]
//
// Each FILE is formatted line by line, or text node by text node for HTML.
// With no FILE, or when FILE is -, standard input is read.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Version indicates the current build version.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
