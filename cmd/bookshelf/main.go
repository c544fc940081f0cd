// Command bookshelf runs the catalog scenario: a book is added through the
// adapter, removed by title, added through the decorator, the proxy and the
// facade. Every notification is logged and, unless disabled, written to a
// journal whose contents can be dumped afterwards.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage error")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// flags holds the command line options of the demo.
type flags struct {
	deny       bool
	caller     string
	journal    string
	initSchema bool
	dump       bool
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags

	fs := flag.NewFlagSet("bookshelf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&f.deny, "deny", false, "Deny the caller when adding through the proxy")
	fs.StringVar(&f.caller, "caller", "librarian", "Caller identity checked by the proxy")
	fs.StringVar(&f.journal, "journal", "", "Journal kind: memory, postgres or none (overrides BOOKSHELF_JOURNAL)")
	fs.BoolVar(&f.initSchema, "init-schema", false, "Create the postgres journal table before running")
	fs.BoolVar(&f.dump, "dump", false, "Print the journal contents after the scenario")

	if err := fs.Parse(args); err != nil {
		return flags{}, errors.Join(errUsage, err)
	}

	if fs.NArg() > 0 {
		return flags{}, errors.Join(errUsage, fmt.Errorf("unexpected arguments: %v", fs.Args()))
	}

	return f, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		_, _ = fmt.Fprintln(stderr, err)

		return exitUsage
	}

	app, err := newApp(ctx, f, stdout, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		if errors.Is(err, errUsage) {
			return exitUsage
		}

		return exitError
	}
	defer app.close()

	if err := app.runScenario(ctx); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitError
	}

	if f.dump {
		if err := app.dumpJournal(ctx); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return exitError
		}
	}

	return exitOK
}
