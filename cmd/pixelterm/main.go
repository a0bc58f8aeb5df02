// Command pixelterm runs the sandboxed virtual shell as an interactive REPL,
// a line oriented script reader or an HTTP adapter.
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

	"github.com/mattn/go-isatty"
	"github.com/viant/pixelterm"
	"github.com/viant/pixelterm/internal/logs"
	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/policy"
	"github.com/viant/pixelterm/service/event"
	"github.com/viant/pixelterm/service/journal"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "pixelterm: %v\n", err)
		os.Exit(1)
	}
}

// asker forwards approvals to whichever front end is active
type asker struct {
	fn policy.AskFunc
}

func (a *asker) ask(ctx context.Context, verb, argument string, p *policy.Policy) bool {
	if a.fn == nil {
		return false
	}
	return a.fn(ctx, verb, argument, p)
}

func run(args []string, stdin *os.File, stdout io.Writer) error {
	flags := flag.NewFlagSet("pixelterm", flag.ContinueOnError)
	configURL := flags.String("config", "", "YAML configuration URL")
	root := flags.String("root", "", "session root directory")
	user := flags.String("user", "", "session user name")
	serve := flags.String("serve", "", "HTTP listen address, e.g. :8080")
	journalPath := flags.String("journal", "", "bbolt journal file recording executed commands")
	seed := flags.Bool("seed", false, "create a sample tree in an empty root")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config := pixelterm.DefaultConfig()
	if *configURL != "" {
		var err error
		if config, err = pixelterm.LoadConfig(ctx, *configURL); err != nil {
			return err
		}
	}
	if *root != "" {
		config.RootDir = *root
	}
	if *user != "" {
		config.User = *user
	}
	if *journalPath != "" {
		config.Journal = *journalPath
	}
	if *seed {
		config.Seed = true
	}
	if config.RootDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("root directory was not specified: %w", err)
		}
		config.RootDir = home
	}

	logger, closer, err := logs.New(&config.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	var records *journal.Journal
	if config.Journal != "" {
		if records, err = journal.Open(config.Journal); err != nil {
			return err
		}
		defer records.Close()
	}
	// deferred after the journal so queued records are written before it closes
	events := event.New(event.WithLogger(logger))
	defer events.Close()
	if records != nil {
		event.SetListenerOf[*types.Record](events, records.Handle)
	}

	approvals := &asker{}
	srv, err := pixelterm.New(
		pixelterm.WithConfig(config),
		pixelterm.WithLogger(logger),
		pixelterm.WithEventService(events),
		pixelterm.WithAsk(approvals.ask),
	)
	if err != nil {
		return err
	}
	defer srv.Shutdown(context.Background())

	if *serve != "" {
		return listen(ctx, *serve, NewServer(srv, logger))
	}
	sess, err := srv.Open(ctx, config.RootDir)
	if err != nil {
		return err
	}
	if isatty.IsTerminal(stdin.Fd()) || isatty.IsCygwinTerminal(stdin.Fd()) {
		return runREPL(ctx, srv, sess, approvals)
	}
	return runScript(ctx, srv, sess, approvals, stdin, stdout)
}
