package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/viant/pixelterm"
	"github.com/viant/pixelterm/policy"
	"github.com/viant/pixelterm/runtime/session"
	"github.com/viant/pixelterm/service/printer"
	"github.com/viant/pixelterm/service/prompt"
	"github.com/viant/pixelterm/service/sandbox"
)

const exitVerb = "exit"

func promptOf(sess *session.Session) string {
	user := sess.User()
	if user == "" {
		user = "user"
	}
	return fmt.Sprintf("%v@pixelterm:%v$ ", user, sandbox.Virtual(sess.Root(), sess.CurrentDir()))
}

func runREPL(ctx context.Context, srv *pixelterm.Service, sess *session.Session, approvals *asker) error {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".pixelterm_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      promptOf(sess),
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	approvals.fn = func(ctx context.Context, verb, argument string, _ *policy.Policy) bool {
		rl.SetPrompt(fmt.Sprintf("Run '%v'? [y/N] ", strings.TrimSpace(verb+" "+argument)))
		defer rl.SetPrompt(promptOf(sess))
		answer, err := rl.Readline()
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}

	out := printer.New(rl.Stdout())
	for ctx.Err() == nil {
		rl.SetPrompt(promptOf(sess))
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return nil
		}
		if strings.TrimSpace(line) == exitVerb {
			return nil
		}
		output, err := srv.Execute(ctx, sess.ID(), line)
		if err != nil {
			return err
		}
		if err = out.Print(output); err != nil {
			return err
		}
	}
	return nil
}

// runScript executes one command per input line; approval questions consume
// the following line.
func runScript(ctx context.Context, srv *pixelterm.Service, sess *session.Session, approvals *asker, in io.Reader, w io.Writer) error {
	reader := prompt.NewWithIO(in, w)
	approvals.fn = reader.Approver()
	out := printer.New(w)
	for ctx.Err() == nil {
		line, err := reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if strings.TrimSpace(line) == exitVerb {
			return nil
		}
		output, err := srv.Execute(ctx, sess.ID(), line)
		if err != nil {
			return err
		}
		if err = out.Print(output); err != nil {
			return err
		}
	}
	return nil
}
