// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

// Package console runs the interactive readline loop for one session:
// line editing, tab completion, history recall, and dispatch.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
	"github.com/samber/oops"

	"github.com/loreline/loreline/internal/command"
	"github.com/loreline/loreline/internal/session"
)

// Console drives a single interactive session. One console owns one
// input stream; lines are dispatched strictly one at a time.
type Console struct {
	dispatcher *command.Dispatcher
	completer  *command.Completer
	history    *command.History
	sess       *session.Context
}

// New creates a console over the given engine components.
func New(dispatcher *command.Dispatcher, completer *command.Completer, history *command.History, sess *session.Context) (*Console, error) {
	if dispatcher == nil || completer == nil || history == nil {
		return nil, oops.Errorf("console requires dispatcher, completer, and history")
	}
	if sess == nil {
		return nil, command.ErrNilSession
	}
	return &Console{
		dispatcher: dispatcher,
		completer:  completer,
		history:    history,
		sess:       sess,
	}, nil
}

// Run reads and dispatches lines until the session quits, the input
// closes, or ctx is cancelled. History persistence across restarts is
// deliberately disabled; recall state lives in memory only.
func (c *Console) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 c.prompt(),
		InterruptPrompt:        "^C",
		EOFPrompt:              "quit",
		AutoComplete:           &lineCompleter{console: c},
		DisableAutoSaveHistory: true,
		HistoryLimit:           command.HistoryCapacity,
	})
	if err != nil {
		return oops.Wrap(err)
	}
	defer func() {
		if closeErr := rl.Close(); closeErr != nil {
			slog.Debug("error closing readline", "error", closeErr)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return oops.Wrap(err)
		}

		c.record(rl, line)
		result := c.dispatcher.Dispatch(ctx, line, c.sess)
		c.render(rl.Stdout(), result)

		if c.sess.Quitting {
			return nil
		}
		rl.SetPrompt(c.prompt())
	}
}

// record feeds the engine history and mirrors accepted lines into
// readline's arrow-key recall so both stay coalesced the same way.
func (c *Console) record(rl *readline.Instance, line string) {
	before := c.history.Len()
	c.history.Append(line)
	if c.history.Len() != before {
		if err := rl.SaveHistory(line); err != nil {
			slog.Debug("failed to save readline history", "error", err)
		}
	}
}

// render prints a dispatch result to the player.
func (c *Console) render(w io.Writer, result command.Result) {
	for _, line := range result.Output {
		fmt.Fprintln(w, line)
	}
	if result.Success || result.Err == nil {
		return
	}
	// Empty input needs no scolding at an interactive prompt.
	if result.Err.Code == command.CodeEmptyInput {
		return
	}
	fmt.Fprintln(w, result.Err.Message)
	if result.Err.Suggestion != "" {
		fmt.Fprintln(w, result.Err.Suggestion)
	}
}

func (c *Console) prompt() string {
	where := "nowhere"
	if c.sess.Location != nil {
		where = c.sess.Location.Ref
	}
	return fmt.Sprintf("[%s] %s> ", c.sess.Mode, where)
}

// lineCompleter adapts the engine's Completer to readline's
// AutoCompleter contract: candidates are returned as the runes to append
// after the typed fragment.
type lineCompleter struct {
	console *Console
}

// Do implements readline.AutoCompleter.
func (lc *lineCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	completion := lc.console.completer.Complete(text, len(text), lc.console.sess)

	partial := strings.ToLower(completion.Partial)
	var candidates [][]rune
	for _, s := range completion.Suggestions {
		if strings.HasPrefix(strings.ToLower(s), partial) {
			candidates = append(candidates, []rune(s[len(completion.Partial):]+" "))
		}
	}
	return candidates, len([]rune(completion.Partial))
}
