// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package command

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/oops"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/loreline/loreline/internal/session"
)

var tracer = otel.Tracer("loreline/command")

// ResultError is the uniform failure shape surfaced to the caller.
type ResultError struct {
	Code       string
	Message    string
	Suggestion string // one-line actionable hint, when derivable
}

// Result is the uniform outcome of dispatching one input line.
type Result struct {
	Success bool
	Output  []string
	Err     *ResultError
}

// Dispatcher resolves input lines against the registry, gates commands on
// session mode, and invokes handlers. Handler failures never escape; they
// are normalized into the Result.
type Dispatcher struct {
	registry  *Registry
	suggester *Suggester
	services  *Services
}

// NewDispatcher creates a dispatcher. Returns an error if registry or
// services is nil.
func NewDispatcher(registry *Registry, services *Services) (*Dispatcher, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	if services == nil {
		return nil, ErrNilServices
	}
	return &Dispatcher{
		registry:  registry,
		suggester: NewSuggester(registry),
		services:  services,
	}, nil
}

// Dispatch parses one line and executes the resolved command against the
// session. The input is fully resolved and executed before Dispatch
// returns; handlers that do asynchronous work are awaited through ctx.
func (d *Dispatcher) Dispatch(ctx context.Context, input string, sess *session.Context) Result {
	rec := newMetricsRecorder()
	defer rec.record()

	if sess == nil {
		rec.setStatus(StatusError)
		return failure(CodeExecutionFailed, "no active session", "")
	}

	parsed := d.registry.Parse(input)
	if !parsed.Valid {
		return d.failParse(parsed, rec)
	}
	rec.setCommand(parsed.Name)

	entry, ok := d.registry.Lookup(parsed.Name)
	if !ok {
		// Possible only when an alias points at an unregistered name.
		rec.setStatus(StatusNotFound)
		return d.failUnknown(parsed.Name)
	}

	if !entry.EligibleFor(sess.Mode) {
		rec.setStatus(StatusModeRestricted)
		err := ErrModeRestricted(entry.Name, entry.Mode, sess.Mode)
		return failure(CodeModeRestricted, err.Error(), PlayerMessage(err))
	}
	if entry.Mode == EligibilityBuild && !sess.Elevated {
		rec.setStatus(StatusModeRestricted)
		return failure(CodeModeRestricted,
			fmt.Sprintf("command %s requires elevation", entry.Name),
			"Elevate first with 'elevate <password>'.")
	}

	ctx, span := tracer.Start(ctx, "command.execute",
		trace.WithAttributes(
			attribute.String("command.name", entry.Name),
			attribute.String("session.id", sess.ID.String()),
			attribute.String("session.mode", sess.Mode.String()),
		),
	)
	defer span.End()

	var out bytes.Buffer
	exec := &Execution{
		Session:   sess,
		Args:      parsed.Args,
		InvokedAs: firstToken(input),
		Output:    &out,
		Services:  d.services,
	}

	err := d.invoke(ctx, entry, exec)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		rec.setStatus(StatusError)
		slog.WarnContext(ctx, "command execution failed",
			"command", entry.Name,
			"session_id", sess.ID.String(),
			"error", err,
		)
		return failureFromHandler(entry.Name, err)
	}

	rec.setStatus(StatusSuccess)
	return Result{Success: true, Output: splitLines(out.String())}
}

// invoke runs the handler, converting panics into normal errors so a
// misbehaving handler cannot crash the engine.
func (d *Dispatcher) invoke(ctx context.Context, entry Entry, exec *Execution) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = oops.Code(CodeExecutionFailed).
				With("command", entry.Name).
				Errorf("handler panic: %v", r)
		}
	}()
	return entry.Handler(ctx, exec)
}

// failParse converts a parse failure into a Result, attaching fuzzy
// suggestions for unknown commands.
func (d *Dispatcher) failParse(parsed ParsedCommand, rec *metricsRecorder) Result {
	oopsErr, ok := oops.AsOops(parsed.Err)
	if !ok {
		rec.setStatus(StatusError)
		return failure(CodeExecutionFailed, parsed.Err.Error(), "")
	}

	switch oopsErr.Code() {
	case CodeEmptyInput:
		rec.setStatus(StatusEmptyInput)
		return failure(CodeEmptyInput, parsed.Err.Error(), PlayerMessage(parsed.Err))
	case CodeUnknownCommand:
		rec.setStatus(StatusNotFound)
		return d.failUnknown(TypedCommand(parsed.Err))
	default:
		rec.setStatus(StatusError)
		code, _ := oopsErr.Code().(string)
		if code == "" {
			code = CodeExecutionFailed
		}
		return failure(code, parsed.Err.Error(), PlayerMessage(parsed.Err))
	}
}

// failUnknown builds an unknown-command failure with "did you mean"
// candidates when any score above the suggestion threshold.
func (d *Dispatcher) failUnknown(typed string) Result {
	suggestion := "Unknown command. Try 'help'."
	candidates := d.suggester.Suggest(typed)
	if len(candidates) > 0 {
		RecordSuggestionQuery("hit")
		suggestion = "Did you mean: " + strings.Join(candidates, ", ") + "?"
	} else {
		RecordSuggestionQuery("miss")
	}
	return failure(CodeUnknownCommand, fmt.Sprintf("unknown command: %s", typed), suggestion)
}

// failureFromHandler normalizes a handler error into the uniform failure
// shape, preserving the original message.
func failureFromHandler(cmd string, err error) Result {
	code := CodeExecutionFailed
	if oopsErr, ok := oops.AsOops(err); ok {
		if c, ok := oopsErr.Code().(string); ok && c != "" {
			code = c
		}
	}
	return failure(code, err.Error(), PlayerMessage(err))
}

func failure(code, message, suggestion string) Result {
	return Result{
		Err: &ResultError{
			Code:       code,
			Message:    message,
			Suggestion: suggestion,
		},
	}
}

// splitLines breaks handler output into the Result's line list.
func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func firstToken(input string) string {
	tokens := Tokenize(input)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}
