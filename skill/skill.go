// Package skill implements the one-shot execution contract shared by the
// Baize skill binaries.
//
// This file contains the Runner, which wires a single operation handler to
// the process input and output channels and owns the exit-code policy.
package skill

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
)

// DefaultEnvVar is the environment variable the caller framework uses to
// pass the invocation JSON to a skill process.
const DefaultEnvVar = "BAIZE_PARAMS"

// Handler executes one skill operation. It receives the raw params object
// from the invocation and must translate every failure into a failure
// envelope rather than panicking; the Runner does not recover.
type Handler func(ctx context.Context, params json.RawMessage) Envelope

// Runner executes exactly one invocation of a skill handler per process.
// All environment and I/O access is injected so tests can run without
// touching process-global state.
type Runner struct {
	name      string
	handler   Handler
	envVar    string
	stdin     io.Reader // nil disables the stdin fallback
	stdout    io.Writer
	lookupEnv func(string) (string, bool)
}

// Option configures a Runner.
type Option func(*Runner)

// WithEnvVar overrides the environment variable holding the invocation JSON.
func WithEnvVar(name string) Option {
	return func(r *Runner) { r.envVar = name }
}

// WithStdinFallback enables reading the invocation from rd when the
// environment variable is unset. With the fallback enabled, empty input is
// an input error; without it, a missing variable means an empty params
// object that the handler validates itself.
func WithStdinFallback(rd io.Reader) Option {
	return func(r *Runner) { r.stdin = rd }
}

// WithStdout redirects the result envelope, mainly for tests.
func WithStdout(w io.Writer) Option {
	return func(r *Runner) { r.stdout = w }
}

// WithLookupEnv replaces os.LookupEnv, mainly for tests.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(r *Runner) { r.lookupEnv = fn }
}

// NewRunner creates a Runner for the named skill around a single handler.
func NewRunner(name string, handler Handler, opts ...Option) *Runner {
	r := &Runner{
		name:      name,
		handler:   handler,
		envVar:    DefaultEnvVar,
		stdout:    os.Stdout,
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes one invocation and returns the process exit code.
//
// Exit-code policy: 0 whenever the handler produced the envelope, including
// failure envelopes for validation errors, failed operations, and unknown
// actions; 1 only when no handler-level envelope could be produced at all
// (undecodable invocation JSON, or empty input where input is required).
func (r *Runner) Run(ctx context.Context) int {
	id := uuid.Must(uuid.NewV7()).String()
	log.Printf("skill %s: invocation %s: start", r.name, id)

	params, err := r.readParams()
	if err != nil {
		log.Printf("skill %s: invocation %s: %v", r.name, id, err)
		r.emit(Fail(err.Error()))
		return 1
	}

	env := r.handler(ctx, params)
	r.emit(env)
	if env.Success {
		log.Printf("skill %s: invocation %s: ok", r.name, id)
	} else {
		log.Printf("skill %s: invocation %s: %s", r.name, id, env.Error)
	}
	return 0
}

var errNoInput = errors.New("no input parameters")

// readParams resolves the invocation JSON from the environment variable or
// the stdin fallback and returns the raw params object.
func (r *Runner) readParams() (json.RawMessage, error) {
	raw, ok := r.lookupEnv(r.envVar)
	if !ok {
		if r.stdin == nil {
			// No fallback configured: the handler validates its own
			// (empty) params, matching the search skill contract.
			return json.RawMessage(`{}`), nil
		}
		b, err := io.ReadAll(r.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		if len(bytes.TrimSpace(b)) == 0 {
			return nil, errNoInput
		}
		raw = string(b)
	}

	var inv Invocation
	if err := json.Unmarshal([]byte(raw), &inv); err != nil {
		return nil, fmt.Errorf("invalid input JSON: %v", err)
	}
	if len(inv.Params) == 0 {
		return json.RawMessage(`{}`), nil
	}
	return inv.Params, nil
}

// emit writes the envelope as a single line of JSON. HTML escaping is
// disabled so URLs and non-ASCII text come through verbatim.
func (r *Runner) emit(env Envelope) {
	enc := json.NewEncoder(r.stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(env); err != nil {
		log.Printf("skill %s: write result: %v", r.name, err)
	}
}
