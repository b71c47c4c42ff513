// Package skill implements the one-shot execution contract shared by the
// Baize skill binaries: a JSON invocation read from an environment variable
// (or stdin), exactly one operation, and a single JSON result envelope
// written to stdout.
//
// This file defines the invocation and envelope data structures plus the
// schema generation helper used when exposing skill parameters to LLM hosts.
package skill

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// --- Invocation / Envelope Structures ---

// Invocation is the input wrapper supplied by the caller framework.
// Params holds the operation-specific arguments as raw JSON, allowing for
// delayed parsing by the skill's handler during execution.
type Invocation struct {
	Params json.RawMessage `json:"params"`
}

// Envelope is the single JSON object a skill writes to stdout.
// Data and Message are present only on success, Error only on failure.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK builds a success envelope carrying an operation-specific data payload
// and a human-readable summary message.
func OK(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

// Fail builds a failure envelope from a plain error string.
func Fail(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}

// Failf builds a failure envelope from a format string.
func Failf(format string, args ...any) Envelope {
	return Envelope{Success: false, Error: fmt.Sprintf(format, args...)}
}

// --- Schema Generation Helper ---

// GenerateSchema creates a JSON schema representation for the provided
// argument type T. It uses reflection through the
// github.com/invopop/jsonschema library and respects `jsonschema` struct
// tags (required, description) so the schema can be handed to an LLM host
// for tool registration.
//
// Example usage:
//
//	type SearchArgs struct {
//	    Query string `json:"query" jsonschema:"required,description=The search query."`
//	}
//	schema := skill.GenerateSchema[SearchArgs]()
func GenerateSchema[T any]() any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  true, // Allow additional properties in the generated schema
		DoNotReference:             true, // Keep schema self-contained, no $refs
		RequiredFromJSONSchemaTags: true, // Respect `jsonschema:"required"` tags
	}
	var v T
	return reflector.Reflect(&v)
}
