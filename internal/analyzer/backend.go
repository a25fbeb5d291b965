package analyzer

import "context"

// Backend is one pluggable AI analysis capability: submit a prompt, get free
// text back. The router only depends on this interface, never on a concrete
// backend's type.
type Backend interface {
	// Name identifies the backend in configuration and logs.
	Name() string
	// Available reports whether the backend can currently serve requests
	// (credentials present, local service reachable).
	Available(ctx context.Context) bool
	// Analyze submits the prompt and returns the raw response text.
	Analyze(ctx context.Context, prompt string) (string, error)
}
