package port

import "context"

// Prompt is a system+user instruction pair for a chat completion.
type Prompt struct {
	System string
	User   string
}

// Completer abstracts an LLM chat completion capability: prompt pair in,
// raw model text out. Implementations perform no retries; failover policy
// belongs to the caller.
type Completer interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}
