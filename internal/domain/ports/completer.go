package ports

import "context"

// Completer submits a single-turn prompt to the named model and returns its text.
type Completer interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}
