package ai

import (
	"context"
)

// TextGenerator generates free text from a prompt. Callers treat it as
// best-effort: on failure they degrade to canned responses rather than
// surfacing a hard error to the client.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
