package ai

import "context"

// AnswerGenerator produces a natural-language completion for a prompt.
type AnswerGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
