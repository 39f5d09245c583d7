package imagegen

import (
	"context"

	"fotoseni/internal/domain"
	"fotoseni/internal/providers/genai"
)

// ConvertRequest is a snapshot of the studio form at submit time. It is built
// once per submission and never mutated afterwards.
type ConvertRequest struct {
	Source       *domain.SourceImage
	Category     domain.Category
	StyleID      string
	Instructions string
	Locale       string
	RequestID    string
}

// ConvertInput and ConvertOutput are the wire-level request and result shared
// with the provider client.
type (
	ConvertInput  = genai.ConvertInput
	ConvertOutput = genai.ConvertOutput
)

// Generator turns a photo plus a prompt into artwork bytes. The genai client
// satisfies it; tests substitute counting fakes.
type Generator interface {
	ConvertImage(ctx context.Context, in ConvertInput) (*ConvertOutput, error)
	Model() string
}
