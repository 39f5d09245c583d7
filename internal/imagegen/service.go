package imagegen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fotoseni/internal/domain"
	"fotoseni/internal/infra"
	"fotoseni/internal/providers/genai"
)

// Service validates conversion requests, assembles the prompt, and maps
// provider outcomes onto the three-way error taxonomy the studio exposes:
// domain.ErrMissingInput, domain.ErrNoImage, domain.ErrProviderFailure.
type Service struct {
	generator Generator
	logger    infra.Logger
}

func NewService(generator Generator, logger infra.Logger) *Service {
	return &Service{generator: generator, logger: logger}
}

// Convert runs one photo-to-art conversion. Validation failures return before
// any network activity; the generator is only consulted for complete input.
func (s *Service) Convert(ctx context.Context, req ConvertRequest) (*domain.ArtImage, error) {
	if req.Source == nil || len(req.Source.Data) == 0 {
		return nil, fmt.Errorf("no photo selected: %w", domain.ErrMissingInput)
	}
	if !req.Category.Valid() {
		return nil, fmt.Errorf("unknown category %q: %w", req.Category, domain.ErrMissingInput)
	}
	style, ok := domain.StyleByID(req.StyleID)
	if !ok {
		return nil, fmt.Errorf("unknown style %q: %w", req.StyleID, domain.ErrMissingInput)
	}

	prompt := BuildConversionPrompt(req.Category, style, req.Instructions)

	out, err := s.generator.ConvertImage(ctx, ConvertInput{
		ImageData: req.Source.Data,
		MIMEType:  req.Source.MIME,
		Prompt:    prompt,
		RequestID: req.RequestID,
	})
	if err != nil {
		if errors.Is(err, genai.ErrNoImage) {
			s.logger.Warn().
				Str("request_id", req.RequestID).
				Str("style", style.ID).
				Msg("imagegen: provider returned no inline image")
			return nil, fmt.Errorf("convert photo: %w", domain.ErrNoImage)
		}
		s.logger.Error().
			Err(err).
			Str("request_id", req.RequestID).
			Str("style", style.ID).
			Msg("imagegen: conversion failed")
		return nil, fmt.Errorf("convert photo: %v: %w", err, domain.ErrProviderFailure)
	}

	art := &domain.ArtImage{
		Data:      out.Data,
		MIME:      out.MIMEType,
		Prompt:    prompt,
		Model:     s.generator.Model(),
		CreatedAt: time.Now().UTC(),
	}

	s.logger.Info().
		Str("request_id", req.RequestID).
		Str("style", style.ID).
		Str("category", string(req.Category)).
		Str("mime", art.MIME).
		Int("bytes", len(art.Data)).
		Msg("imagegen: conversion completed")

	return art, nil
}
