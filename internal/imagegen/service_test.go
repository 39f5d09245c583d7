package imagegen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"fotoseni/internal/domain"
	"fotoseni/internal/providers/genai"
)

type fakeGenerator struct {
	calls int
	in    ConvertInput
	out   *ConvertOutput
	err   error
}

func (f *fakeGenerator) ConvertImage(_ context.Context, in ConvertInput) (*ConvertOutput, error) {
	f.calls++
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func (f *fakeGenerator) Model() string { return "test-model" }

func testSource() *domain.SourceImage {
	return &domain.SourceImage{Data: []byte("photo-bytes"), MIME: "image/jpeg", Name: "me.jpg", Size: 11}
}

func newTestService(gen Generator) *Service {
	return NewService(gen, zerolog.New(io.Discard))
}

func TestConvertMissingInputSkipsNetwork(t *testing.T) {
	tests := []struct {
		name string
		req  ConvertRequest
	}{
		{"nil source", ConvertRequest{Category: domain.CategoryArtPainting, StyleID: "watercolor"}},
		{"empty source", ConvertRequest{Source: &domain.SourceImage{}, Category: domain.CategoryArtPainting, StyleID: "watercolor"}},
		{"no style", ConvertRequest{Source: testSource(), Category: domain.CategoryArtPainting}},
		{"unknown style", ConvertRequest{Source: testSource(), Category: domain.CategoryArtPainting, StyleID: "cubist"}},
		{"unknown category", ConvertRequest{Source: testSource(), Category: domain.Category("sculpture"), StyleID: "watercolor"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := &fakeGenerator{}
			_, err := newTestService(gen).Convert(context.Background(), tc.req)
			if !errors.Is(err, domain.ErrMissingInput) {
				t.Fatalf("err = %v, want ErrMissingInput", err)
			}
			if gen.calls != 0 {
				t.Fatalf("generator called %d times, want 0", gen.calls)
			}
		})
	}
}

func TestConvertSuccess(t *testing.T) {
	gen := &fakeGenerator{out: &ConvertOutput{Data: []byte{0x89, 0x50}, MIMEType: "image/png"}}
	svc := newTestService(gen)

	art, err := svc.Convert(context.Background(), ConvertRequest{
		Source:       testSource(),
		Category:     domain.CategoryCaricature,
		StyleID:      "pencil-sketch",
		Instructions: "big smile",
		RequestID:    "req-1",
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("generator called %d times, want 1", gen.calls)
	}

	wantPrompt := "Convert the following photo into caricature with pencil sketch style. Add details: big smile."
	if gen.in.Prompt != wantPrompt {
		t.Fatalf("prompt = %q, want %q", gen.in.Prompt, wantPrompt)
	}
	if string(gen.in.ImageData) != "photo-bytes" || gen.in.MIMEType != "image/jpeg" {
		t.Fatalf("generator input mismatch: %q %q", gen.in.ImageData, gen.in.MIMEType)
	}
	if string(art.Data) != string([]byte{0x89, 0x50}) || art.MIME != "image/png" {
		t.Fatalf("artwork mismatch: %v %q", art.Data, art.MIME)
	}
	if art.Prompt != wantPrompt || art.Model != "test-model" {
		t.Fatalf("artwork metadata mismatch: %q %q", art.Prompt, art.Model)
	}
	if art.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt not set")
	}
}

func TestConvertNoImageMapsToTaxonomy(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("convert: %w", genai.ErrNoImage)}
	_, err := newTestService(gen).Convert(context.Background(), ConvertRequest{
		Source:   testSource(),
		Category: domain.CategoryArtPainting,
		StyleID:  "watercolor",
	})
	if !errors.Is(err, domain.ErrNoImage) {
		t.Fatalf("err = %v, want ErrNoImage", err)
	}
	if errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("no-image outcome must not classify as provider failure")
	}
}

func TestConvertProviderFailureMapsToTaxonomy(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("gemini status 401: API key not valid")}
	_, err := newTestService(gen).Convert(context.Background(), ConvertRequest{
		Source:   testSource(),
		Category: domain.CategoryArtPainting,
		StyleID:  "watercolor",
	})
	if !errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("err = %v, want ErrProviderFailure", err)
	}
	if !strings.Contains(err.Error(), "API key not valid") {
		t.Fatalf("underlying detail lost: %v", err)
	}
}
