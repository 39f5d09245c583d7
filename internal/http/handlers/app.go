package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"fotoseni/internal/domain"
	"fotoseni/internal/imagegen"
	"fotoseni/internal/infra"
	"fotoseni/internal/studio"
)

// Converter runs one photo-to-art conversion. imagegen.Service satisfies it;
// handler tests substitute fakes.
type Converter interface {
	Convert(ctx context.Context, req imagegen.ConvertRequest) (*domain.ArtImage, error)
}

type App struct {
	Studio    *studio.State
	Converter Converter
	Config    *infra.Config
	Logger    infra.Logger
	Stats     *Stats
}

func NewApp(state *studio.State, converter Converter, cfg *infra.Config, logger infra.Logger) *App {
	return &App{
		Studio:    state,
		Converter: converter,
		Config:    cfg,
		Logger:    logger,
		Stats:     NewStats(),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
