package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"

	"fotoseni/internal/domain"
	"fotoseni/internal/i18n"
	"fotoseni/internal/imagegen"
	"fotoseni/internal/middleware"
	"fotoseni/internal/upload"
)

type convertResponse struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	MIME   string `json:"mime"`
	Data   string `json:"data"`
}

// ConvertAPI is the stateless one-shot conversion endpoint. It shares the
// validation, prompt, and error taxonomy with the studio flow but does not
// touch the studio view, so the single-flight rule stays a studio concern.
func (a *App) ConvertAPI(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	msgs := i18n.For(locale)

	src, err := upload.ReadImage(r, "photo", a.Config.MaxUploadBytes)
	if err != nil {
		a.error(w, http.StatusUnprocessableEntity, "missing_input", uploadMessage(msgs, err, a.Config.MaxUploadMB))
		return
	}

	a.Stats.ConversionStarted()
	art, err := a.Converter.Convert(r.Context(), imagegen.ConvertRequest{
		Source:       src,
		Category:     domain.Category(r.FormValue("category")),
		StyleID:      r.FormValue("style"),
		Instructions: r.FormValue("instructions"),
		Locale:       locale,
		RequestID:    middleware.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		a.Stats.ConversionFailed()
		switch {
		case errors.Is(err, domain.ErrMissingInput):
			a.error(w, http.StatusUnprocessableEntity, "missing_input", msgs.MissingInput)
		case errors.Is(err, domain.ErrNoImage):
			a.error(w, http.StatusBadGateway, "no_image", msgs.NoImage)
		default:
			a.error(w, http.StatusBadGateway, "provider_failure", msgs.FailureMessage(failureDetail(err)))
		}
		return
	}

	a.Stats.ConversionSucceeded()
	a.json(w, http.StatusOK, convertResponse{
		Model:  art.Model,
		Prompt: art.Prompt,
		MIME:   art.MIME,
		Data:   base64.StdEncoding.EncodeToString(art.Data),
	})
}
