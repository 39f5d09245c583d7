package handlers

import (
	"errors"
	"net/http"

	"fotoseni/internal/domain"
	"fotoseni/internal/i18n"
	"fotoseni/internal/middleware"
	"fotoseni/internal/upload"
)

// StudioUpload replaces the studio's photo. A failed read surfaces as an
// error banner and leaves the previous selection untouched; the displayed
// result is never cleared by an upload alone.
func (a *App) StudioUpload(w http.ResponseWriter, r *http.Request) {
	msgs := i18n.For(middleware.LocaleFromContext(r.Context()))

	src, err := upload.ReadImage(r, "photo", a.Config.MaxUploadBytes)
	if err != nil {
		a.Logger.Warn().
			Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Msg("studio: photo upload rejected")
		a.Studio.SetNotice(uploadMessage(msgs, err, a.Config.MaxUploadMB), true)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	a.Studio.SetSource(src)
	if category := domain.Category(r.FormValue("category")); category != "" || r.FormValue("style") != "" {
		a.Studio.SetSelection(category, r.FormValue("style"), r.FormValue("instructions"))
	}
	// a fresh photo clears any stale banner; the result, if shown, stays
	a.Studio.SetNotice("", false)

	a.Logger.Debug().
		Str("name", src.Name).
		Str("mime", src.MIME).
		Int64("bytes", src.Size).
		Msg("studio: photo uploaded")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func uploadMessage(msgs i18n.Messages, err error, maxMB int64) string {
	switch {
	case errors.Is(err, upload.ErrNoFile):
		return msgs.UploadMissing
	case errors.Is(err, upload.ErrTooLarge):
		return msgs.TooLargeMessage(maxMB)
	case errors.Is(err, upload.ErrNotImage):
		return msgs.UploadUnsupported
	default:
		return msgs.UploadFailed
	}
}
