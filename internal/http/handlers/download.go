package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fotoseni/internal/domain"
)

// StudioDownload streams the current artwork as an attachment. The filename
// is a fixed prefix plus a timestamp suffix, with the extension matching the
// artwork's media type.
func (a *App) StudioDownload(w http.ResponseWriter, r *http.Request) {
	art, err := a.Studio.Result()
	if err != nil {
		if errors.Is(err, domain.ErrNoResult) {
			a.error(w, http.StatusNotFound, "not_found", "no artwork to download")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to load artwork")
		return
	}

	filename := fmt.Sprintf("fotoseni-art-%s%s", time.Now().Format("20060102-150405"), art.Ext())
	w.Header().Set("Content-Type", art.MIME)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(art.Data)))
	_, _ = w.Write(art.Data)
}
