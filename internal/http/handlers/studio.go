package handlers

import (
	_ "embed"
	"html/template"
	"net/http"

	"fotoseni/internal/domain"
	"fotoseni/internal/i18n"
	"fotoseni/internal/middleware"
	"fotoseni/internal/studio"
)

//go:embed studio.html
var studioHTML string

var studioTemplate = template.Must(template.New("studio").Funcs(template.FuncMap{
	// html/template rewrites data: URLs to "#ZgotmplZ"; the inline previews
	// are built from bytes we already hold, so mark them as safe.
	"safeURL": func(s string) template.URL { return template.URL(s) },
}).Parse(studioHTML))

type selectOption struct {
	ID       string
	Label    string
	Selected bool
}

type studioPageData struct {
	Locale     string
	M          i18n.Messages
	View       studio.View
	Categories []selectOption
	Styles     []selectOption
}

// StudioPage renders the single studio view from a state snapshot.
func (a *App) StudioPage(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	view := a.Studio.Snapshot()

	data := studioPageData{
		Locale: i18n.Normalize(locale),
		M:      i18n.For(locale),
		View:   view,
	}
	for _, c := range domain.Categories() {
		data.Categories = append(data.Categories, selectOption{
			ID:       string(c),
			Label:    c.DisplayLabel(),
			Selected: c == view.Category,
		})
	}
	for _, s := range domain.Styles() {
		data.Styles = append(data.Styles, selectOption{
			ID:       s.ID,
			Label:    s.Label,
			Selected: s.ID == view.StyleID,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := studioTemplate.Execute(w, data); err != nil {
		a.Logger.Error().Err(err).Msg("studio: render page failed")
	}
}

// StudioReset handles the "change style" control: the result and banner are
// cleared, the uploaded photo stays selected.
func (a *App) StudioReset(w http.ResponseWriter, r *http.Request) {
	a.Studio.Reset()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
