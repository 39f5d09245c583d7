package handlers

import (
	"net/http"

	"fotoseni/internal/domain"
)

type catalogEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// StylesCatalog lists the selectable categories and styles in display order,
// for clients building their own pickers against /v1/convert.
func (a *App) StylesCatalog(w http.ResponseWriter, r *http.Request) {
	categories := make([]catalogEntry, 0, 2)
	for _, c := range domain.Categories() {
		categories = append(categories, catalogEntry{ID: string(c), Label: c.DisplayLabel()})
	}
	styles := make([]catalogEntry, 0, len(domain.Styles()))
	for _, s := range domain.Styles() {
		styles = append(styles, catalogEntry{ID: s.ID, Label: s.Label})
	}
	a.json(w, http.StatusOK, map[string]any{
		"categories": categories,
		"styles":     styles,
	})
}
