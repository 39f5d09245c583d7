package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category enumerates the two conversion targets offered by the studio.
type Category string

const (
	CategoryArtPainting Category = "art-painting"
	CategoryCaricature  Category = "caricature"
)

var titleCaser = cases.Title(language.Und)

// Categories returns the selectable categories in display order.
func Categories() []Category {
	return []Category{CategoryArtPainting, CategoryCaricature}
}

// Valid reports whether the category is one of the selectable values.
func (c Category) Valid() bool {
	switch c {
	case CategoryArtPainting, CategoryCaricature:
		return true
	}
	return false
}

// PromptToken returns the phrase inserted into the conversion prompt.
func (c Category) PromptToken() string {
	switch c {
	case CategoryCaricature:
		return "caricature"
	default:
		return "art painting"
	}
}

// DisplayLabel returns the Title-cased label shown on selectors.
func (c Category) DisplayLabel() string {
	return titleCaser.String(c.PromptToken())
}

// Style pairs a stable form identifier with the label used verbatim in prompts
// and selectors.
type Style struct {
	ID    string
	Label string
}

// styleCatalog is ordered; the order is part of the studio contract and must
// not be rearranged.
var styleCatalog = []Style{
	{ID: "watercolor", Label: "watercolor"},
	{ID: "impressionist", Label: "impressionist"},
	{ID: "digital-art", Label: "digital art"},
	{ID: "oil-painting", Label: "oil painting"},
	{ID: "pencil-sketch", Label: "pencil sketch"},
	{ID: "3d-cartoon", Label: "3D cartoon"},
	{ID: "anime", Label: "anime"},
	{ID: "cute-sticker", Label: "cute sticker"},
	{ID: "us-comic", Label: "US comic"},
	{ID: "classic", Label: "classic"},
}

// Styles returns the style catalog in display order.
func Styles() []Style {
	out := make([]Style, len(styleCatalog))
	copy(out, styleCatalog)
	return out
}

// DefaultStyle returns the style selected when the studio first loads.
func DefaultStyle() Style {
	return styleCatalog[0]
}

// StyleByID resolves a style from its form identifier.
func StyleByID(id string) (Style, bool) {
	for _, s := range styleCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return Style{}, false
}
