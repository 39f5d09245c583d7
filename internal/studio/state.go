package studio

import (
	"fmt"
	"sync"

	"fotoseni/internal/domain"
)

// State is the single studio view owned by the process entry point. The
// original app mutated one view object from a single event loop; here the
// same discipline is a mutex plus explicit transition methods. At most one
// conversion is in flight: Begin rejects a second submit with ErrBusy.
type State struct {
	mu sync.Mutex

	source       *domain.SourceImage
	category     domain.Category
	styleID      string
	instructions string

	loading bool
	message string
	isError bool
	result  *domain.ArtImage
}

// View is an immutable snapshot of the studio for rendering.
type View struct {
	Source       *domain.SourceImage
	Category     domain.Category
	StyleID      string
	Instructions string
	Loading      bool
	Message      string
	IsError      bool
	Result       *domain.ArtImage
}

// NewState returns a studio with the default selection: art painting in the
// first catalog style, no photo, nothing in flight.
func NewState() *State {
	return &State{
		category: domain.CategoryArtPainting,
		styleID:  domain.DefaultStyle().ID,
	}
}

// SetSource replaces the uploaded photo. It deliberately leaves loading,
// result, and message untouched: uploading while a result is shown keeps the
// result until the next submit.
func (s *State) SetSource(img *domain.SourceImage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = img
}

// SetSelection records the last-seen form fields so the rendered page
// reflects them between submits.
func (s *State) SetSelection(category domain.Category, styleID, instructions string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applySelection(category, styleID, instructions)
}

func (s *State) applySelection(category domain.Category, styleID, instructions string) {
	if category.Valid() {
		s.category = category
	}
	if _, ok := domain.StyleByID(styleID); ok {
		s.styleID = styleID
	}
	s.instructions = instructions
}

// SetNotice shows a banner without touching the rest of the view. Used for
// upload read failures, which the studio surfaces instead of swallowing.
func (s *State) SetNotice(message string, isError bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
	s.isError = isError
}

// Begin starts a conversion: it records the selection, clears the previous
// result and banner, and raises the loading flag. It fails with ErrBusy when
// a conversion is already outstanding and with ErrMissingInput when no photo
// has been uploaded.
func (s *State) Begin(category domain.Category, styleID, instructions, loadingMsg string) (*domain.SourceImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loading {
		return nil, domain.ErrBusy
	}
	if s.source == nil || len(s.source.Data) == 0 {
		return nil, fmt.Errorf("no photo uploaded: %w", domain.ErrMissingInput)
	}

	s.applySelection(category, styleID, instructions)
	s.result = nil
	s.isError = false
	s.message = loadingMsg
	s.loading = true
	return s.source, nil
}

// Finish completes a conversion with a result.
func (s *State) Finish(art *domain.ArtImage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.result = art
	s.message = ""
	s.isError = false
}

// Fail completes a conversion with an error banner and no result.
func (s *State) Fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.result = nil
	s.message = message
	s.isError = true
}

// Reset is the "change style" action: the result and banner are cleared, the
// uploaded photo and current selection are kept.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = nil
	s.message = ""
	s.isError = false
}

// Result returns the live artwork, or ErrNoResult when none is shown.
func (s *State) Result() (*domain.ArtImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return nil, domain.ErrNoResult
	}
	return s.result, nil
}

// Snapshot copies the view for rendering.
func (s *State) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		Source:       s.source,
		Category:     s.category,
		StyleID:      s.styleID,
		Instructions: s.instructions,
		Loading:      s.loading,
		Message:      s.message,
		IsError:      s.isError,
		Result:       s.result,
	}
}
