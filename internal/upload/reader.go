package upload

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fotoseni/internal/domain"
)

// Errors reported by ReadImage. Handlers map each one to a localized banner.
var (
	ErrNoFile   = errors.New("no photo in request")
	ErrTooLarge = errors.New("photo exceeds size limit")
	ErrNotImage = errors.New("file is not an image")
)

// ReadImage extracts the uploaded photo from a multipart request, capping the
// read at maxBytes. The declared content type is trusted when it looks like an
// image; otherwise the type is sniffed from the leading bytes. No dimension or
// quality validation happens here.
func ReadImage(r *http.Request, field string, maxBytes int64) (*domain.SourceImage, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, ErrNoFile
		}
		return nil, fmt.Errorf("read form file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrTooLarge
	}
	if len(data) == 0 {
		return nil, ErrNoFile
	}

	mime := strings.TrimSpace(header.Header.Get("Content-Type"))
	if mime == "" || strings.EqualFold(mime, "application/octet-stream") {
		mime = http.DetectContentType(data)
	}
	if !strings.HasPrefix(strings.ToLower(mime), "image/") {
		return nil, ErrNotImage
	}

	return &domain.SourceImage{
		Data: data,
		MIME: mime,
		Name: header.Filename,
		Size: int64(len(data)),
	}, nil
}
