package domain

import (
	"encoding/base64"
	"strings"
	"time"
)

// SourceImage is the user's uploaded photo, held in memory for the lifetime of
// the current selection. Replacing the selection drops the previous value
// wholesale; nothing is written to disk.
type SourceImage struct {
	Data []byte
	MIME string
	Name string
	Size int64
}

// Base64 returns the transport encoding of the photo bytes.
func (s *SourceImage) Base64() string {
	if s == nil || len(s.Data) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(s.Data)
}

// DataURL returns an inline preview reference for the photo. Both the preview
// and the transport payload derive from Data, so they cannot disagree.
func (s *SourceImage) DataURL() string {
	if s == nil || len(s.Data) == 0 {
		return ""
	}
	return "data:" + s.MIME + ";base64," + s.Base64()
}

// ArtImage is a successfully converted artwork as returned by the provider.
type ArtImage struct {
	Data      []byte
	MIME      string
	Prompt    string
	Model     string
	CreatedAt time.Time
}

// DataURL returns an inline reference for rendering the artwork.
func (a *ArtImage) DataURL() string {
	if a == nil || len(a.Data) == 0 {
		return ""
	}
	return "data:" + a.MIME + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

// Ext returns the download file extension for the artwork's media type.
func (a *ArtImage) Ext() string {
	if a == nil {
		return ".png"
	}
	switch strings.ToLower(strings.TrimSpace(a.MIME)) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
