package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0x42}, 32)...)

func multipartRequest(t *testing.T, field, filename, contentType string, payload []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/studio/image", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestReadImageDeclaredType(t *testing.T) {
	req := multipartRequest(t, "photo", "me.png", "image/png", pngBytes)
	src, err := ReadImage(req, "photo", 1<<20)
	if err != nil {
		t.Fatalf("ReadImage: %v", err)
	}
	if src.MIME != "image/png" {
		t.Fatalf("mime = %q, want image/png", src.MIME)
	}
	if src.Name != "me.png" {
		t.Fatalf("name = %q, want me.png", src.Name)
	}
	if !bytes.Equal(src.Data, pngBytes) || src.Size != int64(len(pngBytes)) {
		t.Fatalf("payload mismatch: %d bytes, size %d", len(src.Data), src.Size)
	}
}

func TestReadImageSniffsGenericType(t *testing.T) {
	req := multipartRequest(t, "photo", "me.bin", "application/octet-stream", pngBytes)
	src, err := ReadImage(req, "photo", 1<<20)
	if err != nil {
		t.Fatalf("ReadImage: %v", err)
	}
	if src.MIME != "image/png" {
		t.Fatalf("sniffed mime = %q, want image/png", src.MIME)
	}
}

func TestReadImageRejectsNonImage(t *testing.T) {
	req := multipartRequest(t, "photo", "notes.txt", "", []byte("just some plain text, definitely not pixels"))
	if _, err := ReadImage(req, "photo", 1<<20); !errors.Is(err, ErrNotImage) {
		t.Fatalf("err = %v, want ErrNotImage", err)
	}
}

func TestReadImageRejectsTooLarge(t *testing.T) {
	req := multipartRequest(t, "photo", "big.png", "image/png", bytes.Repeat(pngBytes, 10))
	if _, err := ReadImage(req, "photo", 64); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
}

func TestReadImageMissingFile(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("style", "watercolor"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/studio/image", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	if _, err := ReadImage(req, "photo", 1<<20); !errors.Is(err, ErrNoFile) {
		t.Fatalf("err = %v, want ErrNoFile", err)
	}
}

func TestReadImageEmptyFile(t *testing.T) {
	req := multipartRequest(t, "photo", "empty.png", "image/png", nil)
	if _, err := ReadImage(req, "photo", 1<<20); !errors.Is(err, ErrNoFile) {
		t.Fatalf("err = %v, want ErrNoFile", err)
	}
}
