package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fotoseni/internal/domain"
)

func TestConvertAPISuccess(t *testing.T) {
	conv := &fakeConverter{art: &domain.ArtImage{Data: []byte("artwork"), MIME: "image/png", Prompt: "the prompt", Model: "gemini-2.5-flash-image"}}
	app := testApp(conv)

	src := uploadRequest(t, testPNG, map[string]string{"category": "caricature", "style": "cute-sticker", "instructions": "pastel"})
	req := httptest.NewRequest(http.MethodPost, "/v1/convert", src.Body)
	req.Header.Set("Content-Type", src.Header.Get("Content-Type"))

	rr := httptest.NewRecorder()
	app.ConvertAPI(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var payload convertResponse
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Model != "gemini-2.5-flash-image" || payload.Prompt != "the prompt" || payload.MIME != "image/png" {
		t.Fatalf("payload mismatch: %+v", payload)
	}
	if decoded, _ := base64.StdEncoding.DecodeString(payload.Data); string(decoded) != "artwork" {
		t.Fatalf("data mismatch: %q", payload.Data)
	}
	if conv.last.Category != domain.CategoryCaricature || conv.last.StyleID != "cute-sticker" || conv.last.Instructions != "pastel" {
		t.Fatalf("converter request mismatch: %+v", conv.last)
	}
	// stateless: the studio view is untouched
	if v := app.Studio.Snapshot(); v.Source != nil || v.Result != nil {
		t.Fatalf("API conversion leaked into studio state: %+v", v)
	}
}

func TestConvertAPIErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"missing input", fmt.Errorf("unknown style: %w", domain.ErrMissingInput), http.StatusUnprocessableEntity, "missing_input"},
		{"no image", fmt.Errorf("convert photo: %w", domain.ErrNoImage), http.StatusBadGateway, "no_image"},
		{"provider failure", fmt.Errorf("convert photo: boom: %w", domain.ErrProviderFailure), http.StatusBadGateway, "provider_failure"},
		{"unclassified", errors.New("boom"), http.StatusBadGateway, "provider_failure"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := testApp(&fakeConverter{err: tc.err})

			src := uploadRequest(t, testPNG, map[string]string{"category": "art-painting", "style": "watercolor"})
			req := httptest.NewRequest(http.MethodPost, "/v1/convert", src.Body)
			req.Header.Set("Content-Type", src.Header.Get("Content-Type"))

			rr := httptest.NewRecorder()
			app.ConvertAPI(rr, req)

			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			var payload struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if payload.Error.Code != tc.wantCode {
				t.Fatalf("code = %q, want %q", payload.Error.Code, tc.wantCode)
			}
			if payload.Error.Message == "" {
				t.Fatalf("message empty")
			}
		})
	}
}

func TestConvertAPIWithoutPhoto(t *testing.T) {
	conv := &fakeConverter{}
	app := testApp(conv)

	req := httptest.NewRequest(http.MethodPost, "/v1/convert", nil)

	rr := httptest.NewRecorder()
	app.ConvertAPI(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rr.Code)
	}
	if conv.calls != 0 {
		t.Fatalf("converter called without a photo")
	}
}

func TestStylesCatalog(t *testing.T) {
	app := testApp(&fakeConverter{})

	rr := httptest.NewRecorder()
	app.StylesCatalog(rr, httptest.NewRequest(http.MethodGet, "/v1/styles", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var payload struct {
		Categories []catalogEntry `json:"categories"`
		Styles     []catalogEntry `json:"styles"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Categories) != 2 || payload.Categories[0].ID != "art-painting" {
		t.Fatalf("categories mismatch: %+v", payload.Categories)
	}
	if len(payload.Styles) != 10 || payload.Styles[0].ID != "watercolor" || payload.Styles[9].ID != "classic" {
		t.Fatalf("styles mismatch: %+v", payload.Styles)
	}
}

func TestStatsSummaryCounts(t *testing.T) {
	app := testApp(&fakeConverter{art: testArt()})
	app.StudioUpload(httptest.NewRecorder(), uploadRequest(t, testPNG, nil))
	app.StudioConvert(httptest.NewRecorder(), convertRequest("art-painting", "watercolor", ""))

	rr := httptest.NewRecorder()
	app.StatsSummary(rr, httptest.NewRequest(http.MethodGet, "/v1/stats", nil))

	var payload map[string]int64
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["conversions_started"] != 1 || payload["conversions_succeeded"] != 1 || payload["conversions_failed"] != 0 {
		t.Fatalf("counters mismatch: %+v", payload)
	}
}
