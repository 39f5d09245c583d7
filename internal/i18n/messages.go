package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.English,
	language.Indonesian,
}

var matcher = language.NewMatcher(supported)

// Messages holds every fixed user-facing string for one locale. The studio
// renders exclusively from this catalog so wording stays consistent between
// the page and the JSON API.
type Messages struct {
	AppTitle          string
	Tagline           string
	UploadLabel       string
	UploadButton      string
	CategoryLabel     string
	StyleLabel        string
	InstructionsLabel string
	InstructionsHint  string
	SubmitButton      string
	Converting        string
	ResultHeading     string
	DownloadButton    string
	ResetButton       string

	MissingInput     string
	NoImage          string
	ConversionFailed string
	conversionDetail string

	UploadMissing     string
	UploadUnsupported string
	UploadFailed      string
	uploadTooLarge    string
}

var catalogs = map[string]Messages{
	"en": {
		AppTitle:          "fotoseni studio",
		Tagline:           "Turn your photo into art.",
		UploadLabel:       "Photo",
		UploadButton:      "Use this photo",
		CategoryLabel:     "Convert into",
		StyleLabel:        "Style",
		InstructionsLabel: "Extra details (optional)",
		InstructionsHint:  "e.g. keep the glasses, pastel colors",
		SubmitButton:      "Convert photo",
		Converting:        "Converting your photo...",
		ResultHeading:     "Your artwork",
		DownloadButton:    "Download",
		ResetButton:       "Change style",

		MissingInput:     "Please upload a photo and pick a style first.",
		NoImage:          "No image was produced. Try a different photo or style.",
		ConversionFailed: "Conversion failed. Please try again.",
		conversionDetail: "Conversion failed: %s",

		UploadMissing:     "Choose a photo to upload first.",
		UploadUnsupported: "That file is not an image.",
		UploadFailed:      "The photo could not be read. Please try again.",
		uploadTooLarge:    "That photo is too large. Maximum size is %d MB.",
	},
	"id": {
		AppTitle:          "fotoseni studio",
		Tagline:           "Ubah fotomu menjadi karya seni.",
		UploadLabel:       "Foto",
		UploadButton:      "Pakai foto ini",
		CategoryLabel:     "Ubah menjadi",
		StyleLabel:        "Gaya",
		InstructionsLabel: "Detail tambahan (opsional)",
		InstructionsHint:  "mis. pertahankan kacamata, warna pastel",
		SubmitButton:      "Konversi foto",
		Converting:        "Sedang mengonversi foto...",
		ResultHeading:     "Karya senimu",
		DownloadButton:    "Unduh",
		ResetButton:       "Ganti gaya",

		MissingInput:     "Unggah foto dan pilih gaya terlebih dahulu.",
		NoImage:          "Tidak ada gambar yang dihasilkan. Coba foto atau gaya lain.",
		ConversionFailed: "Konversi gagal. Silakan coba lagi.",
		conversionDetail: "Konversi gagal: %s",

		UploadMissing:     "Pilih foto terlebih dahulu.",
		UploadUnsupported: "Berkas itu bukan gambar.",
		UploadFailed:      "Foto tidak dapat dibaca. Silakan coba lagi.",
		uploadTooLarge:    "Foto terlalu besar. Maksimal %d MB.",
	},
}

// Normalize maps any BCP 47 tag to a supported catalog locale.
func Normalize(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return "en"
	}
	desired, _, err := language.ParseAcceptLanguage(locale)
	if err != nil {
		return "en"
	}
	_, idx, conf := matcher.Match(desired...)
	if conf == language.No {
		return "en"
	}
	if supported[idx] == language.Indonesian {
		return "id"
	}
	return "en"
}

// For returns the message catalog for the given locale, falling back to
// English for anything unsupported.
func For(locale string) Messages {
	if m, ok := catalogs[Normalize(locale)]; ok {
		return m
	}
	return catalogs["en"]
}

// FailureMessage formats the transport-failure banner. The detail comes from
// the underlying error when one is available; otherwise the generic fixed
// message is used.
func (m Messages) FailureMessage(detail string) string {
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return m.ConversionFailed
	}
	return fmt.Sprintf(m.conversionDetail, detail)
}

// TooLargeMessage formats the upload size banner for the configured cap.
func (m Messages) TooLargeMessage(maxMB int64) string {
	return fmt.Sprintf(m.uploadTooLarge, maxMB)
}
