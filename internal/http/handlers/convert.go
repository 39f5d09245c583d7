package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fotoseni/internal/domain"
	"fotoseni/internal/i18n"
	"fotoseni/internal/imagegen"
	"fotoseni/internal/middleware"
)

// StudioConvert runs one conversion for the studio view. The submission is
// rejected up front when another conversion is outstanding or no photo is
// uploaded; otherwise the call runs to a terminal outcome before redirecting,
// on a context detached from the browser connection so a closed tab cannot
// cancel it.
func (a *App) StudioConvert(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	msgs := i18n.For(locale)

	category := domain.Category(r.FormValue("category"))
	styleID := r.FormValue("style")
	instructions := r.FormValue("instructions")

	source, err := a.Studio.Begin(category, styleID, instructions, msgs.Converting)
	if err != nil {
		if !errors.Is(err, domain.ErrBusy) {
			a.Studio.SetNotice(msgs.MissingInput, true)
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	a.runConversion(context.WithoutCancel(r.Context()), imagegen.ConvertRequest{
		Source:       source,
		Category:     category,
		StyleID:      styleID,
		Instructions: instructions,
		Locale:       locale,
		RequestID:    middleware.RequestIDFromContext(r.Context()),
	}, msgs)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// runConversion drives one submission from Begin to Finish or Fail. The
// recover barrier keeps the invariant that the studio never sticks loading.
func (a *App) runConversion(ctx context.Context, req imagegen.ConvertRequest, msgs i18n.Messages) {
	a.Stats.ConversionStarted()

	defer func() {
		if p := recover(); p != nil {
			a.Logger.Error().Interface("panic", p).Msg("studio: conversion panicked")
			a.Stats.ConversionFailed()
			a.Studio.Fail(msgs.ConversionFailed)
		}
	}()

	art, err := a.Converter.Convert(ctx, req)
	if err != nil {
		a.Stats.ConversionFailed()
		a.Studio.Fail(conversionMessage(msgs, err))
		return
	}

	a.Stats.ConversionSucceeded()
	a.Studio.Finish(art)
}

// conversionMessage maps the conversion error taxonomy to the localized
// banner text.
func conversionMessage(msgs i18n.Messages, err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingInput):
		return msgs.MissingInput
	case errors.Is(err, domain.ErrNoImage):
		return msgs.NoImage
	default:
		return msgs.FailureMessage(failureDetail(err))
	}
}

// failureDetail extracts the human-readable remainder of a provider failure,
// dropping the wrapping added along the way.
func failureDetail(err error) string {
	msg := err.Error()
	msg = strings.TrimSuffix(msg, ": "+domain.ErrProviderFailure.Error())
	msg = strings.TrimPrefix(msg, "convert photo: ")
	return strings.TrimSpace(msg)
}
