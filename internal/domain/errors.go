package domain

import "errors"

var (
	ErrMissingInput    = errors.New("missing input")
	ErrNoImage         = errors.New("no image produced")
	ErrProviderFailure = errors.New("provider failure")
	ErrBusy            = errors.New("conversion already in flight")
	ErrNoResult        = errors.New("no result available")
)
