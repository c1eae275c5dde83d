package service

import (
	"errors"
	"fmt"
)

// Validation errors caught before any network call.
var (
	ErrNoSupplier          = errors.New("no supplier selected")
	ErrEmptySelection      = errors.New("no products selected")
	ErrQuantityNotPositive = errors.New("quantity must be at least 1")
	ErrNotSelected         = errors.New("product is not in the selection")
)

// ErrTemplateFetch wraps any failure loading the template view so callers can
// show a retriable message instead of the raw driver error.
var ErrTemplateFetch = errors.New("could not load product templates, please retry")

// SubmissionError is a non-2xx answer from the workflow webhook. The raw
// response body is kept so the user sees what the workflow rejected.
type SubmissionError struct {
	StatusCode int
	Body       string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("webhook returned %d: %s", e.StatusCode, e.Body)
}
