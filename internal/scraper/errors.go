package scraper

import "errors"

var (
	//ErrContentTimeout: the page loaded but its expected content never
	//appeared within the readiness timeout.
	ErrContentTimeout = errors.New("content did not appear before timeout")

	//ErrFieldMissing: a detail page lacks one of the required elements.
	ErrFieldMissing = errors.New("required element missing on page")
)
