package restlet

import "errors"

var (
	// ErrMissingContentType reports a request without a Content-Type header.
	ErrMissingContentType = errors.New("restlet: missing content type")
	// ErrUnsupportedMediaType reports a non-JSON request body.
	ErrUnsupportedMediaType = errors.New("restlet: unsupported media type")
	// ErrInvalidJSON reports a body that could not be decoded as JSON.
	ErrInvalidJSON = errors.New("restlet: invalid JSON body")
)
