// Package restlet adapts the restval validator to HTTP-shaped request
// handling: decode the JSON body, validate it against a static schema, and
// either hand the payload to business logic or write the validation record
// verbatim as the response. The transport itself stays the host's concern;
// this package only implements http.Handler.
package restlet

import (
	"fmt"
	"net/http"
	"strings"

	gojson "github.com/goccy/go-json"

	restval "github.com/mwestly/restval"
)

// The name used for body-level failures that happen before validation can
// run. It deliberately sits outside the validator's four categories: a body
// that is not JSON never reached the schema.
const nameMalformedBody = "Request Error - Malformed Request Body"

// HandlerFunc is the business half of an endpoint. It receives the request
// and the decoded, schema-valid body, and returns the response status and
// payload.
type HandlerFunc func(r *http.Request, body any) (int, any)

// Endpoint wraps fn with JSON decoding and validation against schema. On a
// validation failure the restval.ErrorRecord is written as the response,
// status and all; fn only ever sees bodies the schema accepted.
func Endpoint(schema restval.Schema, fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeBody(r)
		if err != nil {
			WriteError(w, &restval.ErrorRecord{
				Status:  http.StatusBadRequest,
				Name:    nameMalformedBody,
				Message: err.Error(),
			})
			return
		}
		if rec := restval.Check(body, schema); rec != nil {
			WriteError(w, rec)
			return
		}
		status, payload := fn(r, body)
		writeJSON(w, status, payload)
	})
}

// decodeBody enforces an application/json content type and decodes the body
// into the any-tree shape the validator classifies.
func decodeBody(r *http.Request) (any, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}
	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}
	if mediaType != "application/json" {
		return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
	}

	var body any
	dec := gojson.NewDecoder(r.Body)
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return body, nil
}

// WriteError writes rec as the JSON response using its own status code.
func WriteError(w http.ResponseWriter, rec *restval.ErrorRecord) {
	writeJSON(w, rec.Status, rec)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	// Headers are already out; an encode failure cannot be reported to the
	// client anymore.
	_ = gojson.NewEncoder(w).Encode(payload)
}
