package restval

import "fmt"

// Error category names (exported consts so endpoint code can branch on the
// category without string literals). These strings are part of the response
// contract consumed by callers; treat them as frozen.
const (
	NameMissingParameter = "Request Error - Missing Required Parameter"
	NameWrongParameter   = "Request Error - Incorrect Parameter Name"
	NameWrongType        = "Request Error - Incorrect Parameter Type"
	NameInvalidValue     = "Request Error - Incorrect Parameter Value"
)

// ErrorRecord is the structured result of one validation failure. Status is
// always 400: every category describes a defect in the request, never in the
// endpoint. The record is data, not control flow; Validate returns it rather
// than panicking or wrapping it in an error chain.
type ErrorRecord struct {
	Status  int    `json:"status"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Error implements error for callers that flow records through error returns.
func (e *ErrorRecord) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

func errMissing(name string) *ErrorRecord {
	return &ErrorRecord{
		Status:  400,
		Name:    NameMissingParameter,
		Message: fmt.Sprintf("The parameter '%s' was missing from the request, but is required for this endpoint.", name),
	}
}

func errUnexpected(key string) *ErrorRecord {
	return &ErrorRecord{
		Status:  400,
		Name:    NameWrongParameter,
		Message: fmt.Sprintf("The parameter with name '%s' was unexpected in this request.", key),
	}
}

func errWrongType(name, actual, expected string) *ErrorRecord {
	return &ErrorRecord{
		Status:  400,
		Name:    NameWrongType,
		Message: fmt.Sprintf("The parameter '%s' has the type '%s', but was expected to have the type '%s' instead.", name, actual, expected),
	}
}

func errInvalidValue(name, value, allowed string) *ErrorRecord {
	return &ErrorRecord{
		Status:  400,
		Name:    NameInvalidValue,
		Message: fmt.Sprintf("The parameter '%s' with the value '%s' was not found in the expected value list: '%s'.", name, value, allowed),
	}
}
