package models

// FieldError describes a single request-validation failure: which field
// broke which rule, with a human-readable message.
type FieldError struct {
	// Type is a machine-readable error kind tag, e.g. "missing" or
	// "float_parsing".
	Type string `json:"type"`

	// Loc is the path to the offending field, e.g. ["body", "a"].
	Loc []string `json:"loc"`

	// Msg is the human-readable description of the failure.
	Msg string `json:"msg"`
}

// ValidationErrorResponse is the body of every HTTP 422 response.
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}
