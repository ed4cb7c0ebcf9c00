package intent

import "errors"

// Extraction errors. Any of these aborts the whole pipeline invocation.
var (
	ErrNoJSONFound        = errors.New("no JSON object found in completion output")
	ErrMalformedJSON      = errors.New("completion output JSON is malformed")
	ErrServiceUnavailable = errors.New("completion service unavailable")
)
