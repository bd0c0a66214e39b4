package validation

import (
	"net/http"

	shared_errors "github.com/nadeuri-dev/nadeuri/shared/errors"
)

// ErrPayloadTooLarge is returned when the request body exceeds size limits
var ErrPayloadTooLarge = &shared_errors.ErrorWithStatusCode{
	Code:       "PAYLOAD_TOO_LARGE",
	Message:    "payload too large",
	StatusCode: http.StatusRequestEntityTooLarge,
}

// ErrMissingPart is returned when a required multipart part is absent
var ErrMissingPart = &shared_errors.ErrorWithStatusCode{
	Code:       "INVALID_REQUEST",
	Message:    "missing multipart part",
	StatusCode: http.StatusBadRequest,
}

// ErrNotMultipart is returned when the body is not a readable multipart form
var ErrNotMultipart = &shared_errors.ErrorWithStatusCode{
	Code:       "INVALID_REQUEST",
	Message:    "request must be multipart/form-data",
	StatusCode: http.StatusBadRequest,
}
