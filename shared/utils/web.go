package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nadeuri-dev/nadeuri/shared/api"
	"github.com/nadeuri-dev/nadeuri/shared/domain"
	shared_errors "github.com/nadeuri-dev/nadeuri/shared/errors"
	"github.com/nadeuri-dev/nadeuri/shared/logger"
)

var (
	ErrInvalidJSON = &shared_errors.ErrorWithStatusCode{Code: "INVALID_REQUEST", Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	ErrValidation  = &shared_errors.ErrorWithStatusCode{Code: "INVALID_REQUEST", Message: "Required fields missing or invalid", StatusCode: http.StatusBadRequest}
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseCategory(fl.Field().String())
		return err == nil
	})
	return v
}

// WriteJSON writes v as JSON. The encoder escapes <, > and & as \u003c,
// \u003e and \u0026, the decoded text is unchanged.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// WriteSuccess writes a success envelope around data, data may be nil.
func WriteSuccess(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, api.Success(data))
}

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var e *shared_errors.ErrorWithStatusCode
	if errors.As(err, &e) {
		code := e.Code
		if code == "" {
			code = http.StatusText(e.StatusCode)
		}
		WriteJSON(w, e.StatusCode, api.Failure(code, e.Message))
		return
	}
	// default error is 500, raw message stays in logs
	logger.Log.Error("unhandled error", "error", err)
	WriteJSON(w, http.StatusInternalServerError, api.Failure("INTERNAL_ERROR", "Internal server error"))
}

func DecodeValidate(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid json body", "error", err)
		return ErrInvalidJSON.WithCause(err)
	}
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("body validation failed", "error", err)
		return ErrValidation.WithCause(err)
	}
	return nil
}
