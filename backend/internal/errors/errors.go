package errors

import (
	"errors"
	"net/http"

	shared "github.com/nadeuri-dev/nadeuri/shared/errors"
)

// NotFound is returned by storages when a row does not exist.
var NotFound = errors.New("Not found")

// Board domain errors. Each operation surfaces exactly one of these; the
// underlying failure travels in Cause.
var (
	MemberNotFound = &shared.ErrorWithStatusCode{
		Code:       "MEMBER_NOT_FOUND",
		Message:    "Member not found",
		StatusCode: http.StatusNotFound,
	}
	BoardNotFound = &shared.ErrorWithStatusCode{
		Code:       "BOARD_NOT_FOUND",
		Message:    "Board not found",
		StatusCode: http.StatusNotFound,
	}
	BoardNotRegistered = &shared.ErrorWithStatusCode{
		Code:       "BOARD_NOT_REGISTERED",
		Message:    "Board was not registered",
		StatusCode: http.StatusInternalServerError,
	}
	BoardNotModified = &shared.ErrorWithStatusCode{
		Code:       "BOARD_NOT_MODIFIED",
		Message:    "Board was not modified",
		StatusCode: http.StatusInternalServerError,
	}
	BoardNotRemoved = &shared.ErrorWithStatusCode{
		Code:       "BOARD_NOT_REMOVED",
		Message:    "Board was not removed",
		StatusCode: http.StatusInternalServerError,
	}
)
