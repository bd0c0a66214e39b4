package errors

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
	Code       string // stable machine-readable kind, rendered in the error envelope
	Cause      error  // never rendered to clients
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func (e *ErrorWithStatusCode) Unwrap() error {
	return e.Cause
}

// Is matches errors of the same Code so that wrapped copies of a
// package-level error still satisfy errors.Is.
func (e *ErrorWithStatusCode) Is(target error) bool {
	t, ok := target.(*ErrorWithStatusCode)
	if !ok {
		return false
	}
	if e.Code == "" || t.Code == "" {
		return e == t
	}
	return e.Code == t.Code
}

// WithCause returns a copy of e carrying cause.
func (e *ErrorWithStatusCode) WithCause(cause error) *ErrorWithStatusCode {
	c := *e
	c.Cause = cause
	return &c
}
