package api

// Envelope wraps every API response body.
type Envelope struct {
	Success bool           `json:"success"`
	Data    any            `json:"data"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Success(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func Failure(code, message string) Envelope {
	return Envelope{Success: false, Error: &ErrorResponse{Code: code, Message: message}}
}
