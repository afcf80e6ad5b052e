package api

var (
	errorMessageMap = map[int64]string{
		1011: "cannot parse request",

		1100: "one or more input fields are invalid",
	}

	errorCannotParseRequest = errorJSON(1011)
	errorInvalidInput       = errorJSON(1100)
)

type ErrorResponse struct {
	Code    int64    `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// validationErrorJSON attaches the per-field messages, in field order, to
// the standard invalid-input error object.
func validationErrorJSON(errors []string) ErrorResponse {
	resp := errorInvalidInput
	resp.Errors = errors
	return resp
}
