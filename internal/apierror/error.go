// Package apierror defines the error body returned by the API.
//
// Every error carries a stable machine-readable code that clients use for
// localization, a human readable message, and optional structured
// parameters. Parameters carry the offending values so that clients can
// format them into translated templates.
package apierror

// ErrorMessage is the error payload of an API response.
type ErrorMessage struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// General is the fallback for errors we cannot say anything useful about.
func General() ErrorMessage {
	return ErrorMessage{
		Code:    "GENERAL_ERROR",
		Message: "Something went wrong, please try again later.",
	}
}
