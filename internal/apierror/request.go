package apierror

// Errors for requests that fail before reaching the service layer.

func InvalidBody() ErrorMessage {
	return ErrorMessage{
		Code:    "REQUEST_BODY_INVALID",
		Message: "The body of your request contains invalid or un-parseable data. Please check and try again.",
	}
}

func InvalidID() ErrorMessage {
	return ErrorMessage{
		Code:    "REQUEST_ID_INVALID",
		Message: "The id specified in the request path is not a valid integer.",
	}
}
