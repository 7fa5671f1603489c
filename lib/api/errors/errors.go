package errors

// Error represents an API error
type Error struct {
	Message string `json:"message" example:"Document not found"`
	Error   int    `json:"error" example:"404"`
}

var InvalidRequestError = Error{
	Message: "Invalid request",
	Error:   400,
}

var DocumentNotFoundError = Error{
	Message: "Document not found",
	Error:   404,
}

var DocumentCorruptError = Error{
	Message: "Document content is corrupt",
	Error:   422,
}

var InternalServerError = Error{
	Message: "Internal server error",
	Error:   500,
}

func NewValidationError(detail string) Error {
	return Error{
		Message: "Validation failed: " + detail,
		Error:   400,
	}
}
