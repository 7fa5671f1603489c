package exception

import "fmt"

type DocumentNotFoundError struct {
	*AppError
	DocumentId string
}

func NewDocumentNotFoundError(documentId string) *DocumentNotFoundError {
	return &DocumentNotFoundError{
		AppError: &AppError{
			Code:    "DOCUMENT_NOT_FOUND",
			Message: fmt.Sprintf("document with id '%s' does not exist", documentId),
		},
		DocumentId: documentId,
	}
}

type DatabaseError struct {
	*AppError
}

func NewDatabaseError(message string, cause error) *DatabaseError {
	return &DatabaseError{
		AppError: &AppError{
			Code:    "DATABASE_ERROR",
			Message: message,
			Cause:   cause,
		},
	}
}
