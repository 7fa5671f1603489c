package exception

// ContentCorruptError is returned when persisted bytes are unparsable by
// every decode tier. The surrounding app reports it and refuses to open the
// file.
type ContentCorruptError struct {
	*AppError
}

func NewContentCorruptError(cause error) *ContentCorruptError {
	return &ContentCorruptError{
		AppError: &AppError{
			Code:    "CONTENT_CORRUPT",
			Message: "document content is not decodable",
			Cause:   cause,
		},
	}
}

// ContentEncodingError is returned when document text is not representable in
// the on-disk byte encoding. Fatal for that save attempt.
type ContentEncodingError struct {
	*AppError
}

func NewContentEncodingError(message string) *ContentEncodingError {
	return &ContentEncodingError{
		AppError: &AppError{
			Code:    "CONTENT_ENCODING_FAILURE",
			Message: message,
		},
	}
}
