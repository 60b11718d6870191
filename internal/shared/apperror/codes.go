package apperror

const (
	// 4xx
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"

	// 5xx
	CodeInternalError = "INTERNAL_ERROR"
)

// InternalMessage is the only text a client ever sees for an unclassified failure.
const InternalMessage = "Internal server error"
