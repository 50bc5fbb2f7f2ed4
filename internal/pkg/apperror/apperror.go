package apperror

// Error codes shared by all modules.
const (
	CodeInvalidInput        = "INVALID_INPUT"
	CodeValidationFailed    = "VALIDATION_FAILED"
	CodeUnauthorized        = "NOT_AUTHENTICATED"
	CodeForbidden           = "FORBIDDEN"
	CodeNotFound            = "NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeUpstreamUnreachable = "UPSTREAM_UNREACHABLE"
	CodeUpstreamRejected    = "UPSTREAM_REJECTED"
	CodeInternalError       = "INTERNAL_ERROR"
)

type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func (e *AppError) Error() string {
	return e.Message
}
