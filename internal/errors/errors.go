package errors

import "errors"

var (
	// ErrUnsupportedContentType is returned when the request body encoding is not recognized.
	ErrUnsupportedContentType = errors.New("Unsupported content type")
	// ErrNotFound is returned when no user document matches the email key.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidUsername is returned on login when the email matches no user.
	ErrInvalidUsername = errors.New("invalid username")
	// ErrInvalidPassword is returned on login when the stored hash is absent or does not match.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrUpdateConflict is returned when an update matched zero documents.
	ErrUpdateConflict = errors.New("user not found for update")
)

// FieldError describes a single violated constraint on one field.
// Value is only echoed back when safe (never for passwords).
type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Param      string `json:"param,omitempty"`
	Value      string `json:"value,omitempty"`
}

// ValidationError collects every field violation found in one submission.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "Validation failed"
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// StatusResponse is the {status, msg} body used by login, update and delete.
type StatusResponse struct {
	Status  string       `json:"status"`
	Msg     string       `json:"msg,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

// Failure builds a failure StatusResponse with the given message.
func Failure(msg string) StatusResponse {
	return StatusResponse{Status: "failure", Msg: msg}
}

// Success builds a success StatusResponse with the given message.
func Success(msg string) StatusResponse {
	return StatusResponse{Status: "success", Msg: msg}
}
