package domain

// Messages reported for rejected submission fields.
const (
	MsgInvalidName        = "Invalid name"
	MsgInvalidEmail       = "Invalid email"
	MsgInvalidPhone       = "Invalid phone"
	MsgInvalidAddress     = "Invalid address"
	MsgInvalidInstitution = "Invalid institution"
	MsgInvalidTitle       = "Invalid title"
	MsgInvalidDate        = "Invalid date"
	MsgInvalidCompany     = "Invalid company"
	MsgInvalidPosition    = "Invalid position"
	MsgInvalidDescription = "Invalid description"
	MsgInvalidCV          = "Invalid CV data"
)

// ValidationError reports the first submission field that failed its check.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
