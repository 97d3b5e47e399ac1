package model

// ValidateOnEvent names a UI event a validation rule fires on.
type ValidateOnEvent string

const (
	ValidateOnBlur   ValidateOnEvent = "blur"
	ValidateOnSubmit ValidateOnEvent = "submit"
	ValidateOnChange ValidateOnEvent = "change"
)

// ValidationRule describes a single field-level or form-level validation
// constraint that use case steps may reference.
type ValidationRule struct {
	DocumentBase

	RuleType     string
	ErrorMessage string
	ValidateOn   []ValidateOnEvent
}
