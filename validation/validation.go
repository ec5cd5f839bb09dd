// Package validation implements the field rules for user payloads as an
// ordered chain: presence is checked before format, format before range,
// and the first failing field is reported without aggregation.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/Jugal-Chanda/demo-CICD-github/models"
)

const (
	NameMinLength = 2
	NameMaxLength = 100
	AgeMin        = 0
	AgeMax        = 150
)

var validate = validator.New()

// Error identifies the offending field together with the machine-readable
// envelope code for it.
type Error struct {
	Field   string
	Message string
	Code    string
}

func (e *Error) Error() string { return e.Message }

func NewError(code, field, message string) *Error {
	return &Error{Field: field, Message: message, Code: code}
}

// Required rejects empty or whitespace-only values.
func Required(value, field string) *Error {
	if strings.TrimSpace(value) == "" {
		return NewError(models.CodeMissingRequiredField, field, fmt.Sprintf("%s is required", field))
	}
	return nil
}

// StringLength enforces inclusive length bounds on a required string.
// Bounds are in characters, not bytes, matching the char_length CHECK
// on the users table.
func StringLength(value, field string, min, max int) *Error {
	if err := Required(value, field); err != nil {
		return err
	}
	length := utf8.RuneCountInString(value)
	if length < min {
		return NewError(models.CodeValidationError, field, fmt.Sprintf("%s must be at least %d characters", field, min))
	}
	if length > max {
		return NewError(models.CodeValidationError, field, fmt.Sprintf("%s must be at most %d characters", field, max))
	}
	return nil
}

// Email checks presence then syntax.
func Email(value, field string) *Error {
	if err := Required(value, field); err != nil {
		return err
	}
	if err := validate.Var(value, "email"); err != nil {
		return NewError(models.CodeInvalidEmailFormat, field, fmt.Sprintf("Invalid %s format", field))
	}
	return nil
}

// AgeRange validates the optional age field when present.
func AgeRange(age *int, field string) *Error {
	if age == nil {
		return nil
	}
	if *age < AgeMin || *age > AgeMax {
		return NewError(models.CodeValidationError, field, fmt.Sprintf("Age must be between %d and %d", AgeMin, AgeMax))
	}
	return nil
}

// ValidateUserPayload normalizes and validates a whole-record payload in
// a fixed order: name presence, name length, email presence, email
// syntax, age range. Email uniqueness is the storage layer's concern and
// is checked by the service after these rules pass.
func ValidateUserPayload(p *models.UserPayload) *Error {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)

	if err := Required(p.Name, "name"); err != nil {
		return err
	}
	if err := StringLength(p.Name, "name", NameMinLength, NameMaxLength); err != nil {
		return err
	}
	if err := Email(p.Email, "email"); err != nil {
		return err
	}
	if err := AgeRange(p.Age, "age"); err != nil {
		return err
	}
	return nil
}
