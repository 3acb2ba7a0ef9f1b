package http

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var rePubID = regexp.MustCompile(`^[a-f0-9]{32}$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// public ids = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return rePubID.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("noticetype", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "JUST_NOTICE", "CONCEPT_NOTE", "PROPOSAL":
			return true
		}
		return false
	})
	_ = v.RegisterValidation("reviewstatus", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "ACCEPTED", "REJECTED", "NEEDS_MODIFICATION":
			return true
		}
		return false
	})
	_ = v.RegisterValidation("decisionstatus", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "ACCEPTED", "REJECTED":
			return true
		}
		return false
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "hex32":
			out = append(out, FieldError{Field: field, Message: "must be 32-char lowercase hex"})
		case "noticetype":
			out = append(out, FieldError{Field: field, Message: "must be JUST_NOTICE, CONCEPT_NOTE or PROPOSAL"})
		case "reviewstatus":
			out = append(out, FieldError{Field: field, Message: "must be ACCEPTED, REJECTED or NEEDS_MODIFICATION"})
		case "decisionstatus":
			out = append(out, FieldError{Field: field, Message: "must be ACCEPTED or REJECTED"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
