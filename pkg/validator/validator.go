package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RecipientTag validates an email recipient: non-empty local part, "@",
// and a domain with at least one dot-separated segment.
const RecipientTag = "recipient"

var recipientPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CustomValidator wraps go-playground/validator with the recipient tag
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation(RecipientTag, func(fl validator.FieldLevel) bool {
		return recipientPattern.MatchString(fl.Field().String())
	})
	return &CustomValidator{v: v}
}

// Var validates a single value against a tag expression
func (cv *CustomValidator) Var(field interface{}, tag string) error {
	return cv.v.Var(field, tag)
}

// IsRecipient reports whether addr is an admissible email recipient
func (cv *CustomValidator) IsRecipient(addr string) bool {
	return cv.Var(addr, RecipientTag) == nil
}
