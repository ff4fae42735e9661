// Package validation registers the custom binding rules used by request DTOs.
package validation

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// TagPhone is the binding tag for phone numbers.
const TagPhone = "phone"

var (
	phonePattern = regexp.MustCompile(`^\+?[0-9]{3,20}$`)

	registerOnce sync.Once
	registerErr  error
)

// IsPhone reports whether s is a numeric phone number (digits, optional leading '+').
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// Register installs the custom rules on gin's validator engine. Safe to call
// more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

// RegisterOn installs the custom rules on v.
func RegisterOn(v *validator.Validate) error {
	return v.RegisterValidation(TagPhone, func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
}
