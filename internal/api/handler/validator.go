package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	// dob: YYYY-MM-DD, at least 18 and at most 100 years ago.
	_ = v.RegisterValidation("dob", func(fl validator.FieldLevel) bool {
		t, err := time.Parse("2006-01-02", fl.Field().String())
		if err != nil {
			return false
		}
		now := time.Now()
		return !t.After(now.AddDate(-18, 0, 0)) && !t.Before(now.AddDate(-100, 0, 0))
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "numeric":
		return field + " must contain only digits"
	case "eqfield":
		return field + " must match " + strings.ToLower(fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "dob":
		return field + " must be a date of birth between 18 and 100 years ago"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
