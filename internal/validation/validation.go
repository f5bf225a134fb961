// Package validation turns raw request input into typed, validated commands.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"pixelgram/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,30}$`)

var (
	validate  = newValidator()
	sanitizer = bluemonday.StrictPolicy()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("email_or_blank", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || v.Var(s, "email") == nil
	})
	return v
}

// ValidUsername reports whether name is 3-30 characters of letters, digits, '_' or '-'.
func ValidUsername(name string) bool {
	return usernameRegex.MatchString(name)
}

// normalizer is implemented by commands that clean their fields before validation.
type normalizer interface {
	Normalize()
}

// Check normalizes cmd when it knows how and validates it. Violations are
// returned as a VALIDATION_ERROR AppError listing every offending field.
func Check(cmd any) error {
	if n, ok := cmd.(normalizer); ok {
		n.Normalize()
	}
	err := validate.Struct(cmd)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return models.NewInternalError(err)
	}
	fields := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, models.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return models.NewFieldValidationError(fields)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email", "email_or_blank":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "username":
		return fmt.Sprintf("%s must be 3-30 characters of letters, numbers, '_' or '-'", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// textEntities restores the characters the policy escapes that cannot open
// markup. Angle brackets stay escaped.
var textEntities = strings.NewReplacer("&amp;", "&", "&#34;", `"`, "&#39;", "'", "&quot;", `"`)

// Sanitize strips markup from user text and trims surrounding space.
func Sanitize(s string) string {
	return strings.TrimSpace(textEntities.Replace(sanitizer.Sanitize(s)))
}

func sanitizePtr(s *string) {
	if s != nil {
		*s = Sanitize(*s)
	}
}
