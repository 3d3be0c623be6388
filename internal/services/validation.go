package services

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	monthKeyPattern   = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	quarterKeyPattern = regexp.MustCompile(`^\d{4}-Q[1-4]$`)
)

var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = validate.RegisterValidation("monthkey", func(fl validator.FieldLevel) bool {
		return monthKeyPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("quarterkey", func(fl validator.FieldLevel) bool {
		return quarterKeyPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("calendarday", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})
	return validate
}

// validateInput checks struct tags and reports the first failing field as a
// *ValidationError.
func validateInput(input any) error {
	err := inputValidator.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		return invalidField(first.Field(), describeRule(first))
	}
	return invalidField("", err.Error())
}

func describeRule(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		if fieldError.Kind() == reflect.String {
			return "must not be empty"
		}
		return "must be at least " + fieldError.Param()
	case "max", "lte":
		if fieldError.Kind() == reflect.String {
			return "must be at most " + fieldError.Param() + " characters"
		}
		return "must be at most " + fieldError.Param()
	case "oneof":
		return "must be one of: " + fieldError.Param()
	case "email":
		return "must be a valid email address"
	case "monthkey":
		return "must be formatted YYYY-MM"
	case "quarterkey":
		return "must be formatted YYYY-Qn"
	case "calendarday":
		return "must be formatted YYYY-MM-DD"
	default:
		return "is invalid"
	}
}

func ValidateMonthKey(month string) error {
	if !monthKeyPattern.MatchString(month) {
		return invalidField("month", "must be formatted YYYY-MM")
	}
	return nil
}

func ValidateQuarterKey(quarter string) error {
	if !quarterKeyPattern.MatchString(quarter) {
		return invalidField("quarter", "must be formatted YYYY-Qn")
	}
	return nil
}

func trimmed(value string) string {
	return strings.TrimSpace(value)
}

func trimmedPtr(value *string) *string {
	if value == nil {
		return nil
	}
	result := strings.TrimSpace(*value)
	return &result
}

// optionalDay parses an optional YYYY-MM-DD value that already passed the
// calendarday rule. An empty string clears the date.
func optionalDay(raw *string) (*time.Time, error) {
	if raw == nil || trimmed(*raw) == "" {
		return nil, nil
	}
	day, err := ParseCalendarDay(*raw)
	if err != nil {
		return nil, err
	}
	return &day, nil
}
