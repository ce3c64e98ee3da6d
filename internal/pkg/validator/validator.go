package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the calendar date format accepted by the API.
const DateLayout = "2006-01-02"

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// isodate accepts YYYY-MM-DD or a full RFC 3339 timestamp
	validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDateTime(fl.Field().String())
		return err == nil
	})

	// notblank rejects whitespace-only strings
	validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// ParseDateTime parses an ISO date or RFC 3339 timestamp into a UTC instant.
// A bare date is midnight UTC.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// ParseDate parses like ParseDateTime and keeps only the UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := ParseDateTime(s)
	if err != nil {
		return time.Time{}, err
	}
	return CalendarDate(t), nil
}

// CalendarDate truncates t to midnight of its UTC day.
func CalendarDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errors := make(map[string]string)
	for _, err := range validationErrors {
		field := err.Field()
		switch err.Tag() {
		case "required", "notblank":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "uuid", "uuid4":
			errors[field] = "Invalid UUID format"
		case "isodate":
			errors[field] = "Invalid date. Use YYYY-MM-DD or an ISO 8601 timestamp"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}
