package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const fallbackMessage = "{field} is invalid"

var messages = map[string]string{
	"required":      "{field} is required",
	"required_with": "{field} is required when {param} is set",
	"gte":           "{field} must be at least {param}",
	"lte":           "{field} must be at most {param}",
	"min":           "{field} must be at least {param}",
	"max":           "{field} must be at most {param}",
	"oneof":         "{field} must be one of [{param}]",
	"alphanum":      "{field} may only contain letters and digits",
	"url":           "{field} must be a valid URL",
	"hhmm":          "{field} must be a time in HH:MM format",
	"datekey":       "{field} must be a date in YYYY-MM-DD format",
	"month":         "{field} must be a month in YYYY-MM format",
	"empty":         "{field} must be empty",
}

// describe renders one field error. Length tags read differently on strings and slices.
func describe(fe val.FieldError) string {
	tmpl, ok := messages[fe.Tag()]
	if !ok {
		tmpl = fallbackMessage
	}

	param := fe.Param()
	if fe.Tag() == "required_with" {
		param = jsonName(param)
	}

	switch fe.Kind().String() {
	case "string":
		if fe.Tag() == "min" || fe.Tag() == "max" {
			tmpl += " characters"
		}
	case "slice":
		if fe.Tag() == "min" || fe.Tag() == "max" {
			tmpl += " items"
		}
	}

	return strings.NewReplacer("{field}", fe.Field(), "{param}", param).Replace(tmpl)
}

// message joins every field error so clients can fix a payload in one round trip.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(valErrors))
	for _, fe := range valErrors {
		parts = append(parts, describe(fe))
	}

	return strings.Join(parts, "; ")
}
