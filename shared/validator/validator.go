package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"
	"unicode"

	"agenda/shared/constant"
	"agenda/shared/failure"
	"agenda/shared/timezone"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func validateClock(field val.FieldLevel) bool {
	_, err := timezone.ToMinutes(field.Field().String())

	return err == nil
}

func validateDate(field val.FieldLevel) bool {
	_, err := time.Parse(constant.DateKeyFormat, field.Field().String())

	return err == nil
}

func validateMonth(field val.FieldLevel) bool {
	_, err := time.Parse(constant.MonthKeyFormat, field.Field().String())

	return err == nil
}

// fieldName reports fields by their JSON key, falling back to snake case for untagged ones.
func fieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return ""
	case "":
		return jsonName(field.Name)
	default:
		return name
	}
}

// jsonName turns a Go identifier such as ProfessionalID into professional_id.
func jsonName(name string) string {
	runes := []rune(name)

	var b strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if prevLower || nextLower {
				b.WriteByte('_')
			}

			r = unicode.ToLower(r)
		}

		b.WriteRune(r)
	}

	return b.String()
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	custom := map[string]val.Func{
		"hhmm":    validateClock,
		"datekey": validateDate,
		"month":   validateMonth,
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
	}

	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
