package service

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"canteen/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("phone", validatePhone)
	_ = v.RegisterValidation("luhn", validateLuhn)
	_ = v.RegisterValidation("expiry", validateExpiry)
	return v
}

// validateInput runs the struct tags and turns failures into a field map.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return apperr.InvalidErr("Invalid request.", nil).With(err)
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fieldPath(fe.Namespace())] = messageForTag(fe.Tag(), fe.Param())
	}
	return apperr.InvalidErr("Please check the highlighted fields.", fields).With(err)
}

// fieldPath drops the top-level struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required", "required_if":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "phone":
		return "Enter a valid phone number."
	case "min":
		return "Must be at least " + param + "."
	case "max":
		return "Must be at most " + param + "."
	case "gt":
		return "Must be greater than " + param + "."
	case "gte":
		return "Must be " + param + " or more."
	case "oneof":
		return "Must be one of: " + param + "."
	case "luhn":
		return "Enter a valid card number."
	case "expiry":
		return "Card is expired or the date is not MM/YY."
	case "numeric":
		return "Digits only."
	default:
		return "Invalid value."
	}
}

func validatePhone(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

func validateLuhn(fl validator.FieldLevel) bool {
	return IsValidCardNumber(fl.Field().String())
}

func validateExpiry(fl validator.FieldLevel) bool {
	return IsValidExpiry(fl.Field().String(), time.Now())
}

// IsValidPhone accepts an optional leading '+' followed by 9 to 15 digits.
// Spaces and dashes are ignored.
func IsValidPhone(phone string) bool {
	phone = stripSeparators(phone)
	phone = strings.TrimPrefix(phone, "+")
	if len(phone) < 9 || len(phone) > 15 {
		return false
	}
	return allDigits(phone)
}

// IsValidCardNumber checks length (13-19 digits) and the Luhn checksum.
func IsValidCardNumber(number string) bool {
	number = stripSeparators(number)
	if len(number) < 13 || len(number) > 19 || !allDigits(number) {
		return false
	}

	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// IsValidExpiry parses MM/YY and reports whether the card is still valid in
// the month of now.
func IsValidExpiry(expiry string, now time.Time) bool {
	parts := strings.Split(strings.TrimSpace(expiry), "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	year += 2000

	y, m, _ := now.Date()
	if year != y {
		return year > y
	}
	return month >= int(m)
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, s)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
