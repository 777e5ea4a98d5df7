package sms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

var (
	errBodyRequired      = errors.New("request body required")
	errPhoneRequired     = errors.New("phoneNumber is required")
	errPhonesRequired    = errors.New("phoneNumbers must be a non-empty array")
	errMessageRequired   = errors.New("message is required")
	errInvalidPhoneE164  = errors.New("phoneNumber must be in E.164 format (e.g. +385991234567)")
	errValidationUnknown = errors.New("invalid request")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names so field errors map onto the request vocabulary
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkRequest runs the struct tags and returns the first failure in field order.
func checkRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errValidationUnknown
	}

	switch fieldErrs[0].Field() {
	case "phoneNumber":
		return errPhoneRequired
	case "phoneNumbers":
		return errPhonesRequired
	case "message":
		return errMessageRequired
	}
	return errValidationUnknown
}

// normalizeNumber accepts a +-prefixed international number and returns it in E.164 form.
func normalizeNumber(num string) (string, error) {
	num = strings.TrimSpace(num)
	if !strings.HasPrefix(num, "+") {
		return "", errInvalidPhoneE164
	}

	parsed, err := phonenumbers.Parse(num, "")
	if err != nil {
		return "", errInvalidPhoneE164
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
