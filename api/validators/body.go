package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/techstore/storefront-backend/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names as they appear on the wire.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

const maxBodyBytes = 1 << 20

// DecodeJSONBody parses and validates a request body into dst. Unknown
// fields are rejected so typos surface instead of silently vanishing.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return apperrors.New(apperrors.CodeValidation, "invalid request body").
			WithDetails(err.Error())
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return apperrors.New(apperrors.CodeValidation, "validation failed").
				WithDetails(formatValidationErrors(validationErrs))
		}
		return apperrors.Wrap(apperrors.CodeInternal, err, "validating request body")
	}

	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		switch fieldErr.Tag() {
		case "required":
			out = append(out, fmt.Sprintf("%s is required", fieldErr.Field()))
		case "email":
			out = append(out, fmt.Sprintf("%s must be a valid email address", fieldErr.Field()))
		case "min":
			out = append(out, fmt.Sprintf("%s must be at least %s", fieldErr.Field(), fieldErr.Param()))
		case "max":
			out = append(out, fmt.Sprintf("%s must be at most %s", fieldErr.Field(), fieldErr.Param()))
		case "url":
			out = append(out, fmt.Sprintf("%s must be a valid url", fieldErr.Field()))
		default:
			out = append(out, fmt.Sprintf("%s is invalid", fieldErr.Field()))
		}
	}
	return out
}
