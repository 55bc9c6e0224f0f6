package handlers

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"fyyur/internal/models"
)

// phonePattern accepts national and international notation such as
// 415-555-0100, (415) 555-0100 or +44 20 7946 0958.
var phonePattern = regexp.MustCompile(`^\+?[0-9(][0-9 ().-]*[0-9]$`)

// validPhone also bounds the digit count to what E.164 allows.
func validPhone(s string) bool {
	if !phonePattern.MatchString(s) {
		return false
	}
	digits := 0
	for _, c := range s {
		if c >= '0' && c <= '9' {
			digits++
		}
	}
	return digits >= 8 && digits <= 15
}

type storedGenresKey struct{}

// withStoredGenres lets an edit keep genres the record already carries
// even when they are no longer offered as choices.
func withStoredGenres(ctx context.Context, genres []string) context.Context {
	return context.WithValue(ctx, storedGenresKey{}, genres)
}

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their form name so errors line up with inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("state", func(fl validator.FieldLevel) bool {
		return models.IsState(fl.Field().String())
	})
	_ = v.RegisterValidationCtx("genre", func(ctx context.Context, fl validator.FieldLevel) bool {
		genre := fl.Field().String()
		if models.IsGenre(genre) {
			return true
		}
		stored, _ := ctx.Value(storedGenresKey{}).([]string)
		return slices.Contains(stored, genre)
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return validPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("showtime", func(fl validator.FieldLevel) bool {
		_, err := models.ParseShowTime(fl.Field().String(), time.UTC)
		return err == nil
	})
	return v
}

// validateForm returns one message per failing field, keyed by form name.
// An empty map means the form is valid.
func (h *BaseHandler) validateForm(ctx context.Context, form any) map[string]string {
	errs := map[string]string{}
	err := h.validator.StructCtx(ctx, form)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["form"] = err.Error()
		return errs
	}
	for _, fe := range fieldErrs {
		field := fe.Field()
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		if _, seen := errs[field]; !seen {
			errs[field] = fieldMessage(fe)
		}
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	case "state", "genre":
		return "Not a valid choice."
	case "phone":
		return "Invalid phone number."
	case "url":
		return "Invalid URL."
	case "number":
		return "Must be a number."
	case "showtime":
		return "Not a valid datetime value."
	}
	return "Invalid value."
}
