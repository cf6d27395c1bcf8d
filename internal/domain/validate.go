package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("lettertype", func(fl validator.FieldLevel) bool {
			_, ok := Lookup(LetterType(fl.Field().String()))
			return ok
		})
	})
	return validate
}

// Advisory is a single problem found by Validate. Advisories never stop a
// letter from rendering; they explain why part of it came out blank.
type Advisory struct {
	Field string
	Rule  string
	Value string
}

func (a Advisory) String() string {
	return fmt.Sprintf("%s: failed %q (value %q)", a.Field, a.Rule, a.Value)
}

// ValidationError collects the advisories for one record.
type ValidationError struct {
	Advisories []Advisory
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Advisories))
	for i, a := range e.Advisories {
		parts[i] = a.String()
	}
	return "invalid letter record: " + strings.Join(parts, "; ")
}

// Validate checks the language tag, the letter type and the date formats.
// It returns a *ValidationError, or nil when the record is clean.
func Validate(r Record) error {
	err := validatorInstance().Struct(r)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range ve {
		out.Advisories = append(out.Advisories, Advisory{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Value: fmt.Sprint(fe.Value()),
		})
	}
	return out
}
