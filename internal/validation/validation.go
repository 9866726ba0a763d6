// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package validation bridges go-playground/validator to Echo's Validator
// interface.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator on top of validator/v10.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports field names from json tags.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate checks a bound request struct. The returned error carries a
// message safe to echo back to the client.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return errors.New(message(verrs[0]))
	}
	return err
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " required"
	case "min":
		return fe.Field() + " too short"
	default:
		return "invalid " + fe.Field()
	}
}
