// Steamlens - Game Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/steamlens/internal/catalog"
	"github.com/tomtom215/steamlens/internal/models"
)

// ErrInvalidRequest matches every *RequestValidationError via errors.Is.
var ErrInvalidRequest = errors.New("invalid query parameters")

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError describes one rejected query parameter.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Value   any    `json:"value,omitempty"`
	Message string `json:"message"`
}

// RequestValidationError collects every field error of one request struct.
type RequestValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (ve *RequestValidationError) Error() string {
	if len(ve.Fields) == 0 {
		return ErrInvalidRequest.Error()
	}
	messages := make([]string, len(ve.Fields))
	for i, f := range ve.Fields {
		messages[i] = f.Message
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRequest, strings.Join(messages, "; "))
}

// Is reports whether target is ErrInvalidRequest.
func (ve *RequestValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// GetValidator returns the process-wide validator with the catalog tags
// registered. Safe for concurrent use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Registration only fails on an empty tag or nil func.
		_ = validate.RegisterValidation("catalogcolumn", validateCatalogColumn)
		_ = validate.RegisterValidation("platform", validatePlatform)
	})
	return validate
}

// validateCatalogColumn accepts the canonical CSV header names.
func validateCatalogColumn(fl validator.FieldLevel) bool {
	_, ok := catalog.Lookup(fl.Field().String())
	return ok
}

// validatePlatform accepts Mac, Windows or Linux in any case.
func validatePlatform(fl validator.FieldLevel) bool {
	_, ok := models.ParsePlatform(fl.Field().String())
	return ok
}

// ValidateStruct checks s against its validate tags and returns nil or the
// collected field errors.
func ValidateStruct(s any) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: s was nil or not a struct.
		return &RequestValidationError{Fields: []FieldError{{Message: err.Error()}}}
	}

	out := &RequestValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: describe(fe.Field(), fe.Tag(), fe.Param()),
		})
	}
	return out
}

// Validate is ValidateStruct for callers that return a plain error.
// It never returns a typed nil.
func Validate(s any) error {
	if err := ValidateStruct(s); err != nil {
		return err
	}
	return nil
}

// messages renders a failed tag. Tags without an entry get a generic message.
var messages = map[string]func(field, param string) string{
	"required": func(f, _ string) string { return f + " is required" },
	"catalogcolumn": func(f, _ string) string {
		return f + " must name a catalog column"
	},
	"platform": func(f, _ string) string { return f + " must be Mac, Windows or Linux" },
	"min":      func(f, p string) string { return fmt.Sprintf("%s needs at least %s entries", f, p) },
	"gte":      func(f, p string) string { return fmt.Sprintf("%s must be greater than or equal to %s", f, p) },
	"lte":      func(f, p string) string { return fmt.Sprintf("%s must be less than or equal to %s", f, p) },
	"gtefield": func(f, p string) string { return fmt.Sprintf("%s must be greater than or equal to %s", f, p) },
}

func describe(field, tag, param string) string {
	if render, ok := messages[tag]; ok {
		return render(field, param)
	}
	return fmt.Sprintf("%s failed %s validation", field, tag)
}
