// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-sweet-shop/models"
	"github.com/go-playground/validator/v10"
)

// FieldError describes a single rejected field. It unwraps to ErrInvalidInput.
type FieldError struct {
	// Field is the JSON name of the field.
	Field string
	// Tag is the failed rule, e.g. "min" or "required".
	Tag string
	// Param is the rule parameter, e.g. "3" for min=3.
	Param string
}

func (e *FieldError) Error() string {
	switch e.Tag {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", e.Field, e.Param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", e.Field, e.Param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", e.Field, e.Param)
	default:
		return fmt.Sprintf("%s is invalid", e.Field)
	}
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}

// ShopValidator validates the request models of the shop using struct tags.
type ShopValidator struct {
	validate *validator.Validate
}

// NewShopValidator returns a Validator for Credentials, Sweet and
// SweetFilter values. Field names in errors are the JSON names.
func NewShopValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &ShopValidator{validate: v}
}

// Validate checks obj against its validation tags. When fields are given
// only those struct fields (Go names, e.g. "Username") are checked.
func (v *ShopValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials, *models.Credentials, models.Sweet, *models.Sweet:
		return v.validateStruct(ctx, value, fields...)

	case models.SweetFilter:
		return v.validateFilter(ctx, value, fields...)
	case *models.SweetFilter:
		return v.validateFilter(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ShopValidator) validateFilter(ctx context.Context, filter models.SweetFilter, fields ...string) error {
	if err := v.validateStruct(ctx, filter, fields...); err != nil {
		return err
	}

	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return fmt.Errorf("%w: %w", ErrInvalidInput, ErrInvalidPriceRange)
	}

	return nil
}

func (v *ShopValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrUnknownField, err)
	}

	errs := make([]error, 0, len(validationErrors))
	for _, fe := range validationErrors {
		errs = append(errs, &FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}

	return errors.Join(errs...)
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
