// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-card-sync/models"
	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

// Struct field names accepted by Validate to restrict validation to a subset
// of fields.
const (
	FieldUserID     = "UserID"
	FieldFront      = "Front"
	FieldBack       = "Back"
	FieldDifficulty = "Difficulty"
	FieldFlashcards = "Flashcards"
)

// fieldErrors maps the JSON name of a failing field to its sentinel.
var fieldErrors = map[string]error{
	"user_id":      ErrInvalidUserID,
	"front":        ErrEmptyFront,
	"back":         ErrEmptyBack,
	"difficulty":   ErrInvalidDifficulty,
	"source_url":   ErrInvalidSourceURL,
	"flashcards":   ErrEmptyBatch,
	"text":         ErrEmptyText,
	"card_count":   ErrInvalidCardCount,
	"conversation": ErrEmptyConversation,
	"role":         ErrInvalidChatMessage,
	"content":      ErrInvalidChatMessage,
	"destination":  ErrInvalidDestination,
}

// FlashcardValidator validates the inbound request shapes of the sync API
// with go-playground/validator struct tags.
type FlashcardValidator struct {
	validate *validator.Validate
}

// NewFlashcardValidator returns a Validator that understands every request
// model of the flashcard API.
func NewFlashcardValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// notblank rejects strings that are empty after trimming whitespace
	_ = v.RegisterValidation("notblank", nonstandard.NotBlank)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &FlashcardValidator{validate: v}
}

func (v *FlashcardValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FlashcardSpec, *models.FlashcardSpec,
		models.BatchRequest, *models.BatchRequest,
		models.SyncRequest, *models.SyncRequest,
		models.GenerateRequest, *models.GenerateRequest,
		models.ExportRequest, *models.ExportRequest:
		return v.validateStruct(ctx, value, fields...)
	default:
		return fmt.Errorf("%w: %w: %T", ErrValidation, ErrUnsupportedType, obj)
	}
}

func (v *FlashcardValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		if unknown := unknownField(obj, fields); unknown != "" {
			return fmt.Errorf("%w: %w: %s", ErrValidation, ErrUnknownField, unknown)
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}

	return translate(err)
}

func unknownField(obj any, fields []string) string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return f
		}
	}
	return ""
}

// translate turns the first validator.FieldError into a sentinel error.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	fe := validationErrors[0]
	field := fe.Field()
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}

	if fe.Tag() == "max" && fe.Kind() == reflect.String {
		return fmt.Errorf("%w: %w: %s", ErrValidation, ErrFieldTooLong, fe.Namespace())
	}

	if sentinel, ok := fieldErrors[field]; ok {
		return fmt.Errorf("%w: %w: %s", ErrValidation, sentinel, fe.Namespace())
	}

	return fmt.Errorf("%w: %s failed on %q", ErrValidation, fe.Namespace(), fe.Tag())
}
