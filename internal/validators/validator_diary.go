// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-diary/models"
)

// Field names accepted by DiaryValidator.
const (
	// FieldCategoryName targets the name of a new category.
	FieldCategoryName = "category_name"

	// FieldTitle targets the entry title.
	FieldTitle = "title"

	// FieldContent targets the entry content.
	FieldContent = "content"

	// FieldCategoryID targets the category an entry is filed under.
	FieldCategoryID = "category_id"
)

// DiaryValidator validates category and entry requests.
//
// Required fields must be non-empty; for models.EntryUpdateRequest only the
// supplied (non-nil) fields are checked, and at least one must be supplied.
type DiaryValidator struct{}

// NewDiaryValidator constructs a new DiaryValidator and returns it as the
// Validator interface.
func NewDiaryValidator() Validator {
	return &DiaryValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - models.CategoryRequest / *models.CategoryRequest
//   - models.EntryRequest / *models.EntryRequest
//   - models.EntryUpdateRequest / *models.EntryUpdateRequest
func (v *DiaryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CategoryRequest:
		return v.validateCategoryRequest(value, fields...)
	case *models.CategoryRequest:
		return v.validateCategoryRequest(*value, fields...)

	case models.EntryRequest:
		return v.validateEntryRequest(value, fields...)
	case *models.EntryRequest:
		return v.validateEntryRequest(*value, fields...)

	case models.EntryUpdateRequest:
		return v.validateEntryUpdateRequest(value, fields...)
	case *models.EntryUpdateRequest:
		return v.validateEntryUpdateRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DiaryValidator) validateCategoryRequest(request models.CategoryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCategoryName}
	}

	for _, f := range fields {
		switch f {
		case FieldCategoryName:
			if request.Name == "" {
				return ErrCategoryNameRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DiaryValidator) validateEntryRequest(request models.EntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldCategoryID}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if request.Title == "" {
				return ErrEntryFieldsRequired
			}
		case FieldContent:
			if request.Content == "" {
				return ErrEntryFieldsRequired
			}
		case FieldCategoryID:
			if request.CategoryID == 0 {
				return ErrEntryFieldsRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DiaryValidator) validateEntryUpdateRequest(request models.EntryUpdateRequest, fields ...string) error {
	if request.IsEmpty() {
		return ErrEntryFieldsRequired
	}

	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldCategoryID}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if request.Title != nil && *request.Title == "" {
				return ErrEntryFieldsRequired
			}
		case FieldContent:
			if request.Content != nil && *request.Content == "" {
				return ErrEntryFieldsRequired
			}
		case FieldCategoryID:
			if request.CategoryID != nil && *request.CategoryID == 0 {
				return ErrEntryFieldsRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
