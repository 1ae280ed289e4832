// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptrString(s string) *string { return &s }
func ptrInt64(i int64) *int64    { return &i }

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestDiaryValidator_Dispatch(t *testing.T) {
	v := NewDiaryValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	})

	t.Run("CategoryRequest pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.CategoryRequest{Name: "Work"}))
	})

	t.Run("EntryRequest pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.EntryRequest{Title: "t", Content: "c", CategoryID: 1}))
	})

	t.Run("EntryUpdateRequest pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.EntryUpdateRequest{Title: ptrString("t")}))
	})
}

// ---------------------------------------------------------------------------
// CategoryRequest
// ---------------------------------------------------------------------------

func TestDiaryValidator_CategoryRequest(t *testing.T) {
	v := NewDiaryValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CategoryRequest{Name: "Work"}))
	assert.NoError(t, v.Validate(ctx, models.CategoryRequest{Name: "Work", Color: "#000", Emoji: "💼"}))
	assert.ErrorIs(t, v.Validate(ctx, models.CategoryRequest{Color: "#000"}), ErrCategoryNameRequired)
	assert.ErrorIs(t, v.Validate(ctx, models.CategoryRequest{Name: "Work"}, FieldTitle), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// EntryRequest
// ---------------------------------------------------------------------------

func TestDiaryValidator_EntryRequest(t *testing.T) {
	v := NewDiaryValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.EntryRequest
		wantErr error
	}{
		{"valid", models.EntryRequest{Title: "t", Content: "c", CategoryID: 3}, nil},
		{"missing title", models.EntryRequest{Content: "c", CategoryID: 3}, ErrEntryFieldsRequired},
		{"missing content", models.EntryRequest{Title: "t", CategoryID: 3}, ErrEntryFieldsRequired},
		{"missing category", models.EntryRequest{Title: "t", Content: "c"}, ErrEntryFieldsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// EntryUpdateRequest
// ---------------------------------------------------------------------------

func TestDiaryValidator_EntryUpdateRequest(t *testing.T) {
	v := NewDiaryValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.EntryUpdateRequest
		wantErr error
	}{
		{
			name:    "all fields",
			request: models.EntryUpdateRequest{Title: ptrString("t"), Content: ptrString("c"), CategoryID: ptrInt64(2)},
		},
		{
			name:    "title only",
			request: models.EntryUpdateRequest{Title: ptrString("t")},
		},
		{
			name:    "category only",
			request: models.EntryUpdateRequest{CategoryID: ptrInt64(2)},
		},
		{
			name:    "nothing supplied",
			request: models.EntryUpdateRequest{},
			wantErr: ErrEntryFieldsRequired,
		},
		{
			name:    "empty title supplied",
			request: models.EntryUpdateRequest{Title: ptrString(""), Content: ptrString("c")},
			wantErr: ErrEntryFieldsRequired,
		},
		{
			name:    "empty content supplied",
			request: models.EntryUpdateRequest{Content: ptrString("")},
			wantErr: ErrEntryFieldsRequired,
		},
		{
			name:    "zero category supplied",
			request: models.EntryUpdateRequest{Title: ptrString("t"), CategoryID: ptrInt64(0)},
			wantErr: ErrEntryFieldsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
