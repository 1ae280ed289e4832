package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/validators"
	"github.com/MKhiriev/go-diary/models"
)

// DiaryValidationService validates request payloads before handing them to
// the wrapped DiaryService. Read operations and deletes pass through.
type DiaryValidationService struct {
	inner     DiaryService
	validator validators.Validator
}

func NewDiaryValidationService() DiaryServiceWrapper {
	return &DiaryValidationService{
		validator: validators.NewDiaryValidator(),
	}
}

func (v *DiaryValidationService) GetCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	return v.inner.GetCategories(ctx, userID)
}

func (v *DiaryValidationService) AddCategory(ctx context.Context, userID int64, request models.CategoryRequest) (models.Category, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Category{}, fmt.Errorf("error during category validation before saving: %w", err)
	}

	return v.inner.AddCategory(ctx, userID, request)
}

func (v *DiaryValidationService) DeleteCategory(ctx context.Context, userID, categoryID int64) error {
	return v.inner.DeleteCategory(ctx, userID, categoryID)
}

func (v *DiaryValidationService) GetEntries(ctx context.Context, userID int64) ([]models.Entry, error) {
	return v.inner.GetEntries(ctx, userID)
}

func (v *DiaryValidationService) GetEntriesByCategory(ctx context.Context, userID, categoryID int64) ([]models.Entry, error) {
	return v.inner.GetEntriesByCategory(ctx, userID, categoryID)
}

func (v *DiaryValidationService) GetEntry(ctx context.Context, userID, entryID int64) (models.Entry, error) {
	return v.inner.GetEntry(ctx, userID, entryID)
}

func (v *DiaryValidationService) AddEntry(ctx context.Context, userID int64, request models.EntryRequest) (models.Entry, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Entry{}, fmt.Errorf("error during entry validation before saving: %w", err)
	}

	return v.inner.AddEntry(ctx, userID, request)
}

func (v *DiaryValidationService) UpdateEntry(ctx context.Context, userID, entryID int64, request models.EntryUpdateRequest) (models.Entry, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Entry{}, fmt.Errorf("error during entry validation before updating: %w", err)
	}

	return v.inner.UpdateEntry(ctx, userID, entryID, request)
}

func (v *DiaryValidationService) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	return v.inner.DeleteEntry(ctx, userID, entryID)
}

func (v *DiaryValidationService) Wrap(wrapper DiaryService) DiaryService {
	v.inner = wrapper
	return v
}
