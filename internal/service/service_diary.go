// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
)

// diaryService is the core DiaryService implementation. It assumes requests
// were validated by DiaryValidationService and enforces only the rules that
// need the stored document: existence, name uniqueness and references
// between entries and categories.
//
// Every mutation is a single DiaryStorage.Update call, so the check and the
// write happen under the same per-account lock.
type diaryService struct {
	diaryStorage store.DiaryStorage

	// now stamps createdAt / updatedAt.
	now func() time.Time

	logger *logger.Logger
}

// NewDiaryService constructs the core DiaryService on top of diaryStorage.
func NewDiaryService(diaryStorage store.DiaryStorage, logger *logger.Logger) DiaryService {
	return &diaryService{
		diaryStorage: diaryStorage,
		now:          func() time.Time { return time.Now().UTC() },
		logger:       logger,
	}
}

func (s *diaryService) GetCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	diary, err := s.diaryStorage.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reading diary failed: %w", err)
	}

	return diary.Categories, nil
}

// AddCategory appends a category with the next category id. Color defaults
// to models.DefaultCategoryColor. Names are unique ignoring case.
func (s *diaryService) AddCategory(ctx context.Context, userID int64, request models.CategoryRequest) (models.Category, error) {
	log := logger.FromContext(ctx)

	var created models.Category
	_, err := s.diaryStorage.Update(ctx, userID, func(diary *models.Diary) error {
		if diary.FindCategoryByName(request.Name) != -1 {
			return ErrCategoryAlreadyExists
		}

		created = models.Category{
			ID:    diary.NextCategoryID,
			Name:  request.Name,
			Color: request.Color,
			Emoji: request.Emoji,
		}
		if created.Color == "" {
			created.Color = models.DefaultCategoryColor
		}

		diary.Categories = append(diary.Categories, created)
		diary.NextCategoryID++
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*diaryService.AddCategory").Str("name", request.Name).Msg("category was not added")
		return models.Category{}, fmt.Errorf("adding category failed: %w", err)
	}

	return created, nil
}

// DeleteCategory removes a category that has no entries. Returns
// ErrCategoryNotFound or a *CategoryInUseError carrying the entry count.
func (s *diaryService) DeleteCategory(ctx context.Context, userID, categoryID int64) error {
	log := logger.FromContext(ctx)

	_, err := s.diaryStorage.Update(ctx, userID, func(diary *models.Diary) error {
		idx := diary.FindCategory(categoryID)
		if idx == -1 {
			return ErrCategoryNotFound
		}

		if count := len(diary.EntriesInCategory(categoryID)); count > 0 {
			return &CategoryInUseError{Count: count}
		}

		diary.Categories = append(diary.Categories[:idx], diary.Categories[idx+1:]...)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*diaryService.DeleteCategory").Int64("category_id", categoryID).Msg("category was not deleted")
		return fmt.Errorf("deleting category failed: %w", err)
	}

	return nil
}

func (s *diaryService) GetEntries(ctx context.Context, userID int64) ([]models.Entry, error) {
	diary, err := s.diaryStorage.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reading diary failed: %w", err)
	}

	return diary.Entries, nil
}

func (s *diaryService) GetEntriesByCategory(ctx context.Context, userID, categoryID int64) ([]models.Entry, error) {
	diary, err := s.diaryStorage.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reading diary failed: %w", err)
	}

	if diary.FindCategory(categoryID) == -1 {
		return nil, ErrCategoryNotFound
	}

	return diary.EntriesInCategory(categoryID), nil
}

func (s *diaryService) GetEntry(ctx context.Context, userID, entryID int64) (models.Entry, error) {
	diary, err := s.diaryStorage.Get(ctx, userID)
	if err != nil {
		return models.Entry{}, fmt.Errorf("reading diary failed: %w", err)
	}

	idx := diary.FindEntry(entryID)
	if idx == -1 {
		return models.Entry{}, ErrEntryNotFound
	}

	return diary.Entries[idx], nil
}

func (s *diaryService) AddEntry(ctx context.Context, userID int64, request models.EntryRequest) (models.Entry, error) {
	log := logger.FromContext(ctx)

	var created models.Entry
	_, err := s.diaryStorage.Update(ctx, userID, func(diary *models.Diary) error {
		if diary.FindCategory(request.CategoryID) == -1 {
			return ErrCategoryNotFound
		}

		created = models.Entry{
			ID:         diary.NextEntryID,
			Title:      request.Title,
			Content:    request.Content,
			CategoryID: request.CategoryID,
			CreatedAt:  s.now(),
		}

		diary.Entries = append(diary.Entries, created)
		diary.NextEntryID++
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*diaryService.AddEntry").Int64("category_id", request.CategoryID).Msg("entry was not added")
		return models.Entry{}, fmt.Errorf("adding entry failed: %w", err)
	}

	return created, nil
}

// UpdateEntry applies the non-nil fields of request and stamps updatedAt.
// The entry is looked up before the category, so an unknown entry reports
// ErrEntryNotFound even when the category is unknown too.
func (s *diaryService) UpdateEntry(ctx context.Context, userID, entryID int64, request models.EntryUpdateRequest) (models.Entry, error) {
	log := logger.FromContext(ctx)

	var updated models.Entry
	_, err := s.diaryStorage.Update(ctx, userID, func(diary *models.Diary) error {
		idx := diary.FindEntry(entryID)
		if idx == -1 {
			return ErrEntryNotFound
		}

		if request.CategoryID != nil && diary.FindCategory(*request.CategoryID) == -1 {
			return ErrCategoryNotFound
		}

		entry := &diary.Entries[idx]
		if request.Title != nil {
			entry.Title = *request.Title
		}
		if request.Content != nil {
			entry.Content = *request.Content
		}
		if request.CategoryID != nil {
			entry.CategoryID = *request.CategoryID
		}
		updatedAt := s.now()
		entry.UpdatedAt = &updatedAt

		updated = *entry
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*diaryService.UpdateEntry").Int64("entry_id", entryID).Msg("entry was not updated")
		return models.Entry{}, fmt.Errorf("updating entry failed: %w", err)
	}

	return updated, nil
}

func (s *diaryService) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	log := logger.FromContext(ctx)

	_, err := s.diaryStorage.Update(ctx, userID, func(diary *models.Diary) error {
		idx := diary.FindEntry(entryID)
		if idx == -1 {
			return ErrEntryNotFound
		}

		diary.Entries = append(diary.Entries[:idx], diary.Entries[idx+1:]...)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*diaryService.DeleteEntry").Int64("entry_id", entryID).Msg("entry was not deleted")
		return fmt.Errorf("deleting entry failed: %w", err)
	}

	return nil
}
