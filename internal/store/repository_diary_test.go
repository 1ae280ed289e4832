// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDiaryRepo(t *testing.T) (DiaryStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewDiaryRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop()), mock
}

func diaryDocument(t *testing.T, diary models.Diary) []byte {
	t.Helper()
	doc, err := json.Marshal(diary)
	require.NoError(t, err)
	return doc
}

const (
	selectDiarySQL          = "SELECT document FROM diaries WHERE user_id = $1"
	selectDiaryForUpdateSQL = "SELECT document FROM diaries WHERE user_id = $1 FOR UPDATE"
	upsertDiarySQL          = "INSERT INTO diaries (user_id,document) VALUES ($1,$2) ON CONFLICT (user_id) DO UPDATE"
)

func TestDiaryRepository_GetSeedWhenMissing(t *testing.T) {
	repo, mock := newTestDiaryRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectDiarySQL)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"document"}))

	diary, err := repo.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.NewDiary(), diary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDiaryRepository_GetStored(t *testing.T) {
	repo, mock := newTestDiaryRepo(t)

	stored := models.NewDiary()
	stored.Categories = append(stored.Categories, models.Category{ID: 7, Name: "Work", Color: "#000000"})
	stored.NextCategoryID = 8

	mock.ExpectQuery(regexp.QuoteMeta(selectDiarySQL)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow(diaryDocument(t, stored)))

	diary, err := repo.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, diary.Categories, 7)
	assert.Equal(t, int64(8), diary.NextCategoryID)
}

func TestDiaryRepository_GetCorruptDocument(t *testing.T) {
	repo, mock := newTestDiaryRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectDiarySQL)).
		WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow([]byte("{nope")))

	_, err := repo.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestDiaryRepository_UpdateCommits(t *testing.T) {
	repo, mock := newTestDiaryRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectDiaryForUpdateSQL)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"document"}))
	mock.ExpectExec(regexp.QuoteMeta(upsertDiarySQL)).
		WithArgs(int64(1), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	diary, err := repo.Update(context.Background(), 1, func(d *models.Diary) error {
		d.Categories = append(d.Categories, models.Category{ID: d.NextCategoryID, Name: "Work"})
		d.NextCategoryID++
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, diary.Categories, 7)
	assert.Equal(t, int64(8), diary.NextCategoryID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDiaryRepository_UpdateCallbackErrorRollsBack(t *testing.T) {
	repo, mock := newTestDiaryRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectDiaryForUpdateSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"document"}))
	mock.ExpectRollback()

	errBoom := errors.New("boom")
	_, err := repo.Update(context.Background(), 1, func(d *models.Diary) error { return errBoom })

	assert.Same(t, errBoom, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDiaryRepository_UpdateFailures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "begin fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("no conn"))
			},
			wantErr: ErrBeginningTransaction,
		},
		{
			name: "select fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(selectDiaryForUpdateSQL)).WillReturnError(errors.New("lock timeout"))
				mock.ExpectRollback()
			},
			wantErr: ErrScanningRow,
		},
		{
			name: "upsert fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(selectDiaryForUpdateSQL)).WillReturnRows(sqlmock.NewRows([]string{"document"}))
				mock.ExpectExec(regexp.QuoteMeta(upsertDiarySQL)).WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingQuery,
		},
		{
			name: "commit fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(selectDiaryForUpdateSQL)).WillReturnRows(sqlmock.NewRows([]string{"document"}))
				mock.ExpectExec(regexp.QuoteMeta(upsertDiarySQL)).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit().WillReturnError(errors.New("conn reset"))
			},
			wantErr: ErrCommitingTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestDiaryRepo(t)
			tt.setup(mock)

			_, err := repo.Update(context.Background(), 1, func(d *models.Diary) error { return nil })

			assert.ErrorIs(t, err, ErrPersistence)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDiaryRepository_Exists(t *testing.T) {
	repo, mock := newTestDiaryRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS ( SELECT 1 FROM diaries WHERE user_id = $1 )")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.Exists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, exists)
}
