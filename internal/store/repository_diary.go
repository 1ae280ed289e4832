package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
)

// diaryRepository is the PostgreSQL-backed implementation of [DiaryStorage].
// Documents are stored as JSONB in the "diaries" table, one row per account.
//
// Update serializes writers twice: an in-process keyed mutex, and a
// SELECT ... FOR UPDATE row lock inside the transaction.
type diaryRepository struct {
	db     *DB
	locks  *keyedMutex
	logger *logger.Logger
}

// NewDiaryRepository constructs a [DiaryStorage] backed by db.
func NewDiaryRepository(db *DB, logger *logger.Logger) DiaryStorage {
	logger.Debug().Msg("creating diary repository")
	return &diaryRepository{
		db:     db,
		locks:  newKeyedMutex(),
		logger: logger,
	}
}

func (r *diaryRepository) Get(ctx context.Context, userID int64) (models.Diary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDiaryQuery(userID, false)
	if err != nil {
		return models.Diary{}, persistenceError(ErrBuildingSQLQuery, err)
	}

	diary, err := scanDiary(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*diaryRepository.Get").Int64("user_id", userID).Msg("error selecting diary")
		return models.Diary{}, err
	}

	return diary, nil
}

func (r *diaryRepository) Update(ctx context.Context, userID int64, fn func(diary *models.Diary) error) (models.Diary, error) {
	log := logger.FromContext(ctx)

	unlock := r.locks.Lock(userID)
	defer unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*diaryRepository.Update").Int64("user_id", userID).Msg("failed to begin transaction")
		return models.Diary{}, persistenceError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildSelectDiaryQuery(userID, true)
	if err != nil {
		return models.Diary{}, persistenceError(ErrBuildingSQLQuery, err)
	}

	diary, err := scanDiary(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*diaryRepository.Update").Int64("user_id", userID).Msg("error locking diary")
		return models.Diary{}, err
	}

	if err := fn(&diary); err != nil {
		return models.Diary{}, err
	}

	document, err := json.Marshal(diary)
	if err != nil {
		return models.Diary{}, fmt.Errorf("%w: encoding diary: %w", ErrPersistence, err)
	}

	query, args, err = buildUpsertDiaryQuery(userID, document)
	if err != nil {
		return models.Diary{}, persistenceError(ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*diaryRepository.Update").Int64("user_id", userID).Msg("error saving diary")
		return models.Diary{}, persistenceError(ErrExecutingQuery, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*diaryRepository.Update").Int64("user_id", userID).Msg("failed to commit transaction")
		return models.Diary{}, persistenceError(ErrCommitingTransaction, err)
	}

	return diary, nil
}

func (r *diaryRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	query, args, err := buildDiaryExistsQuery(userID)
	if err != nil {
		return false, persistenceError(ErrBuildingSQLQuery, err)
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*diaryRepository.Exists").Int64("user_id", userID).Msg("error checking diary")
		return false, persistenceError(ErrExecutingQuery, err)
	}

	return exists, nil
}

// scanDiary decodes the document column of row. A missing row yields the
// default seed.
func scanDiary(row rowScanner) (models.Diary, error) {
	var document []byte
	err := row.Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NewDiary(), nil
	}
	if err != nil {
		return models.Diary{}, persistenceError(ErrScanningRow, err)
	}

	var diary models.Diary
	if err := json.Unmarshal(document, &diary); err != nil {
		return models.Diary{}, fmt.Errorf("%w: decoding diary: %w", ErrPersistence, err)
	}
	diary.Normalize()

	return diary, nil
}
