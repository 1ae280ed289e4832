package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
)

// diaryFileStorage is the JSON file implementation of [DiaryStorage]. Each
// account owns <dataDir>/diary_<userID>.json.
type diaryFileStorage struct {
	dir    string
	locks  *keyedMutex
	logger *logger.Logger
}

// NewDiaryFileStorage returns a [DiaryStorage] keeping one document per
// account in dataDir.
func NewDiaryFileStorage(dataDir string, logger *logger.Logger) DiaryStorage {
	logger.Debug().Str("data_dir", dataDir).Msg("creating diary file storage")
	return &diaryFileStorage{
		dir:    dataDir,
		locks:  newKeyedMutex(),
		logger: logger,
	}
}

func (s *diaryFileStorage) path(userID int64) string {
	return filepath.Join(s.dir, fmt.Sprintf("diary_%d.json", userID))
}

func (s *diaryFileStorage) read(userID int64) (models.Diary, error) {
	var diary models.Diary
	found, err := readJSONFile(s.path(userID), &diary)
	if err != nil {
		return models.Diary{}, err
	}
	if !found {
		return models.NewDiary(), nil
	}

	diary.Normalize()
	return diary, nil
}

func (s *diaryFileStorage) Get(ctx context.Context, userID int64) (models.Diary, error) {
	if err := ctx.Err(); err != nil {
		return models.Diary{}, err
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	diary, err := s.read(userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*diaryFileStorage.Get").
			Int64("user_id", userID).
			Msg("error reading diary")
		return models.Diary{}, err
	}

	return diary, nil
}

func (s *diaryFileStorage) Update(ctx context.Context, userID int64, fn func(diary *models.Diary) error) (models.Diary, error) {
	if err := ctx.Err(); err != nil {
		return models.Diary{}, err
	}
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(userID)
	defer unlock()

	diary, err := s.read(userID)
	if err != nil {
		log.Err(err).Str("func", "*diaryFileStorage.Update").Int64("user_id", userID).Msg("error reading diary")
		return models.Diary{}, err
	}

	if err := fn(&diary); err != nil {
		return models.Diary{}, err
	}

	if err := writeJSONFile(s.path(userID), diary); err != nil {
		log.Err(err).Str("func", "*diaryFileStorage.Update").Int64("user_id", userID).Msg("error writing diary")
		return models.Diary{}, err
	}

	return diary, nil
}

func (s *diaryFileStorage) Exists(ctx context.Context, userID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := os.Stat(s.path(userID))
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
}
