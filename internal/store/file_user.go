package store

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
)

const usersFileName = "users.json"

// userRecord is the on-disk layout of one account in users.json.
type userRecord struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserRecord(u models.User) userRecord {
	return userRecord{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.PasswordHash,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func (r userRecord) user() models.User {
	return models.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.Password,
		Role:         r.Role,
		CreatedAt:    r.CreatedAt,
	}
}

// userFileRepository is the JSON file implementation of [UserRepository].
// The whole collection is held in users.json; every mutation rewrites it.
type userFileRepository struct {
	mu     sync.Mutex
	path   string
	logger *logger.Logger
}

// NewUserFileRepository returns a [UserRepository] backed by
// <dataDir>/users.json.
func NewUserFileRepository(dataDir string, logger *logger.Logger) UserRepository {
	logger.Debug().Str("data_dir", dataDir).Msg("creating user file repository")
	return &userFileRepository{
		path:   filepath.Join(dataDir, usersFileName),
		logger: logger,
	}
}

func (r *userFileRepository) load() ([]userRecord, error) {
	records := make([]userRecord, 0)
	if _, err := readJSONFile(r.path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *userFileRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		log.Err(err).Str("func", "*userFileRepository.CreateUser").Msg("error loading users")
		return models.User{}, err
	}

	// a duplicate email is reported before a duplicate username
	var maxID int64
	usernameTaken := false
	for _, rec := range records {
		if rec.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
		if rec.Username == user.Username {
			usernameTaken = true
		}
		if rec.ID > maxID {
			maxID = rec.ID
		}
	}
	if usernameTaken {
		return models.User{}, ErrUsernameAlreadyExists
	}

	user.ID = maxID + 1
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	records = append(records, newUserRecord(user))
	if err := writeJSONFile(r.path, records); err != nil {
		log.Err(err).Str("func", "*userFileRepository.CreateUser").Msg("error saving users")
		return models.User{}, err
	}

	return user, nil
}

func (r *userFileRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.find(ctx, func(rec userRecord) bool { return rec.Email == email })
}

func (r *userFileRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.find(ctx, func(rec userRecord) bool { return rec.Username == username })
}

func (r *userFileRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.find(ctx, func(rec userRecord) bool { return rec.ID == userID })
}

func (r *userFileRepository) find(ctx context.Context, match func(userRecord) bool) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userFileRepository.find").Msg("error loading users")
		return models.User{}, err
	}

	for _, rec := range records {
		if match(rec) {
			return rec.user(), nil
		}
	}

	return models.User{}, ErrNoUserWasFound
}

func (r *userFileRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		log.Err(err).Str("func", "*userFileRepository.UpdatePassword").Msg("error loading users")
		return err
	}

	found := false
	for i := range records {
		if records[i].ID == userID {
			records[i].Password = passwordHash
			found = true
			break
		}
	}
	if !found {
		return ErrNoUserWasFound
	}

	if err := writeJSONFile(r.path, records); err != nil {
		log.Err(err).Str("func", "*userFileRepository.UpdatePassword").Msg("error saving users")
		return err
	}

	return nil
}

func (r *userFileRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	records, err := r.load()
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool { return records[i].ID < records[j].ID })

	users := make([]models.User, 0, len(records))
	for _, rec := range records {
		users = append(users, rec.user())
	}

	return users, nil
}
