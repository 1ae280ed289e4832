package store

import (
	"context"

	"github.com/MKhiriev/go-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts (the credential collection).
//
// Email and username uniqueness is enforced inside CreateUser so that two
// concurrent registrations cannot both succeed.
type UserRepository interface {
	// CreateUser stores user, assigning ID and CreatedAt. Returns
	// ErrEmailAlreadyExists or ErrUsernameAlreadyExists on a conflict.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns ErrNoUserWasFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByUsername returns ErrNoUserWasFound when no account matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns ErrNoUserWasFound when no account matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdatePassword replaces the stored password hash of the account.
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error

	// ListUsers returns every account ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// DiaryStorage persists one diary document per account.
type DiaryStorage interface {
	// Get returns the stored document, or the default seed when the account
	// has none yet. The seed is not written.
	Get(ctx context.Context, userID int64) (models.Diary, error)

	// Update runs one read-modify-write cycle under an exclusive per-account
	// lock. If fn returns an error nothing is written and that error is
	// returned unchanged. Write failures are reported as ErrPersistence.
	Update(ctx context.Context, userID int64, fn func(diary *models.Diary) error) (models.Diary, error)

	// Exists reports whether a document has ever been stored for the account.
	Exists(ctx context.Context, userID int64) (bool, error)
}
