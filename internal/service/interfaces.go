package service

import (
	"context"

	"github.com/MKhiriev/go-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	Profile(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// DiaryService operates on the diary document of one account. Every method
// takes the id of the authenticated account; no method can reach another
// account's document.
type DiaryService interface {
	GetCategories(ctx context.Context, userID int64) ([]models.Category, error)
	AddCategory(ctx context.Context, userID int64, request models.CategoryRequest) (models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID int64) error

	GetEntries(ctx context.Context, userID int64) ([]models.Entry, error)
	GetEntriesByCategory(ctx context.Context, userID, categoryID int64) ([]models.Entry, error)
	GetEntry(ctx context.Context, userID, entryID int64) (models.Entry, error)
	AddEntry(ctx context.Context, userID int64, request models.EntryRequest) (models.Entry, error)
	UpdateEntry(ctx context.Context, userID, entryID int64, request models.EntryUpdateRequest) (models.Entry, error)
	DeleteEntry(ctx context.Context, userID, entryID int64) error
}

// DiaryServiceWrapper defines middleware composition for DiaryService.
// Implementations wrap an existing DiaryService to add behavior such as
// logging or validating.
type DiaryServiceWrapper interface {
	Wrap(DiaryService) DiaryService // returns a decorated DiaryService applying additional behavior
}

// AdminService backs the administrative commands.
type AdminService interface {
	// CreateAdmin registers an account with the admin role. Returns
	// ErrAdminAlreadyExists when the email is taken.
	CreateAdmin(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// ResetPassword re-hashes the password of the account with the given
	// username. Returns ErrUserNotFound for an unknown username.
	ResetPassword(ctx context.Context, username, password string) error

	// ListUsers returns every account with statistics of its diary.
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
