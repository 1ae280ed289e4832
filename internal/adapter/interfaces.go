// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed Go client for the go-diary REST API.
//
// [DiaryClient] keeps the bearer token returned by Register or Login and
// attaches it to every authenticated call. Non-2xx responses are returned as
// [*APIError] values that match the sentinel errors in errors.go with
// [errors.Is] (e.g. [ErrNotFound] for 404, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-diary/models"
)

// DiaryClient defines communication with the go-diary server.
type DiaryClient interface {
	// SetToken stores the bearer token attached to subsequent authenticated
	// requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates an account. On success the returned token is stored.
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates an account. On success the returned token is stored.
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)

	// Profile returns the account the stored token belongs to.
	Profile(ctx context.Context) (models.User, error)

	// Version returns the server build information.
	Version(ctx context.Context) (models.VersionResponse, error)

	GetCategories(ctx context.Context) ([]models.Category, error)
	AddCategory(ctx context.Context, request models.CategoryRequest) (models.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error

	GetEntries(ctx context.Context) ([]models.Entry, error)
	GetEntriesByCategory(ctx context.Context, categoryID int64) ([]models.Entry, error)
	GetEntry(ctx context.Context, entryID int64) (models.Entry, error)
	AddEntry(ctx context.Context, request models.EntryRequest) (models.Entry, error)

	// UpdateEntry changes only the fields set in request.
	UpdateEntry(ctx context.Context, entryID int64, request models.EntryUpdateRequest) (models.Entry, error)
	DeleteEntry(ctx context.Context, entryID int64) error
}
