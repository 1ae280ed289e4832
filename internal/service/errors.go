package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrAdminAlreadyExists  = errors.New("admin user already exists")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category with this name already exists")
	ErrCategoryInUse         = errors.New("category has entries")
	ErrEntryNotFound         = errors.New("entry not found")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// CategoryInUseError is returned when deleting a category that still has
// entries filed under it. It matches ErrCategoryInUse.
type CategoryInUseError struct {
	// Count is the number of entries referencing the category.
	Count int
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("cannot delete category with %d entries", e.Count)
}

func (e *CategoryInUseError) Is(target error) bool {
	return target == ErrCategoryInUse
}
