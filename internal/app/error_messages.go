// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-diary server handlers, middleware and admin tool.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or console output. Browser clients match on some of
// them, so the wording is part of the API.
package app

// Request decoding and generic failures.
const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs and no operation-specific message applies.
	MsgInternalServerError = "Internal server error"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not found"
)

// Access gateway.
const (
	// MsgAccessTokenRequired is returned with 401 when the request carries no
	// bearer token.
	MsgAccessTokenRequired = "Access token required"

	// MsgInvalidToken is returned with 403 when the bearer token cannot be
	// verified.
	MsgInvalidToken = "Invalid token"
)

// Credential store.
const (
	MsgAllFieldsRequired      = "All fields are required"
	MsgPasswordTooShort       = "Password must be at least 6 characters"
	MsgEmailAlreadyRegistered = "Email already registered"
	MsgUsernameAlreadyTaken   = "Username already taken"
	MsgEmailAndPasswordNeeded = "Email and password are required"
	MsgInvalidEmailOrPassword = "Invalid email or password"
	MsgUserNotFound           = "User not found"
	MsgRegistrationFailed     = "Registration failed"
	MsgLoginFailed            = "Login failed"
	MsgFailedToGetProfile     = "Failed to get profile"
)

// Diary store.
const (
	MsgCategoryNameRequired = "Category name is required"
	MsgCategoryExists       = "Category with this name already exists"
	MsgCategoryNotFound     = "Category not found"

	// MsgCategoryInUseFormat takes the number of entries still filed under
	// the category.
	MsgCategoryInUseFormat = "Cannot delete category with %d entries. Please delete the entries first."

	MsgEntryFieldsRequired = "Title, content, and category are required"
	MsgEntryNotFound       = "Entry not found"

	MsgCategoryDeleted = "Category deleted successfully"
	MsgEntryDeleted    = "Entry deleted successfully"

	MsgFailedToGetCategories      = "Failed to get categories"
	MsgFailedToCreateCategory     = "Failed to create category"
	MsgFailedToDeleteCategory     = "Failed to delete category"
	MsgFailedToGetEntries         = "Failed to get entries"
	MsgFailedToGetCategoryEntries = "Failed to get category entries"
	MsgFailedToGetEntry           = "Failed to get entry"
	MsgFailedToCreateEntry        = "Failed to create entry"
	MsgFailedToUpdateEntry        = "Failed to update entry"
	MsgFailedToDeleteEntry        = "Failed to delete entry"
)
