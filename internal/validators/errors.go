package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRegistrationFieldsRequired = errors.New("all fields are required")
	ErrPasswordTooShort           = errors.New("password is too short")
	ErrCredentialsRequired        = errors.New("email and password are required")
	ErrCategoryNameRequired       = errors.New("category name is required")
	ErrEntryFieldsRequired        = errors.New("title, content, and category are required")
)
