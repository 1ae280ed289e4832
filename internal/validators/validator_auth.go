package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-diary/models"
)

// MinPasswordLength is the minimal number of characters in an account password.
const MinPasswordLength = 6

// Field names accepted by AuthValidator.
const (
	// FieldUsername targets the account username.
	FieldUsername = "username"

	// FieldEmail targets the account email.
	FieldEmail = "email"

	// FieldPassword targets the presence of the plain-text password.
	FieldPassword = "password"

	// FieldPasswordLength enforces MinPasswordLength.
	FieldPasswordLength = "password_length"
)

// AuthValidator validates registration and login requests.
type AuthValidator struct{}

// NewAuthValidator constructs a new AuthValidator and returns it as the
// Validator interface.
func NewAuthValidator() Validator {
	return &AuthValidator{}
}

// Validate accepts models.RegisterRequest and models.LoginRequest, by value
// or by pointer. Returns ErrUnsupportedType for any other input.
func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegisterRequest checks presence of every field before the password
// length, so a request missing fields always reports
// ErrRegistrationFieldsRequired.
func (v *AuthValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldPasswordLength}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username == "" {
				return ErrRegistrationFieldsRequired
			}
		case FieldEmail:
			if request.Email == "" {
				return ErrRegistrationFieldsRequired
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrRegistrationFieldsRequired
			}
		case FieldPasswordLength:
			if utf8.RuneCountInString(request.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if request.Email == "" {
				return ErrCredentialsRequired
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrCredentialsRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
