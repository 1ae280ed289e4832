package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every session token.
//
// UserID and Email mirror the "userId" and "email" claims issued by earlier
// versions of the service, so tokens already held by clients keep verifying.
// The registered "sub" claim carries the same id as a string.
type TokenClaims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier resolved from the claims.
	UserID int64 `json:"-"`
}

// GetUserID resolves the account id from the claims: the "userId" claim when
// present, otherwise the "sub" claim.
func (c *TokenClaims) GetUserID() (int64, error) {
	if c.UserID != 0 {
		return c.UserID, nil
	}

	userIDString, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
