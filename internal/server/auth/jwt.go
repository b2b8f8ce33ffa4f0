// Package auth owns credential hashing and session token issue/verify for
// the storefront. Tokens are stateless: the signed claim is the only record
// of the session, and rotating the secret invalidates every issued token.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stitchline/storefront/internal/common"
)

// UserClaim is the identity payload embedded in every session token.
type UserClaim struct {
	ID int64 `json:"id"`
}

// Claims combines the registered JWT claims with the user identity claim.
type Claims struct {
	jwt.RegisteredClaims
	User UserClaim `json:"user"`
}

// GenerateToken issues an HS256-signed session token for the given user.
// A zero validity omits the exp claim entirely, producing a non-expiring
// token.
func GenerateToken(userID int64, secretKey []byte, validityDuration time.Duration) (string, error) {
	claims := Claims{
		User: UserClaim{ID: userID},
	}
	if validityDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(validityDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies the signature and returns the embedded user id.
// Expired tokens yield common.ErrTokenExpired; anything else that fails to
// verify (malformed input, wrong secret, tampered payload) yields
// common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, common.ErrTokenExpired
		}
		return 0, common.ErrInvalidToken
	}

	if !token.Valid {
		return 0, common.ErrInvalidToken
	}

	return claims.User.ID, nil
}
