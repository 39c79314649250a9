package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature or expiry checks.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims are the identity fields embedded in a signed bearer token.
type Claims struct {
	UserID      string `json:"id"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ChannelName string `json:"channelName"`
	LogoID      string `json:"logoId"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies bearer tokens with a shared secret.
// Tokens carry a fixed expiry window from issuance; there is no server-side
// session state and no early revocation.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a token manager signing with secret, with tokens
// valid for ttl from issuance.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs the given identity fields into a token with the configured expiry.
func (tm *TokenManager) Issue(userID, email, phone, channelName, logoID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:      userID,
		Email:       email,
		Phone:       phone,
		ChannelName: channelName,
		LogoID:      logoID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Parse verifies the token's signature and expiry and returns the embedded
// claims. Any failure is reported as ErrInvalidToken.
func (tm *TokenManager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
