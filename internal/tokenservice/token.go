package tokenservice

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// Claims carries the user id embedded in a signed token. The payload is
// intentionally minimal: {"id": <user id>}.
type Claims struct {
	UserID int `json:"id"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
}

func New(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Sign issues an HS256 token whose payload carries the given user id.
func (s *TokenService) Sign(userID int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: userID})
	return token.SignedString(s.secret)
}

// Verify parses and checks the signature of the given token string and
// returns the decoded claims. The token string is used as presented in the
// Authorization header, with no prefix stripping.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
