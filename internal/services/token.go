package service

import (
	"time"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

type TokenIssuer interface {
	// Issue signs an identity token for the user and returns it with its
	// expiry time.
	Issue(user *models.User) (string, time.Time, error)
}

type jwtIssuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewTokenIssuer(key []byte, ttl time.Duration) TokenIssuer {
	return &jwtIssuer{key: key, ttl: ttl, now: time.Now}
}

func (i *jwtIssuer) Issue(user *models.User) (string, time.Time, error) {

	issuedAt := i.now()
	expiresAt := issuedAt.Add(i.ttl)

	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(i.key)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}
