package auth

import (
	"errors"
	"os"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Claims carried by a session token. ClubID is set only for club
// admins; the server trusts it to scope their elevated capabilities.
type Claims struct {
	Sub    string `json:"sub"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	ClubID string `json:"club_id,omitempty"`
	jwt.RegisteredClaims
}

// CreateAccessToken mints an HS256 token. Session issuance lives in the
// identity provider; this is for tests and local tooling.
func CreateAccessToken(sub, role, name, email, clubID string, ttl time.Duration) (string, error) {
	claims := Claims{
		Sub:    sub,
		Role:   role,
		Name:   name,
		Email:  email,
		ClubID: clubID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func ParseValidate(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, errors.New("invalid token")
	}
	return c, nil
}
