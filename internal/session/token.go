package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reads the expiry of the session cookie's JWT. The client
// has no signing secret, so the claims are inspected without
// verification; the server remains the authority on validity.
func (s *Store) TokenExpiry() (time.Time, error) {
	token := s.api.SessionToken()
	if token == "" {
		return time.Time{}, errors.New("no session token")
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, errors.New("invalid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return time.Time{}, errors.New("invalid claims")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errors.New("invalid claims")
	}
	return exp.Time, nil
}
