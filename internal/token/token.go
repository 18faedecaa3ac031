package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Service signs and verifies session tokens against a shared secret.
// Verification is pure: no state beyond the secret is consulted.
type Service struct {
	secret []byte
	exp    time.Duration
	now    func() time.Time
}

// New creates a Service signing with the given secret. Tokens expire one
// hour after issuance.
func New(secret string) *Service {
	return &Service{
		secret: []byte(secret),
		exp:    time.Hour,
		now:    time.Now,
	}
}

// Issue signs the given claims into a token. The claims are taken as-is;
// only iat and exp are set here.
func (s *Service) Issue(claims map[string]interface{}) (string, error) {
	mapped := jwt.MapClaims{}
	for key, value := range claims {
		mapped[key] = value
	}

	currTime := s.now()
	mapped["iat"] = currTime.Unix()
	mapped["exp"] = currTime.Add(s.exp).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapped)

	return token.SignedString(s.secret)
}

// Verify parses and validates a token, returning the embedded claims.
// It fails if the signature does not validate, the token is expired, or
// the token is malformed.
func (s *Service) Verify(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// Subject extracts the uid claim correlating a token to a User document.
// Returns the empty string if the claim is absent or not a string.
func Subject(claims jwt.MapClaims) string {
	uid, _ := claims["uid"].(string)
	return uid
}
