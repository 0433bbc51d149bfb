package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// 署名不正・期限切れ・subなし
var ErrInvalidToken = errors.New("invalid token")

// HS256のJWT。subにemailを入れる
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// DI
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{secret: []byte(secret), ttl: ttl}
}

// Issue はemailに紐づくトークンを発行する
func (s *JWTService) Issue(email string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse は検証してemail（sub）を返す
func (s *JWTService) Parse(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || tok == nil || !tok.Valid {
		return "", ErrInvalidToken
	}

	// v4はexp無しでも通るので明示的に確認
	if claims.ExpiresAt == nil {
		return "", ErrInvalidToken
	}

	email := strings.TrimSpace(claims.Subject)
	if email == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}
