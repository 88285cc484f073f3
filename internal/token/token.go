package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/academia-accounts/internal/config"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Subject  string
	FullName string
	Role     string
}

// Service emite e valida bearer tokens HS256. A expiração é o único
// mecanismo de invalidação: não existe lista de revogação.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.AccessTokenTTL,
	}
}

func (s *Service) Issue(claims Claims) (string, error) {
	now := time.Now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  claims.Subject,
		"name": claims.FullName,
		"role": claims.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	})

	return t.SignedString(s.secret)
}

// Parse rejeita assinatura inválida, algoritmo não-HMAC e tokens expirados.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := mapClaims["sub"].(string)
	name, _ := mapClaims["name"].(string)
	role, _ := mapClaims["role"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{
		Subject:  sub,
		FullName: name,
		Role:     role,
	}, nil
}
