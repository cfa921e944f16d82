package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims da sessão do painel.
type Claims struct {
	Email string `json:"email"`
	Nome  string `json:"nome,omitempty"`
	jwt.RegisteredClaims
}

// Tempo de vida da sessão
const SessaoTTL = 8 * time.Hour

const emissor = "api-correspondencias"

// Gera um JWT HS256 com iss, sub, iat, nbf, exp e jti
func GerarTokenSessao(segredo, email, nome string) (string, error) {
	if segredo == "" {
		return "", errors.New("segredo de sessão vazio")
	}

	now := time.Now()
	claims := &Claims{
		Email: email,
		Nome:  nome,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    emissor,
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(SessaoTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
			ID:        fmt.Sprintf("%s-%d", email, now.UnixNano()),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(segredo))
}

// Valida assinatura, iss e exp
func ValidarTokenSessao(segredo, tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(segredo), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("token inválido")
	}

	c, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, errors.New("claims inválidas")
	}
	if c.Issuer != emissor {
		return nil, errors.New("issuer inválido")
	}
	if c.ExpiresAt == nil || time.Now().After(c.ExpiresAt.Time) {
		return nil, errors.New("sessão expirada")
	}
	return c, nil
}
