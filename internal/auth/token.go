package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims do token de acesso (inclui RBAC simples: IsAdmin)
type Claims struct {
	UserID  uint   `json:"userId"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Tempo de vida do access token
const AccessTTL = 8 * time.Hour

const issuer = "api-cotacoes"

var secret []byte

// Configurar define a chave HMAC usada para assinar e validar tokens.
// Deve ser chamada uma vez na subida do processo.
func Configurar(chave string) error {
	if chave == "" {
		return errors.New("JWT_SECRET vazio")
	}
	secret = []byte(chave)
	return nil
}

// GenerateAccessToken emite um JWT HS256 com iss, sub, iat, exp e jti.
func GenerateAccessToken(userID uint, email string, isAdmin bool) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("auth não configurado (chame Configurar)")
	}

	now := time.Now()
	jti := fmt.Sprintf("%d-%d", userID, now.UnixNano())

	claims := &Claims{
		UserID:  userID,
		Email:   email,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprint(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
			ID:        jti,
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(secret)
}

// ParseAndValidate valida assinatura, iss e exp.
func ParseAndValidate(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if len(secret) == 0 {
			return nil, errors.New("auth não configurado")
		}
		return secret, nil
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

	if c.Issuer != issuer {
		return nil, errors.New("issuer inválido")
	}
	if c.ExpiresAt == nil || time.Now().After(c.ExpiresAt.Time) {
		return nil, errors.New("token expirado")
	}

	return c, nil
}
