package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarEValidarToken(t *testing.T) {
	require.NoError(t, Configurar("segredo-de-teste"))

	tok, err := GenerateAccessToken(42, "ana@agrofrete.com.br", true)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := ParseAndValidate(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ana@agrofrete.com.br", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "42", claims.Subject)
}

func TestConfigurarChaveVazia(t *testing.T) {
	assert.Error(t, Configurar(""))
}

func TestTokenAssinadoComOutraChave(t *testing.T) {
	require.NoError(t, Configurar("chave-errada"))

	claims := &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: issuer,
		},
	}
	forjado, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("outra-chave"))
	require.NoError(t, err)

	_, err = ParseAndValidate(forjado)
	assert.Error(t, err)
}

func TestIssuerDesconhecidoRejeitado(t *testing.T) {
	require.NoError(t, Configurar("segredo-de-teste"))

	claims := &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "outro-sistema",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AccessTTL)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = ParseAndValidate(tok)
	assert.Error(t, err)
}
