package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Resenas-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "resenas-api-test"
)

func testUser() pkgjwt.UserClaims {
	return pkgjwt.UserClaims{
		ID:     "00000000-0000-0000-0000-000000000001",
		Name:   "Ana",
		Email:  "ana@example.com",
		Role:   "USER_ROLE",
		Status: true,
	}
}

func TestGenerateAndParse_UsuarioCompleto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUser(), testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	user, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUser(), *user)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUser(), testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUser(), testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUser(), testIssuer, 60)
	assert.Error(t, err)
}
