package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/faro-api/pkg/jwt"
)

const secret = "s3cr3t"

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	id := jwt.Identity{UserID: "u1", CompanyID: "c1", Role: "admin"}
	tok, err := jwt.Generate(secret, id, "faro", time.Hour)
	require.NoError(t, err)

	got, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate(secret, jwt.Identity{UserID: "u1", CompanyID: "c1"}, "faro", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse("otro", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := jwt.Generate(secret, jwt.Identity{UserID: "u1", CompanyID: "c1"}, "faro", -time.Minute)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, tok)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestParse_SinEmpresa(t *testing.T) {
	tok, err := jwt.Generate(secret, jwt.Identity{UserID: "u1"}, "faro", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestParse_AlgoritmoNoPermitido(t *testing.T) {
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, gojwt.MapClaims{
		"sub": "u1", "company_id": "c1", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = jwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := jwt.Generate("", jwt.Identity{}, "faro", time.Hour)
	assert.ErrorIs(t, err, jwt.ErrEmptySecret)
	_, err = jwt.Parse("", "x")
	assert.ErrorIs(t, err, jwt.ErrEmptySecret)
}
