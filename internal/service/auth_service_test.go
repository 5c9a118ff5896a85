package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"agua-be-svc/internal/models"
)

type fakeUsuarioRepo struct {
	usuarios map[string]*models.Usuario
}

func (r *fakeUsuarioRepo) GetByEmail(email string) (*models.Usuario, error) {
	u, ok := r.usuarios[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func newTestAuthService(t *testing.T, secret string) AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUsuarioRepo{usuarios: map[string]*models.Usuario{
		"admin@amcrs.org.br": {
			ID:        1,
			Email:     "admin@amcrs.org.br",
			Nome:      "Administrador",
			SenhaHash: string(hash),
			Ativo:     true,
		},
	}}
	return NewAuthService(repo, secret, 24*time.Hour, testLogger())
}

func TestLoginSuccess(t *testing.T) {
	secret := "test-secret"
	svc := newTestAuthService(t, secret)

	resp, err := svc.Login("admin@amcrs.org.br", "senha-forte")
	require.NoError(t, err)

	assert.Equal(t, "Administrador", resp.Nome)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin@amcrs.org.br", claims["email"])
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t, "test-secret")

	_, err := svc.Login("admin@amcrs.org.br", "senha-errada")
	require.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(t, "test-secret")

	_, err := svc.Login("alguem@example.com", "senha-forte")
	require.ErrorIs(t, err, ErrCredenciaisInvalidas)
}
