package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"agua-be-svc/internal/repository"
	"agua-be-svc/pkg/logger"
)

// ErrCredenciaisInvalidas is returned for unknown emails and wrong passwords
// alike
var ErrCredenciaisInvalidas = errors.New("e-mail ou senha inválidos")

// AuthService defines the interface for administrator authentication
type AuthService interface {
	Login(email string, senha string) (*LoginResponse, error)
}

// LoginResponse carries the signed token handed to the administrator UI
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
}

// authService implements AuthService
type authService struct {
	usuarioRepo repository.UsuarioRepository
	jwtSecret   []byte
	tokenTTL    time.Duration
	logger      *logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(usuarioRepo repository.UsuarioRepository, jwtSecret string, tokenTTL time.Duration, logger *logger.Logger) AuthService {
	return &authService{
		usuarioRepo: usuarioRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTL,
		logger:      logger,
	}
}

// Login verifies the administrator's credentials and issues an HS256 token
func (s *authService) Login(email string, senha string) (*LoginResponse, error) {
	usuario, err := s.usuarioRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredenciaisInvalidas
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(senha)); err != nil {
		s.logger.WithField("email", email).Warn("Login attempt with wrong password")
		return nil, ErrCredenciaisInvalidas
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"sub":   usuario.ID,
		"email": usuario.Email,
		"nome":  usuario.Nome,
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.WithField("email", email).Info("Administrator logged in")

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Nome:      usuario.Nome,
		Email:     usuario.Email,
	}, nil
}
