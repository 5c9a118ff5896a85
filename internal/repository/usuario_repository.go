package repository

import (
	"gorm.io/gorm"

	"agua-be-svc/internal/models"
)

// UsuarioRepository defines the interface for administrator account data
// operations
type UsuarioRepository interface {
	GetByEmail(email string) (*models.Usuario, error)
}

// usuarioRepository implements UsuarioRepository
type usuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository creates a new instance of UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{
		db: db,
	}
}

// GetByEmail retrieves an active administrator by email
func (r *usuarioRepository) GetByEmail(email string) (*models.Usuario, error) {
	var usuario models.Usuario

	err := r.db.Where("email = ? AND ativo = ?", email, true).First(&usuario).Error
	if err != nil {
		return nil, err
	}

	return &usuario, nil
}
