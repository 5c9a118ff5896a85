package models

import (
	"time"
)

// Usuario represents the usuarios table (administrator accounts).
// Residents do not have accounts; they identify by chácara number only.
type Usuario struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Email     string    `json:"email" gorm:"column:email;uniqueIndex;not null"`
	Nome      string    `json:"nome" gorm:"column:nome;not null"`
	SenhaHash string    `json:"-" gorm:"column:senha_hash;not null"`
	Ativo     bool      `json:"ativo" gorm:"column:ativo;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Usuario
func (Usuario) TableName() string {
	return "usuarios"
}
