package models

import (
	"time"
)

// Morador represents the moradores table
type Morador struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	NumeroChacara string    `json:"numero_chacara" gorm:"column:numero_chacara;uniqueIndex;not null"`
	Nome          string    `json:"nome" gorm:"column:nome;not null"`
	Telefone      *string   `json:"telefone" gorm:"column:telefone"`
	Ativo         bool      `json:"ativo" gorm:"column:ativo;default:true"`
	TemHidrometro bool      `json:"tem_hidrometro" gorm:"column:tem_hidrometro;default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Morador
func (Morador) TableName() string {
	return "moradores"
}
