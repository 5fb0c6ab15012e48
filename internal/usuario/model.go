package usuario

import (
	"time"
)

// Usuario é quem opera o sistema: cria cotações, aprova fretes e mantém os
// cadastros. Toda escrita é carimbada com o ID do usuário autenticado.
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Nome    string `gorm:"size:255;not null" json:"nome"`
	Email   string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Senha   string `gorm:"size:255;not null" json:"-"`
	IsAdmin bool   `gorm:"default:false" json:"isAdmin"`
}
