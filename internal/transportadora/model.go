package transportadora

import (
	"time"

	"gorm.io/gorm"
)

// Transportadora é a entrada do cadastro de transportadoras: dados de contato
// reutilizados ao montar cotações. Uma cotação copia o nome no momento da
// seleção; editar o cadastro não altera lances passados.
type Transportadora struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome      string `gorm:"size:255;not null" json:"nome"`
	Email     string `gorm:"size:255" json:"email"`
	Email2    string `gorm:"size:255" json:"email2"`
	Telefone  string `gorm:"size:50" json:"telefone"`
	Telefone2 string `gorm:"size:50" json:"telefone2"`
}
