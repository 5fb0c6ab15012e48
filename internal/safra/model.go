package safra

import (
	"time"

	"gorm.io/gorm"
)

// Safra identifica o lote/ciclo de produção ao qual uma cotação se refere.
type Safra struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome string `gorm:"size:100;not null" json:"nome"`
}
