package grupo

import (
	"time"

	"gorm.io/gorm"
)

// Grupo agrupa fazendas/solicitantes para fins de organização das cotações.
type Grupo struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome string `gorm:"size:100;not null" json:"nome"`
}
