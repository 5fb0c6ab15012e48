package auditoria

import (
	"time"
)

// Ações registradas no log de auditoria.
const (
	AcaoCreate = "CREATE"
	AcaoUpdate = "UPDATE"
	AcaoDelete = "DELETE"
)

// Auditoria é uma entrada imutável do log de alterações. Depois de criada
// nunca é atualizada nem removida; a API apenas a lê.
type Auditoria struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UsuarioID    uint   `gorm:"index" json:"usuarioId"`
	UsuarioEmail string `gorm:"size:255" json:"usuarioEmail"`

	Acao       string `gorm:"size:20;not null" json:"acao"`
	Tabela     string `gorm:"size:100;not null;index" json:"tabela"`
	RegistroID uint   `gorm:"index" json:"registroId"`

	// Snapshots dos campos antes e depois da mutação, em JSONB.
	DadosAnteriores map[string]any `gorm:"type:jsonb;serializer:json" json:"dadosAnteriores,omitempty"`
	DadosNovos      map[string]any `gorm:"type:jsonb;serializer:json" json:"dadosNovos,omitempty"`

	Descricao string `json:"descricao,omitempty"`
}
