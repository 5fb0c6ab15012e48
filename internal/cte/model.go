package cte

import (
	"time"
)

// Limite de tamanho aceito para o PDF de CTE.
const TamanhoMaximo = 10 << 20 // 10 MB

// CTE é o conhecimento de transporte (PDF) anexado ao par
// cotação/transportadora depois que o frete é contratado.
type CTE struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	CotacaoID               uint `gorm:"not null;index" json:"cotacaoId"`
	TransportadoraCotacaoID uint `gorm:"not null;index" json:"transportadoraCotacaoId"`

	NomeOriginal string `gorm:"size:255" json:"nomeOriginal"`
	Caminho      string `gorm:"size:512;not null" json:"-"`
	Tamanho      int64  `json:"tamanho"`

	UsuarioID uint `gorm:"index" json:"usuarioId"`
}
