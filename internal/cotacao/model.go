package cotacao

import (
	"time"
)

// Cotacao representa uma solicitação de cotação de frete com seus
// produtos e as respostas das transportadoras.
type Cotacao struct {
	ID        uint      `gorm:"primaryKey" json:"cotacaoId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Solicitante string `gorm:"size:255" json:"solicitante"`
	Fazenda     string `gorm:"size:255" json:"fazenda"`

	// Data da cotação no formato dd/mm/aaaa (entrada ISO aaaa-mm-dd também é aceita
	// e normalizada na gravação).
	Data string `gorm:"size:10" json:"data"`

	// Endereço de entrega
	Rua    string `gorm:"size:255" json:"rua"`
	Cidade string `gorm:"size:255" json:"cidade"`
	Estado string `gorm:"size:2" json:"estado"`
	CEP    string `gorm:"size:20" json:"cep"`

	Origem      string `gorm:"size:255" json:"origem"`
	Destino     string `gorm:"size:255" json:"destino"`
	Roteiro     string `json:"roteiro"`
	Observacoes string `json:"observacoes"`

	Safra string `gorm:"size:100" json:"safra"`
	Grupo string `gorm:"size:100" json:"grupo"`

	Produtos        []Produto               `gorm:"foreignKey:CotacaoID;constraint:OnDelete:CASCADE" json:"produtos"`
	Transportadoras []TransportadoraCotacao `gorm:"foreignKey:CotacaoID;constraint:OnDelete:CASCADE" json:"transportadoras"`

	UsuarioID uint `gorm:"index" json:"usuarioId"`
}

// Produto é um item transportado dentro de uma cotação.
type Produto struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CotacaoID uint `gorm:"not null;index" json:"cotacaoId"`

	Nome       string `gorm:"size:255" json:"nome"`
	Quantidade int    `gorm:"not null;default:1" json:"quantidade"`
	Peso       string `gorm:"size:50" json:"peso"` // kg, texto livre
	Embalagem  string `gorm:"size:100" json:"embalagem"`
}

// Status possíveis de uma resposta de transportadora.
const (
	StatusPendente = "Pendente"
	StatusAprovado = "Aprovado"
	StatusRecusado = "Recusado"
)

// TransportadoraCotacao é a resposta (lance) de uma transportadora em uma
// cotação. O nome é copiado do cadastro no momento da seleção e não é uma
// referência viva.
type TransportadoraCotacao struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CotacaoID uint `gorm:"not null;index" json:"cotacaoId"`

	Nome          string `gorm:"size:255" json:"nome"`
	Prazo         string `gorm:"size:100" json:"prazo"`
	ValorUnitario string `gorm:"size:50" json:"valorUnitario"`
	ValorTotal    string `gorm:"size:50" json:"valorTotal"`
	Status        string `gorm:"size:50;not null;default:'Pendente'" json:"status"`

	// Valor final negociado; quando preenchido, prevalece sobre ValorTotal
	// em todas as agregações monetárias.
	PropostaFinal string `gorm:"size:50" json:"propostaFinal"`
}
