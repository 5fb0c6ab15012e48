package cotacao

import (
	"strings"
)

// ProdutoDTO é o shape de produto aceito nos payloads de criação/atualização.
type ProdutoDTO struct {
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
	Peso       string `json:"peso"`
	Embalagem  string `json:"embalagem"`
}

// TransportadoraDTO é o shape de resposta de transportadora nos payloads.
type TransportadoraDTO struct {
	Nome          string `json:"nome"`
	Prazo         string `json:"prazo"`
	ValorUnitario string `json:"valorUnitario"`
	ValorTotal    string `json:"valorTotal"`
	Status        string `json:"status"`
	PropostaFinal string `json:"propostaFinal"`
}

// CotacaoRequest é usado em POST /cotacoes e PUT /cotacoes/{id}.
type CotacaoRequest struct {
	Solicitante string `json:"solicitante" validate:"required"`
	Fazenda     string `json:"fazenda"`
	Data        string `json:"data"`

	Rua    string `json:"rua"`
	Cidade string `json:"cidade"`
	Estado string `json:"estado"`
	CEP    string `json:"cep"`

	Origem      string `json:"origem"`
	Destino     string `json:"destino"`
	Roteiro     string `json:"roteiro"`
	Observacoes string `json:"observacoes"`

	Safra string `json:"safra"`
	Grupo string `json:"grupo"`

	Produtos        []ProdutoDTO        `json:"produtos" validate:"min=1"`
	Transportadoras []TransportadoraDTO `json:"transportadoras" validate:"min=1"`
}

// Validar aplica as regras de gravação que as tags não cobrem: ao menos um
// produto e uma transportadora com nome preenchido.
func (req *CotacaoRequest) Validar() string {
	if !algumNomeado(req.Produtos, func(p ProdutoDTO) string { return p.Nome }) {
		return "informe ao menos um produto com nome"
	}
	if !algumNomeado(req.Transportadoras, func(t TransportadoraDTO) string { return t.Nome }) {
		return "informe ao menos uma transportadora com nome"
	}
	return ""
}

func algumNomeado[T any](itens []T, nome func(T) string) bool {
	for _, item := range itens {
		if strings.TrimSpace(nome(item)) != "" {
			return true
		}
	}
	return false
}

// ParaModelo converte o payload em modelo, aplicando defaults: quantidade
// mínima 1, status Pendente e data normalizada para dd/mm/aaaa.
func (req *CotacaoRequest) ParaModelo() Cotacao {
	c := Cotacao{
		Solicitante: req.Solicitante,
		Fazenda:     req.Fazenda,
		Data:        NormalizarData(req.Data),
		Rua:         req.Rua,
		Cidade:      req.Cidade,
		Estado:      req.Estado,
		CEP:         req.CEP,
		Origem:      req.Origem,
		Destino:     req.Destino,
		Roteiro:     req.Roteiro,
		Observacoes: req.Observacoes,
		Safra:       req.Safra,
		Grupo:       req.Grupo,
	}

	for _, p := range req.Produtos {
		quantidade := p.Quantidade
		if quantidade < 1 {
			quantidade = 1
		}
		c.Produtos = append(c.Produtos, Produto{
			Nome:       p.Nome,
			Quantidade: quantidade,
			Peso:       p.Peso,
			Embalagem:  p.Embalagem,
		})
	}

	for _, t := range req.Transportadoras {
		status := strings.TrimSpace(t.Status)
		if status == "" {
			status = StatusPendente
		}
		c.Transportadoras = append(c.Transportadoras, TransportadoraCotacao{
			Nome:          t.Nome,
			Prazo:         t.Prazo,
			ValorUnitario: t.ValorUnitario,
			ValorTotal:    t.ValorTotal,
			Status:        status,
			PropostaFinal: t.PropostaFinal,
		})
	}

	return c
}
