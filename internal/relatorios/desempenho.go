package relatorios

import (
	"sort"
	"strings"

	"github.com/AgroFrete/api-cotacoes/internal/cotacao"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DesempenhoTransportadora consolida as estatísticas de uma transportadora
// sobre o conjunto de cotações analisado.
type DesempenhoTransportadora struct {
	Nome        string `json:"nome"`
	Solicitadas int    `json:"solicitadas"`
	Respondidas int    `json:"respondidas"`
	Aprovadas   int    `json:"aprovadas"`

	ValorAprovado float64 `json:"valorAprovado"`
	// Média dos valores aprovados; nil quando não há aprovação.
	TicketMedio *float64 `json:"ticketMedio,omitempty"`
}

// CalcularDesempenho reduz a lista de cotações (já filtrada por período pelo
// chamador) em estatísticas por transportadora. A chave é o nome exato da
// transportadora, sem normalização; a saída sai ordenada por colação
// portuguesa, ignorando caixa e acentos na comparação.
func CalcularDesempenho(cotacoes []cotacao.Cotacao) []DesempenhoTransportadora {
	porNome := make(map[string]*DesempenhoTransportadora)

	for _, c := range cotacoes {
		for _, t := range c.Transportadoras {
			d, ok := porNome[t.Nome]
			if !ok {
				d = &DesempenhoTransportadora{Nome: t.Nome}
				porNome[t.Nome] = d
			}

			d.Solicitadas++
			if respondida(t) {
				d.Respondidas++
			}
			if aprovada(t) {
				d.Aprovadas++
				d.ValorAprovado += valorDaAprovacao(t)
			}
		}
	}

	out := make([]DesempenhoTransportadora, 0, len(porNome))
	for _, d := range porNome {
		if d.Aprovadas > 0 {
			media := d.ValorAprovado / float64(d.Aprovadas)
			d.TicketMedio = &media
		}
		out = append(out, *d)
	}

	col := collate.New(language.BrazilianPortuguese, collate.Loose)
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(out[i].Nome, out[j].Nome) < 0
	})

	return out
}

// respondida considera que a transportadora respondeu quando informou valor
// total ou proposta final (espaços em branco não contam como resposta).
func respondida(t cotacao.TransportadoraCotacao) bool {
	return strings.TrimSpace(t.ValorTotal) != "" || strings.TrimSpace(t.PropostaFinal) != ""
}

func aprovada(t cotacao.TransportadoraCotacao) bool {
	return strings.EqualFold(strings.TrimSpace(t.Status), "aprovado")
}

// valorDaAprovacao devolve a proposta final quando preenchida, senão o valor
// total. Valores não numéricos contam como 0.
func valorDaAprovacao(t cotacao.TransportadoraCotacao) float64 {
	if strings.TrimSpace(t.PropostaFinal) != "" {
		return cotacao.ParseValor(t.PropostaFinal)
	}
	return cotacao.ParseValor(t.ValorTotal)
}
