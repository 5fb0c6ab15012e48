package relatorios

import (
	"fmt"
	"sort"
	"time"

	"github.com/AgroFrete/api-cotacoes/internal/cotacao"
)

// PontoMensal é um balde da série temporal de valores aprovados.
type PontoMensal struct {
	Mes           string  `json:"mes"` // MM/aaaa
	ValorAprovado float64 `json:"valorAprovado"`
}

// RelatorioPeriodo reúne os KPIs do intervalo e a série mensal.
type RelatorioPeriodo struct {
	CotacoesAprovadas int           `json:"cotacoesAprovadas"`
	ValorAprovado     float64       `json:"valorAprovado"`
	SerieMensal       []PontoMensal `json:"serieMensal"`
}

// CalcularRelatorioPeriodo filtra as cotações pelo intervalo [inicio, fim]
// (dias inclusivos) e computa os KPIs de aprovação. Cotações com data
// ilegível ficam fora de todos os resultados, sem erro. Lista vazia produz
// KPIs zerados e série vazia.
func CalcularRelatorioPeriodo(cotacoes []cotacao.Cotacao, inicio, fim time.Time) RelatorioPeriodo {
	inicioDia := time.Date(inicio.Year(), inicio.Month(), inicio.Day(), 0, 0, 0, 0, inicio.Location())
	fimDia := time.Date(fim.Year(), fim.Month(), fim.Day(), 23, 59, 59, 0, fim.Location())

	rel := RelatorioPeriodo{SerieMensal: []PontoMensal{}}
	porMes := make(map[int]float64)

	for _, c := range cotacoes {
		data, ok := cotacao.ParseData(c.Data)
		if !ok {
			continue
		}
		if data.Before(inicioDia) || data.After(fimDia) {
			continue
		}

		var valor float64
		aprovadas := 0
		for _, t := range c.Transportadoras {
			if aprovada(t) {
				aprovadas++
				valor += valorDaAprovacao(t)
			}
		}
		if aprovadas == 0 {
			continue
		}

		rel.CotacoesAprovadas++
		rel.ValorAprovado += valor
		porMes[data.Year()*100+int(data.Month())] += valor
	}

	chaves := make([]int, 0, len(porMes))
	for k := range porMes {
		chaves = append(chaves, k)
	}
	sort.Ints(chaves)

	for _, k := range chaves {
		rel.SerieMensal = append(rel.SerieMensal, PontoMensal{
			Mes:           fmt.Sprintf("%02d/%04d", k%100, k/100),
			ValorAprovado: porMes[k],
		})
	}

	return rel
}
