package relatorios

import (
	"testing"
	"time"

	"github.com/AgroFrete/api-cotacoes/internal/cotacao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dia(t *testing.T, s string) time.Time {
	t.Helper()
	data, ok := cotacao.ParseData(s)
	require.True(t, ok, "data inválida no teste: %s", s)
	return data
}

func TestCalcularRelatorioPeriodoJunho(t *testing.T) {
	cotacoes := []cotacao.Cotacao{
		{
			Data: "01/06/2024",
			Transportadoras: []cotacao.TransportadoraCotacao{
				{Nome: "TransAgro", Status: "Aprovado", ValorTotal: "100"},
			},
		},
		{
			Data: "15/06/2024",
			Transportadoras: []cotacao.TransportadoraCotacao{
				{Nome: "TransAgro", Status: "Pendente", ValorTotal: "50"},
			},
		},
	}

	rel := CalcularRelatorioPeriodo(cotacoes, dia(t, "01/06/2024"), dia(t, "30/06/2024"))

	assert.Equal(t, 1, rel.CotacoesAprovadas)
	assert.Equal(t, 100.0, rel.ValorAprovado)
	require.Len(t, rel.SerieMensal, 1)
	assert.Equal(t, "06/2024", rel.SerieMensal[0].Mes)
	assert.Equal(t, 100.0, rel.SerieMensal[0].ValorAprovado)
}

func TestCalcularRelatorioPeriodoListaVazia(t *testing.T) {
	rel := CalcularRelatorioPeriodo(nil, dia(t, "01/01/2024"), dia(t, "31/12/2024"))

	assert.Zero(t, rel.CotacoesAprovadas)
	assert.Zero(t, rel.ValorAprovado)
	assert.Empty(t, rel.SerieMensal)
	assert.NotNil(t, rel.SerieMensal)
}

func TestCalcularRelatorioPeriodoIntervaloInclusivo(t *testing.T) {
	aprovado := []cotacao.TransportadoraCotacao{
		{Nome: "TransAgro", Status: "Aprovado", ValorTotal: "10"},
	}
	cotacoes := []cotacao.Cotacao{
		{Data: "31/05/2024", Transportadoras: aprovado},
		{Data: "01/06/2024", Transportadoras: aprovado},
		{Data: "30/06/2024", Transportadoras: aprovado},
		{Data: "01/07/2024", Transportadoras: aprovado},
	}

	rel := CalcularRelatorioPeriodo(cotacoes, dia(t, "01/06/2024"), dia(t, "30/06/2024"))

	assert.Equal(t, 2, rel.CotacoesAprovadas)
	assert.Equal(t, 20.0, rel.ValorAprovado)
}

func TestCalcularRelatorioPeriodoDataIlegivelFicaFora(t *testing.T) {
	cotacoes := []cotacao.Cotacao{
		{
			Data: "junho de 2024",
			Transportadoras: []cotacao.TransportadoraCotacao{
				{Nome: "TransAgro", Status: "Aprovado", ValorTotal: "100"},
			},
		},
	}

	rel := CalcularRelatorioPeriodo(cotacoes, dia(t, "01/01/2024"), dia(t, "31/12/2024"))

	assert.Zero(t, rel.CotacoesAprovadas)
	assert.Empty(t, rel.SerieMensal)
}

func TestCalcularRelatorioPeriodoAceitaDataISO(t *testing.T) {
	cotacoes := []cotacao.Cotacao{
		{
			Data: "2024-06-10",
			Transportadoras: []cotacao.TransportadoraCotacao{
				{Nome: "TransAgro", Status: "Aprovado", ValorTotal: "75"},
			},
		},
	}

	rel := CalcularRelatorioPeriodo(cotacoes, dia(t, "01/06/2024"), dia(t, "30/06/2024"))

	assert.Equal(t, 1, rel.CotacoesAprovadas)
	assert.Equal(t, 75.0, rel.ValorAprovado)
}

func TestCalcularRelatorioPeriodoSerieOrdenada(t *testing.T) {
	aprovado := func(valor string) []cotacao.TransportadoraCotacao {
		return []cotacao.TransportadoraCotacao{
			{Nome: "TransAgro", Status: "Aprovado", ValorTotal: valor},
		}
	}
	cotacoes := []cotacao.Cotacao{
		{Data: "05/03/2025", Transportadoras: aprovado("30")},
		{Data: "10/11/2024", Transportadoras: aprovado("20")},
		{Data: "02/01/2025", Transportadoras: aprovado("10")},
		{Data: "20/11/2024", Transportadoras: aprovado("5")},
	}

	rel := CalcularRelatorioPeriodo(cotacoes, dia(t, "01/01/2024"), dia(t, "31/12/2025"))

	require.Len(t, rel.SerieMensal, 3)
	assert.Equal(t, "11/2024", rel.SerieMensal[0].Mes)
	assert.Equal(t, 25.0, rel.SerieMensal[0].ValorAprovado)
	assert.Equal(t, "01/2025", rel.SerieMensal[1].Mes)
	assert.Equal(t, "03/2025", rel.SerieMensal[2].Mes)
}

func TestCalcularRelatorioPeriodoCotacaoSemAprovacaoNaoConta(t *testing.T) {
	cotacoes := []cotacao.Cotacao{
		{
			Data: "10/06/2024",
			Transportadoras: []cotacao.TransportadoraCotacao{
				{Nome: "TransAgro", Status: "Recusado", ValorTotal: "100"},
				{Nome: "Rodovia Sul", Status: "Pendente"},
			},
		},
	}

	rel := CalcularRelatorioPeriodo(cotacoes, dia(t, "01/06/2024"), dia(t, "30/06/2024"))

	assert.Zero(t, rel.CotacoesAprovadas)
	assert.Zero(t, rel.ValorAprovado)
}
