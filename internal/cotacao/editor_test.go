package cotacao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rascunhoBase() Cotacao {
	return Cotacao{
		ID:          1,
		Solicitante: "João",
		Data:        "01/06/2024",
		Produtos: []Produto{
			{Nome: "Soja", Quantidade: 10, Peso: "30000"},
			{Nome: "Milho", Quantidade: 5, Peso: "15000"},
		},
		Transportadoras: []TransportadoraCotacao{
			{Nome: "TransAgro", Status: StatusPendente},
			{Nome: "Rodovia Sul", Status: StatusPendente},
		},
	}
}

func TestDefinirCampo(t *testing.T) {
	original := rascunhoBase()

	novo, err := DefinirCampo(original, "solicitante", "Maria")
	require.NoError(t, err)

	assert.Equal(t, "Maria", novo.Solicitante)
	assert.Equal(t, "João", original.Solicitante)
}

func TestDefinirCampoDesconhecido(t *testing.T) {
	_, err := DefinirCampo(rascunhoBase(), "inexistente", "x")
	assert.Error(t, err)
}

func TestDefinirCampoProdutoNaoMutaOriginal(t *testing.T) {
	original := rascunhoBase()

	novo, err := DefinirCampoProduto(original, 0, "nome", "Trigo")
	require.NoError(t, err)

	assert.Equal(t, "Trigo", novo.Produtos[0].Nome)
	assert.Equal(t, "Soja", original.Produtos[0].Nome)

	// Coleção não tocada é compartilhada por referência.
	assert.Same(t, &original.Transportadoras[0], &novo.Transportadoras[0])
}

func TestDefinirCampoProdutoForaDoIntervalo(t *testing.T) {
	_, err := DefinirCampoProduto(rascunhoBase(), 5, "nome", "x")
	assert.Error(t, err)

	_, err = DefinirCampoProduto(rascunhoBase(), -1, "nome", "x")
	assert.Error(t, err)
}

func TestDefinirCampoProdutoQuantidadeInvalida(t *testing.T) {
	_, err := DefinirCampoProduto(rascunhoBase(), 0, "quantidade", "abc")
	assert.Error(t, err)

	_, err = DefinirCampoProduto(rascunhoBase(), 0, "quantidade", "0")
	assert.Error(t, err)
}

func TestAdicionarProduto(t *testing.T) {
	original := rascunhoBase()

	novo := AdicionarProduto(original)

	require.Len(t, novo.Produtos, 3)
	assert.Equal(t, 1, novo.Produtos[2].Quantidade)
	assert.Empty(t, novo.Produtos[2].Nome)
	assert.Len(t, original.Produtos, 2)
}

func TestRemoverProduto(t *testing.T) {
	original := rascunhoBase()

	novo, err := RemoverProduto(original, 0)
	require.NoError(t, err)

	require.Len(t, novo.Produtos, 1)
	assert.Equal(t, "Milho", novo.Produtos[0].Nome)
	assert.Len(t, original.Produtos, 2)
}

func TestRemoverUltimoProdutoEhNoOp(t *testing.T) {
	c := rascunhoBase()
	c.Produtos = c.Produtos[:1]

	novo, err := RemoverProduto(c, 0)
	require.NoError(t, err)

	assert.Len(t, novo.Produtos, 1)
	assert.Equal(t, c.Produtos, novo.Produtos)
}

func TestDefinirValorUnitarioRecalculaTotal(t *testing.T) {
	original := rascunhoBase() // quantidade total = 15

	novo, err := DefinirCampoTransportadora(original, 0, "valorUnitario", "10")
	require.NoError(t, err)

	assert.Equal(t, "10", novo.Transportadoras[0].ValorUnitario)
	assert.Equal(t, "150", novo.Transportadoras[0].ValorTotal)
	assert.Empty(t, original.Transportadoras[0].ValorTotal)
}

func TestDefinirValorUnitarioIlegivelZeraTotal(t *testing.T) {
	novo, err := DefinirCampoTransportadora(rascunhoBase(), 0, "valorUnitario", "abc")
	require.NoError(t, err)
	assert.Empty(t, novo.Transportadoras[0].ValorTotal)
}

func TestRemoverUltimaTransportadoraEhNoOp(t *testing.T) {
	c := rascunhoBase()
	c.Transportadoras = c.Transportadoras[:1]

	novo, err := RemoverTransportadora(c, 0)
	require.NoError(t, err)
	assert.Len(t, novo.Transportadoras, 1)
}

func TestAdicionarTransportadoraComStatusPendente(t *testing.T) {
	novo := AdicionarTransportadora(rascunhoBase())

	require.Len(t, novo.Transportadoras, 3)
	assert.Equal(t, StatusPendente, novo.Transportadoras[2].Status)
}
