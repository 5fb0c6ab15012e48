package auditoria

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResumoAlteracoesUmCampo(t *testing.T) {
	anterior := map[string]any{"cliente": "Fazenda Santa Rita", "cidade": "Sorriso"}
	novo := map[string]any{"cliente": "Fazenda Boa Vista", "cidade": "Sorriso"}

	resumo := ResumoAlteracoes(anterior, novo, "cotacoes")

	assert.Equal(t, "Cliente: Fazenda Santa Rita → Fazenda Boa Vista", resumo)
}

func TestResumoAlteracoesRespeitaOrdemDaTabela(t *testing.T) {
	anterior := map[string]any{"cliente": "A", "destino": "Santos", "data": "01/06/2024"}
	novo := map[string]any{"cliente": "B", "destino": "Paranaguá", "data": "02/06/2024"}

	resumo := ResumoAlteracoes(anterior, novo, "cotacoes")

	assert.Equal(t,
		"Cliente: A → B, Data: 01/06/2024 → 02/06/2024, Destino: Santos → Paranaguá",
		resumo)
}

func TestResumoAlteracoesSemMudanca(t *testing.T) {
	snapshot := map[string]any{"cliente": "A", "cidade": "Sorriso"}

	assert.Empty(t, ResumoAlteracoes(snapshot, snapshot, "cotacoes"))
}

func TestResumoAlteracoesSnapshotAusente(t *testing.T) {
	snapshot := map[string]any{"cliente": "A"}

	assert.Empty(t, ResumoAlteracoes(nil, snapshot, "cotacoes"))
	assert.Empty(t, ResumoAlteracoes(snapshot, nil, "cotacoes"))
}

func TestResumoAlteracoesCampoEmBrancoViraVazio(t *testing.T) {
	anterior := map[string]any{"observacoes": ""}
	novo := map[string]any{"observacoes": "urgente"}

	resumo := ResumoAlteracoes(anterior, novo, "cotacoes")

	assert.Equal(t, "Observações: vazio → urgente", resumo)
}

func TestResumoAlteracoesNuloEBrancoSaoEquivalentes(t *testing.T) {
	anterior := map[string]any{"observacoes": nil}
	novo := map[string]any{"observacoes": "   "}

	assert.Empty(t, ResumoAlteracoes(anterior, novo, "cotacoes"))
}

func TestResumoAlteracoesCampoForaDaListaIgnorado(t *testing.T) {
	anterior := map[string]any{"usuario_id": 1, "cliente": "A"}
	novo := map[string]any{"usuario_id": 2, "cliente": "A"}

	assert.Empty(t, ResumoAlteracoes(anterior, novo, "cotacoes"))
}

func TestResumoAlteracoesTabelaDesconhecidaUsaChavesDoNovo(t *testing.T) {
	anterior := map[string]any{"b": "1", "a": "x"}
	novo := map[string]any{"b": "2", "a": "y"}

	resumo := ResumoAlteracoes(anterior, novo, "outra_tabela")

	assert.Equal(t, "A: x → y, B: 1 → 2", resumo)
}

func TestResumoAlteracoesRotulosEspeciais(t *testing.T) {
	anterior := map[string]any{"email2": "a@b.com", "telefone2": "11 9999"}
	novo := map[string]any{"email2": "c@d.com", "telefone2": "11 8888"}

	resumo := ResumoAlteracoes(anterior, novo, "transportadoras")

	assert.Equal(t,
		"E-mail secundário: a@b.com → c@d.com, Telefone secundário: 11 9999 → 11 8888",
		resumo)
}
