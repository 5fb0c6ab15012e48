package auditoria

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Campos considerados significativos por tabela, na ordem em que aparecem no
// resumo. Tabelas fora da lista caem no fallback: todas as chaves presentes no
// snapshot novo.
var camposPorTabela = map[string][]string{
	"cotacoes": {
		"cliente", "solicitante", "fazenda", "data",
		"origem", "destino", "roteiro", "observacoes",
		"cidade", "estado", "safra", "grupo",
	},
	"transportadoras": {"nome", "email", "email2", "telefone", "telefone2"},
	"safras":          {"nome"},
	"grupos":          {"nome"},
	"usuarios":        {"nome", "email"},
}

// Rótulos humanos para campos cujo nome cru não serve como título.
var rotulos = map[string]string{
	"cliente":     "Cliente",
	"cep":         "CEP",
	"email2":      "E-mail secundário",
	"email":       "E-mail",
	"telefone2":   "Telefone secundário",
	"observacoes": "Observações",
}

var titulador = cases.Title(language.BrazilianPortuguese)

// ResumoAlteracoes compara os snapshots de um UPDATE e devolve uma descrição
// legível das mudanças campo a campo, no formato
// "Campo: anterior → novo", separadas por vírgula. Retorna string vazia
// quando falta um dos snapshots ou quando nenhum campo significativo mudou.
func ResumoAlteracoes(anterior, novo map[string]any, tabela string) string {
	if anterior == nil || novo == nil {
		return ""
	}

	campos, ok := camposPorTabela[tabela]
	if !ok {
		campos = make([]string, 0, len(novo))
		for k := range novo {
			campos = append(campos, k)
		}
		sort.Strings(campos)
	}

	var mudancas []string
	for _, campo := range campos {
		antes := renderizarValor(anterior[campo])
		depois := renderizarValor(novo[campo])
		if antes == depois {
			continue
		}
		mudancas = append(mudancas, fmt.Sprintf("%s: %s → %s", rotulo(campo), antes, depois))
	}

	return strings.Join(mudancas, ", ")
}

func rotulo(campo string) string {
	if r, ok := rotulos[campo]; ok {
		return r
	}
	return titulador.String(campo)
}

// renderizarValor converte o valor do snapshot para exibição; nulos e strings
// em branco viram "vazio".
func renderizarValor(v any) string {
	if v == nil {
		return "vazio"
	}
	s := fmt.Sprint(v)
	if strings.TrimSpace(s) == "" {
		return "vazio"
	}
	return s
}
