package auditoria

import (
	"encoding/json"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// entradaDTO acrescenta ao registro bruto o resumo legível das alterações.
type entradaDTO struct {
	Auditoria
	Resumo string `json:"resumo,omitempty"`
}

// Listar trata GET /auditoria. Aceita ?tabela= para filtrar o feed.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	tabela := strings.TrimSpace(r.URL.Query().Get("tabela"))

	var (
		list []Auditoria
		err  error
	)
	if tabela != "" {
		list, err = h.Repository.ListarPorTabela(h.DB, tabela)
	} else {
		list, err = h.Repository.ListarRecentes(h.DB)
	}
	if err != nil {
		http.Error(w, "Erro ao listar auditoria", http.StatusInternalServerError)
		return
	}

	out := make([]entradaDTO, 0, len(list))
	for _, a := range list {
		out = append(out, entradaDTO{
			Auditoria: a,
			Resumo:    ResumoAlteracoes(a.DadosAnteriores, a.DadosNovos, a.Tabela),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}
