package relatorios

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/AgroFrete/api-cotacoes/internal/cotacao"
	"gorm.io/gorm"
)

type Handler struct {
	DB       *gorm.DB
	Cotacoes cotacao.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:       db,
		Cotacoes: cotacao.NewRepository(),
	}
}

// Desempenho trata GET /relatorios/desempenho. Aceita ?inicio= e ?fim=
// (dd/mm/aaaa) para restringir o conjunto antes da agregação. Os dois
// parâmetros andam juntos: informar só um, ou uma data ilegível, é 400 em
// vez de cair silenciosamente no relatório completo.
func (h *Handler) Desempenho(w http.ResponseWriter, r *http.Request) {
	inicioRaw := strings.TrimSpace(r.URL.Query().Get("inicio"))
	fimRaw := strings.TrimSpace(r.URL.Query().Get("fim"))
	if (inicioRaw == "") != (fimRaw == "") {
		http.Error(w, "'inicio' e 'fim' devem ser informados juntos (dd/mm/aaaa)", http.StatusBadRequest)
		return
	}

	var inicio, fim time.Time
	filtrar := inicioRaw != ""
	if filtrar {
		var okInicio, okFim bool
		inicio, okInicio = cotacao.ParseData(inicioRaw)
		fim, okFim = cotacao.ParseData(fimRaw)
		if !okInicio || !okFim {
			http.Error(w, "datas inválidas em 'inicio'/'fim' (dd/mm/aaaa)", http.StatusBadRequest)
			return
		}
	}

	cotacoes, err := h.Cotacoes.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao carregar cotações", http.StatusInternalServerError)
		return
	}
	if filtrar {
		cotacoes = filtrarPorPeriodo(cotacoes, inicio, fim)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(CalcularDesempenho(cotacoes))
}

// Periodo trata GET /relatorios/periodo?inicio=dd/mm/aaaa&fim=dd/mm/aaaa.
func (h *Handler) Periodo(w http.ResponseWriter, r *http.Request) {
	inicio, okInicio := parseParamData(r, "inicio")
	fim, okFim := parseParamData(r, "fim")
	if !okInicio || !okFim {
		http.Error(w, "parâmetros 'inicio' e 'fim' são obrigatórios (dd/mm/aaaa)", http.StatusBadRequest)
		return
	}

	cotacoes, err := h.Cotacoes.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao carregar cotações", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(CalcularRelatorioPeriodo(cotacoes, inicio, fim))
}

func parseParamData(r *http.Request, nome string) (time.Time, bool) {
	valor := strings.TrimSpace(r.URL.Query().Get(nome))
	if valor == "" {
		return time.Time{}, false
	}
	return cotacao.ParseData(valor)
}

func filtrarPorPeriodo(cotacoes []cotacao.Cotacao, inicio, fim time.Time) []cotacao.Cotacao {
	fimDia := time.Date(fim.Year(), fim.Month(), fim.Day(), 23, 59, 59, 0, fim.Location())
	out := make([]cotacao.Cotacao, 0, len(cotacoes))
	for _, c := range cotacoes {
		data, ok := cotacao.ParseData(c.Data)
		if !ok {
			continue
		}
		if data.Before(inicio) || data.After(fimDia) {
			continue
		}
		out = append(out, c)
	}
	return out
}
