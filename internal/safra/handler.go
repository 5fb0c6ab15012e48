package safra

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/AgroFrete/api-cotacoes/internal/auditoria"
	"github.com/AgroFrete/api-cotacoes/internal/auth"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Auditoria  auditoria.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Auditoria:  auditoria.NewRepository(),
	}
}

type safraRequest struct {
	Nome string `json:"nome"`
}

// Criar trata POST /safras
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req safraRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Nome) == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}

	s := Safra{Nome: req.Nome}
	if err := h.Repository.Salvar(h.DB, &s); err != nil {
		http.Error(w, "Erro ao salvar safra", http.StatusInternalServerError)
		return
	}

	h.registrar(r, auditoria.AcaoCreate, s.ID, nil, map[string]any{"nome": s.Nome})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(s)
}

// Listar trata GET /safras
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar safras", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Atualizar trata PUT /safras/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Safra não encontrada", http.StatusNotFound)
		return
	}

	var req safraRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Nome) == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Atualizar(h.DB, uint(id), req.Nome); err != nil {
		http.Error(w, "Erro ao atualizar safra", http.StatusInternalServerError)
		return
	}

	h.registrar(r, auditoria.AcaoUpdate, uint(id),
		map[string]any{"nome": existente.Nome},
		map[string]any{"nome": req.Nome})

	existente.Nome = req.Nome
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// Deletar trata DELETE /safras/{id} (soft delete).
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Safra não encontrada", http.StatusNotFound)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir safra", http.StatusInternalServerError)
		return
	}

	h.registrar(r, auditoria.AcaoDelete, existente.ID, map[string]any{"nome": existente.Nome}, nil)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) registrar(r *http.Request, acao string, registroID uint, anterior, novo map[string]any) {
	usuarioID, _ := r.Context().Value(auth.CtxUserID).(uint)
	email, _ := r.Context().Value(auth.CtxUserEmail).(string)

	_ = h.Auditoria.Registrar(h.DB, &auditoria.Auditoria{
		UsuarioID:       usuarioID,
		UsuarioEmail:    email,
		Acao:            acao,
		Tabela:          "safras",
		RegistroID:      registroID,
		DadosAnteriores: anterior,
		DadosNovos:      novo,
	})
}
