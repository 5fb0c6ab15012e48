package transportadora

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

// Criar trata POST /transportadoras
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var t Transportadora
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(t.Nome) == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Salvar(h.DB, &t); err != nil {
		http.Error(w, "Erro ao salvar transportadora", http.StatusInternalServerError)
		return
	}

	h.registrar(r, auditoria.AcaoCreate, t.ID, nil, snapshot(&t))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(t)
}

// Listar trata GET /transportadoras
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar transportadoras", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /transportadoras/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	t, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Transportadora não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(t)
}

// Atualizar trata PUT /transportadoras/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Transportadora não encontrada", http.StatusNotFound)
		return
	}
	anterior := snapshot(existente)

	var novos Transportadora
	if err := json.NewDecoder(r.Body).Decode(&novos); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(novos.Nome) == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Atualizar(h.DB, uint(id), &novos); err != nil {
		http.Error(w, "Erro ao atualizar transportadora", http.StatusInternalServerError)
		return
	}

	atualizada, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Erro ao buscar transportadora", http.StatusInternalServerError)
		return
	}

	h.registrar(r, auditoria.AcaoUpdate, atualizada.ID, anterior, snapshot(atualizada))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizada)
}

// Deletar trata DELETE /transportadoras/{id} (soft delete).
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Transportadora não encontrada", http.StatusNotFound)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir transportadora", http.StatusInternalServerError)
		return
	}

	h.registrar(r, auditoria.AcaoDelete, existente.ID, snapshot(existente), nil)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) registrar(r *http.Request, acao string, registroID uint, anterior, novo map[string]any) {
	usuarioID, _ := r.Context().Value(auth.CtxUserID).(uint)
	email, _ := r.Context().Value(auth.CtxUserEmail).(string)

	_ = h.Auditoria.Registrar(h.DB, &auditoria.Auditoria{
		UsuarioID:       usuarioID,
		UsuarioEmail:    email,
		Acao:            acao,
		Tabela:          "transportadoras",
		RegistroID:      registroID,
		DadosAnteriores: anterior,
		DadosNovos:      novo,
	})
}

func snapshot(t *Transportadora) map[string]any {
	return map[string]any{
		"nome":      t.Nome,
		"email":     t.Email,
		"email2":    t.Email2,
		"telefone":  t.Telefone,
		"telefone2": t.Telefone2,
	}
}
