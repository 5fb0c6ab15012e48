package cotacao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/AgroFrete/api-cotacoes/internal/auditoria"
	"github.com/AgroFrete/api-cotacoes/internal/auth"
	"github.com/AgroFrete/api-cotacoes/internal/notificacao"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// RemovedorAnexos remove os anexos (CTEs) pertencentes a uma cotação,
// linhas e arquivos. Implementado pelo pacote cte e injetado na subida.
type RemovedorAnexos interface {
	RemoverPorCotacao(db *gorm.DB, cotacaoID uint) error
}

// Handler encapsula DB, repository e colaboradores de auditoria/notificação.
type Handler struct {
	DB          *gorm.DB
	Repository  Repository
	Auditoria   auditoria.Repository
	Notificador *notificacao.Notificador
	Anexos      RemovedorAnexos
	Log         zerolog.Logger

	validate *validator.Validate
}

func NewHandler(db *gorm.DB, notificador *notificacao.Notificador, anexos RemovedorAnexos, log zerolog.Logger) *Handler {
	return &Handler{
		DB:          db,
		Repository:  NewRepository(),
		Auditoria:   auditoria.NewRepository(),
		Notificador: notificador,
		Anexos:      anexos,
		Log:         log,
		validate:    validator.New(),
	}
}

// Criar trata POST /cotacoes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	userVal := r.Context().Value(auth.CtxUserID)
	if userVal == nil {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	usuarioID := userVal.(uint)

	var req CotacaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "campos obrigatórios ausentes: solicitante, produtos e transportadoras", http.StatusBadRequest)
		return
	}
	if msg := req.Validar(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	c := req.ParaModelo()
	c.UsuarioID = usuarioID

	if err := h.Repository.Criar(h.DB, &c); err != nil {
		h.Log.Error().Err(err).Msg("erro ao salvar cotação")
		http.Error(w, "Erro ao salvar cotação", http.StatusInternalServerError)
		return
	}

	h.registrarAuditoria(r, auditoria.AcaoCreate, c.ID, nil, snapshot(&c), "")

	// Releitura para devolver o registro como está persistido.
	salva, err := h.Repository.BuscarPorID(h.DB, c.ID)
	if err != nil {
		salva = &c
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(salva)
}

// Listar trata GET /cotacoes
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar cotações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /cotacoes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Cotação não encontrada", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// Atualizar trata PUT /cotacoes/{id}. As coleções filhas são substituídas
// integralmente pelas do payload.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	userVal := r.Context().Value(auth.CtxUserID)
	if userVal == nil {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Cotação não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar cotação", http.StatusInternalServerError)
		return
	}

	var req CotacaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "campos obrigatórios ausentes: solicitante, produtos e transportadoras", http.StatusBadRequest)
		return
	}
	if msg := req.Validar(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	anterior := snapshot(existente)

	c := req.ParaModelo()
	c.ID = existente.ID
	c.CreatedAt = existente.CreatedAt
	c.UsuarioID = existente.UsuarioID

	if err := h.Repository.Atualizar(h.DB, &c); err != nil {
		h.Log.Error().Err(err).Uint("cotacaoId", c.ID).Msg("erro ao atualizar cotação")
		http.Error(w, "Erro ao atualizar cotação", http.StatusInternalServerError)
		return
	}

	h.registrarAuditoria(r, auditoria.AcaoUpdate, c.ID, anterior, snapshot(&c), "")

	salva, err := h.Repository.BuscarPorID(h.DB, c.ID)
	if err != nil {
		salva = &c
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(salva)
}

// Deletar trata DELETE /cotacoes/{id}. Filhos caem em cascata.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Cotação não encontrada", http.StatusNotFound)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir cotação", http.StatusInternalServerError)
		return
	}

	// Os anexos não caem em cascata: os arquivos em disco também precisam sumir.
	if h.Anexos != nil {
		if err := h.Anexos.RemoverPorCotacao(h.DB, uint(id)); err != nil {
			h.Log.Warn().Err(err).Uint("cotacaoId", uint(id)).Msg("erro ao remover CTEs da cotação")
		}
	}

	h.registrarAuditoria(r, auditoria.AcaoDelete, existente.ID, snapshot(existente), nil, "")

	w.WriteHeader(http.StatusNoContent)
}

type atualizarStatusRequest struct {
	Status        string `json:"status"`
	PropostaFinal string `json:"propostaFinal"`
}

// AtualizarStatusTransportadora trata PATCH /cotacoes/{id}/transportadoras/{tid}/status.
// Aprovação dispara o webhook de alerta.
func (h *Handler) AtualizarStatusTransportadora(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err1 := strconv.Atoi(vars["id"])
	tid, err2 := strconv.Atoi(vars["tid"])
	if err1 != nil || err2 != nil {
		http.Error(w, "IDs inválidos", http.StatusBadRequest)
		return
	}

	var req atualizarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		http.Error(w, "o campo 'status' é obrigatório", http.StatusBadRequest)
		return
	}

	var t TransportadoraCotacao
	if err := h.DB.Where("id = ? AND cotacao_id = ?", tid, id).First(&t).Error; err != nil {
		http.Error(w, "Transportadora não encontrada para essa cotação", http.StatusNotFound)
		return
	}

	updates := map[string]any{"status": status}
	if strings.TrimSpace(req.PropostaFinal) != "" {
		updates["proposta_final"] = req.PropostaFinal
	}
	if err := h.DB.Model(&t).Updates(updates).Error; err != nil {
		http.Error(w, "Erro ao atualizar status", http.StatusInternalServerError)
		return
	}
	t.Status = status
	if v, ok := updates["proposta_final"]; ok {
		t.PropostaFinal = v.(string)
	}

	descricao := "Status da transportadora " + t.Nome + ": " + status
	h.registrarAuditoria(r, auditoria.AcaoUpdate, uint(id), nil, nil, descricao)

	if strings.EqualFold(status, StatusAprovado) {
		go h.Notificador.EnviarAlertaAprovacao(uint(id), t.Nome)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(t)
}

func (h *Handler) registrarAuditoria(r *http.Request, acao string, registroID uint, anterior, novo map[string]any, descricao string) {
	usuarioID, _ := r.Context().Value(auth.CtxUserID).(uint)
	email, _ := r.Context().Value(auth.CtxUserEmail).(string)

	entrada := auditoria.Auditoria{
		UsuarioID:       usuarioID,
		UsuarioEmail:    email,
		Acao:            acao,
		Tabela:          "cotacoes",
		RegistroID:      registroID,
		DadosAnteriores: anterior,
		DadosNovos:      novo,
		Descricao:       descricao,
	}
	if err := h.Auditoria.Registrar(h.DB, &entrada); err != nil {
		h.Log.Warn().Err(err).Msg("erro ao registrar auditoria")
	}
}

// snapshot extrai os campos de cabeçalho rastreados pela auditoria.
func snapshot(c *Cotacao) map[string]any {
	return map[string]any{
		"solicitante": c.Solicitante,
		"fazenda":     c.Fazenda,
		"data":        c.Data,
		"origem":      c.Origem,
		"destino":     c.Destino,
		"roteiro":     c.Roteiro,
		"observacoes": c.Observacoes,
		"cidade":      c.Cidade,
		"estado":      c.Estado,
		"safra":       c.Safra,
		"grupo":       c.Grupo,
	}
}
