package cte

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/AgroFrete/api-cotacoes/internal/auth"
	"github.com/AgroFrete/api-cotacoes/internal/cotacao"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Diretorio  string
	Log        zerolog.Logger
}

func NewHandler(db *gorm.DB, diretorio string, log zerolog.Logger) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Diretorio:  diretorio,
		Log:        log,
	}
}

// Upload trata POST /cotacoes/{id}/transportadoras/{tid}/cte.
// Aceita somente PDF de até 10 MB, enviado como multipart no campo "arquivo".
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cotacaoID, err1 := strconv.Atoi(vars["id"])
	tid, err2 := strconv.Atoi(vars["tid"])
	if err1 != nil || err2 != nil {
		http.Error(w, "IDs inválidos", http.StatusBadRequest)
		return
	}

	var bid cotacao.TransportadoraCotacao
	if err := h.DB.Where("id = ? AND cotacao_id = ?", tid, cotacaoID).First(&bid).Error; err != nil {
		http.Error(w, "Transportadora não encontrada para essa cotação", http.StatusNotFound)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, TamanhoMaximo+1024)
	if err := r.ParseMultipartForm(TamanhoMaximo); err != nil {
		http.Error(w, "Arquivo excede o limite de 10 MB", http.StatusBadRequest)
		return
	}

	arquivo, header, err := r.FormFile("arquivo")
	if err != nil {
		http.Error(w, "O campo 'arquivo' é obrigatório", http.StatusBadRequest)
		return
	}
	defer arquivo.Close()

	if header.Size > TamanhoMaximo {
		http.Error(w, "Arquivo excede o limite de 10 MB", http.StatusBadRequest)
		return
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.EqualFold(contentType, "application/pdf") {
		http.Error(w, "Somente PDF é aceito", http.StatusBadRequest)
		return
	}

	if err := os.MkdirAll(h.Diretorio, 0o755); err != nil {
		http.Error(w, "Erro ao preparar diretório de uploads", http.StatusInternalServerError)
		return
	}

	nome := uuid.NewString() + ".pdf"
	caminho := filepath.Join(h.Diretorio, nome)

	destino, err := os.Create(caminho)
	if err != nil {
		http.Error(w, "Erro ao gravar arquivo", http.StatusInternalServerError)
		return
	}
	defer destino.Close()

	tamanho, err := io.Copy(destino, arquivo)
	if err != nil {
		_ = os.Remove(caminho)
		http.Error(w, "Erro ao gravar arquivo", http.StatusInternalServerError)
		return
	}

	usuarioID, _ := r.Context().Value(auth.CtxUserID).(uint)
	c := CTE{
		CotacaoID:               uint(cotacaoID),
		TransportadoraCotacaoID: uint(tid),
		NomeOriginal:            header.Filename,
		Caminho:                 caminho,
		Tamanho:                 tamanho,
		UsuarioID:               usuarioID,
	}

	if err := h.Repository.Salvar(h.DB, &c); err != nil {
		_ = os.Remove(caminho)
		h.Log.Error().Err(err).Msg("erro ao salvar CTE")
		http.Error(w, "Erro ao salvar CTE", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// Listar trata GET /cotacoes/{id}/cte
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	cotacaoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	list, err := h.Repository.ListarPorCotacao(h.DB, uint(cotacaoID))
	if err != nil {
		http.Error(w, "Erro ao listar CTEs", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Download trata GET /cte/{id} e devolve o PDF gravado.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "CTE não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+c.NomeOriginal+`"`)
	http.ServeFile(w, r, c.Caminho)
}

// Deletar trata DELETE /cte/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "CTE não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir CTE", http.StatusInternalServerError)
		return
	}
	if err := os.Remove(c.Caminho); err != nil && !os.IsNotExist(err) {
		h.Log.Warn().Err(err).Str("caminho", c.Caminho).Msg("erro ao remover arquivo de CTE")
	}

	w.WriteHeader(http.StatusNoContent)
}
