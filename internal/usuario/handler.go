package usuario

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/AgroFrete/api-cotacoes/internal/auth"
	"github.com/AgroFrete/api-cotacoes/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository

	validate *validator.Validate
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		validate:   validator.New(),
	}
}

// Login trata POST /login. Valida email/senha e emite o access token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "email e senha são obrigatórios", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarSenha(user.Senha, req.Senha) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	access, err := auth.GenerateAccessToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"access_token": access,
		"token_type":   "Bearer",
		"expires_in":   int(auth.AccessTTL.Seconds()),
	})
}

// Criar trata POST /usuarios
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CreateUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "nome, email e senha (mínimo 6 caracteres) são obrigatórios", http.StatusBadRequest)
		return
	}
	if req.Senha != req.ConfirmarSenha {
		http.Error(w, "senha e confirmação não conferem", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := Usuario{
		Nome:    req.Nome,
		Email:   req.Email,
		Senha:   hash,
		IsAdmin: req.IsAdmin,
	}

	if err := h.Repository.Salvar(h.DB, &u); err != nil {
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(u)
}

// Listar trata GET /usuarios (somente admin).
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)
	if !isAdmin {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	list, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar usuários", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Me trata GET /usuarios/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.CtxUserID).(uint)

	u, err := h.Repository.BuscarPorID(h.DB, userID)
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(u)
}

// Atualizar trata PUT /usuarios/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)
	userID, _ := r.Context().Value(auth.CtxUserID).(uint)
	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var req UpdateUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "email inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Atualizar(h.DB, uint(id), &req); err != nil {
		http.Error(w, "erro ao atualizar usuário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("usuário atualizado com sucesso"))
}

// ResetarSenha trata POST /usuarios/{id}/reset-senha (somente admin).
// Gera uma senha temporária, grava o hash e devolve a senha em claro uma
// única vez para ser repassada ao usuário.
func (h *Handler) ResetarSenha(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)
	if !isAdmin {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	senha, err := utils.GerarSenhaTemporaria()
	if err != nil {
		http.Error(w, "erro ao gerar senha", http.StatusInternalServerError)
		return
	}
	hash, err := utils.HashSenha(senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	if err := h.Repository.AtualizarSenha(h.DB, uint(id), hash); err != nil {
		http.Error(w, "erro ao atualizar senha", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"senhaTemporaria": senha})
}

// Deletar trata DELETE /usuarios/{id} (somente admin).
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)
	if !isAdmin {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir usuário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
