package usuario

// LoginRequest é usado em POST /login
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// CreateUsuarioRequest é usado em POST /usuarios
type CreateUsuarioRequest struct {
	Nome           string `json:"nome" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Senha          string `json:"senha" validate:"required,min=6"`
	ConfirmarSenha string `json:"confirmarSenha" validate:"required"`
	IsAdmin        bool   `json:"isAdmin"`
}

// UpdateUsuarioRequest é usado em PUT /usuarios/{id}.
// Campos como ponteiro permitem omitir no JSON o que não muda.
type UpdateUsuarioRequest struct {
	Nome  *string `json:"nome,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}
