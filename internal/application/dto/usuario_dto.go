package dto

import "time"

// UsuarioDto projeção reduzida de Usuario devolvida pela API (sem hash de
// senha nem refresh token).
type UsuarioDto struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
	Role     string `json:"role"`
	Ativo    bool   `json:"ativo"`
}

// CreateUsuarioRequest entrada para criar usuário (senha em claro; o serviço
// gera o hash).
type CreateUsuarioRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
	Senha    string `json:"senha"`
	Role     string `json:"role"`
}

// UpdateUsuarioRequest entrada para atualizar usuário. Role e Ativo só são
// aplicados quando o chamador é Admin.
type UpdateUsuarioRequest struct {
	Nome     string  `json:"nome"`
	Email    string  `json:"email"`
	UserName string  `json:"userName"`
	Role     *string `json:"role"`
	Ativo    *bool   `json:"ativo"`
}

// ChangePasswordRequest troca de senha do próprio usuário.
type ChangePasswordRequest struct {
	SenhaAtual         string `json:"senhaAtual"`
	NovaSenha          string `json:"novaSenha"`
	ConfirmarNovaSenha string `json:"confirmarNovaSenha"`
}

// ResetPasswordRequest redefinição de senha por um Admin, sem exigir a senha
// atual.
type ResetPasswordRequest struct {
	NovaSenha string `json:"novaSenha"`
}

// CreateAdminRequest bootstrap do primeiro administrador.
type CreateAdminRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
	Senha    string `json:"senha"`
}

// UsuarioStatsDto contagens de usuários para o painel administrativo.
type UsuarioStatsDto struct {
	Total   int            `json:"total"`
	Ativos  int            `json:"ativos"`
	PorRole map[string]int `json:"porRole"`
}

// LoginRequest credenciais de acesso.
type LoginRequest struct {
	UserName string `json:"userName"`
	Senha    string `json:"senha"`
}

// RefreshTokenRequest corpo de refresh-token e revoke-token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// LoginResponse saída de login e refresh: par de tokens mais metadados do
// access token e a projeção do usuário.
type LoginResponse struct {
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	TokenType    string     `json:"tokenType"` // sempre "Bearer"
	ExpiresIn    int        `json:"expiresIn"` // segundos
	ExpiresAt    time.Time  `json:"expiresAt"`
	Usuario      UsuarioDto `json:"usuario"`
}
