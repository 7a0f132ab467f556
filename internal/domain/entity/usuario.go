package entity

import "time"

// Roles conhecidos para Usuario. O campo é texto livre no banco; estes são os
// valores que a API usa operacionalmente.
const (
	RoleAdmin    = "Admin"
	RoleUser     = "User"
	RoleManager  = "Manager"
	RoleVendedor = "Vendedor"
)

// Usuario representa um usuário do sistema. Exclusão é lógica: Ativo=false.
// RefreshToken e RefreshTokenExpiry ficam nulos quando não há sessão de
// refresh vigente.
type Usuario struct {
	ID                 int64
	Nome               string
	Email              string
	UserName           string
	SenhaHash          string // bcrypt, nunca a senha em claro após persistir
	Role               string
	Ativo              bool
	DataCriacao        time.Time
	UltimoLogin        *time.Time
	RefreshToken       *string
	RefreshTokenExpiry *time.Time
}
