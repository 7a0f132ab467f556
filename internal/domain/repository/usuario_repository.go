package repository

import "github.com/projeto2025/vendas-api/internal/domain/entity"

// UsuarioRepository define a porta de persistência para Usuario (DIP).
// Remove é exclusão lógica (Ativo=false). GetByUserName, GetByEmail e
// GetByRefreshToken só enxergam usuários ativos; a unicidade de username e
// email entre todos os usuários (ativos ou não) fica por conta das
// constraints do banco, mapeadas para ErrDuplicate no Add/Update.
type UsuarioRepository interface {
	Add(usuario *entity.Usuario) error
	Get(id int64) (*entity.Usuario, error)
	GetAll() ([]*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	Remove(id int64) error
	GetByUserName(userName string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	// GetByRefreshToken localiza o usuário ativo dono do refresh token ainda
	// não expirado; (nil, nil) quando nenhum satisfaz.
	GetByRefreshToken(refreshToken string) (*entity.Usuario, error)
}
