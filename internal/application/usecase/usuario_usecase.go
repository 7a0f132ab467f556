package usecase

import (
	"strings"
	"time"

	"github.com/projeto2025/vendas-api/internal/application/auth"
	"github.com/projeto2025/vendas-api/internal/application/dto"
	"github.com/projeto2025/vendas-api/internal/domain"
	"github.com/projeto2025/vendas-api/internal/domain/entity"
	"github.com/projeto2025/vendas-api/internal/domain/repository"
)

// UsuarioUseCase administração de usuários. Unicidade de username e email é
// global, entre ativos e inativos, garantida pelas constraints do banco.
// Exclusão é lógica.
type UsuarioUseCase struct {
	usuarioRepo repository.UsuarioRepository
}

// NewUsuarioUseCase constrói o caso de uso.
func NewUsuarioUseCase(usuarioRepo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{usuarioRepo: usuarioRepo}
}

// GetAll lista os usuários ativos.
func (uc *UsuarioUseCase) GetAll() ([]*dto.UsuarioDto, error) {
	usuarios, err := uc.usuarioRepo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioDto, 0, len(usuarios))
	for _, u := range usuarios {
		if !u.Ativo {
			continue
		}
		out = append(out, toUsuarioDto(u))
	}
	return out, nil
}

// Get obtém usuário por ID, ativo ou não; ErrNotFound quando não existe.
func (uc *UsuarioUseCase) Get(id int64) (*dto.UsuarioDto, error) {
	usuario, err := uc.usuarioRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNotFound
	}
	return toUsuarioDto(usuario), nil
}

// GetByUserName obtém o usuário ativo pelo username exato.
func (uc *UsuarioUseCase) GetByUserName(userName string) (*dto.UsuarioDto, error) {
	usuario, err := uc.usuarioRepo.GetByUserName(userName)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNotFound
	}
	return toUsuarioDto(usuario), nil
}

// Create cria um usuário com a senha em claro do request hasheada. Username
// ou email já tomados viram ErrDuplicate.
func (uc *UsuarioUseCase) Create(in dto.CreateUsuarioRequest) (*dto.UsuarioDto, error) {
	if strings.TrimSpace(in.UserName) == "" || strings.TrimSpace(in.Email) == "" || in.Senha == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	hash, err := auth.HashPassword(in.Senha)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		Nome:        in.Nome,
		Email:       in.Email,
		UserName:    in.UserName,
		SenhaHash:   hash,
		Role:        role,
		Ativo:       true,
		DataCriacao: time.Now(),
	}
	if err := uc.usuarioRepo.Add(usuario); err != nil {
		return nil, err
	}
	return toUsuarioDto(usuario), nil
}

// Update altera dados do usuário. Role e Ativo só são aplicados quando
// isAdmin; sem ele os campos vêm ignorados. Username e email trocados passam
// de novo pelas constraints de unicidade.
func (uc *UsuarioUseCase) Update(id int64, in dto.UpdateUsuarioRequest, isAdmin bool) (*dto.UsuarioDto, error) {
	usuario, err := uc.usuarioRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nome != "" {
		usuario.Nome = in.Nome
	}
	if in.Email != "" {
		usuario.Email = in.Email
	}
	if in.UserName != "" {
		usuario.UserName = in.UserName
	}
	if isAdmin {
		if in.Role != nil {
			usuario.Role = *in.Role
		}
		if in.Ativo != nil {
			usuario.Ativo = *in.Ativo
		}
	}
	if err := uc.usuarioRepo.Update(usuario); err != nil {
		return nil, err
	}
	return toUsuarioDto(usuario), nil
}

// Delete desativa o usuário. Usuário inexistente não é erro.
func (uc *UsuarioUseCase) Delete(id int64) error {
	return uc.usuarioRepo.Remove(id)
}

// ResetPassword redefine a senha do usuário sem exigir a atual. Uso restrito a
// Admin; o desbloqueio de quem perdeu a senha passa por aqui.
func (uc *UsuarioUseCase) ResetPassword(id int64, in dto.ResetPasswordRequest) error {
	if len(in.NovaSenha) < 6 {
		return domain.ErrInvalidInput
	}
	usuario, err := uc.usuarioRepo.Get(id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrNotFound
	}
	hash, err := auth.HashPassword(in.NovaSenha)
	if err != nil {
		return err
	}
	usuario.SenhaHash = hash
	return uc.usuarioRepo.Update(usuario)
}

// CreateAdmin bootstrap do primeiro administrador, sem autenticação. Username
// já tomado vira ErrDuplicate (propagado da constraint).
func (uc *UsuarioUseCase) CreateAdmin(in dto.CreateAdminRequest) (*dto.UsuarioDto, error) {
	return uc.Create(dto.CreateUsuarioRequest{
		Nome:     in.Nome,
		Email:    in.Email,
		UserName: in.UserName,
		Senha:    in.Senha,
		Role:     entity.RoleAdmin,
	})
}

// Stats contagens de usuários: total, ativos e por role.
func (uc *UsuarioUseCase) Stats() (*dto.UsuarioStatsDto, error) {
	usuarios, err := uc.usuarioRepo.GetAll()
	if err != nil {
		return nil, err
	}
	stats := &dto.UsuarioStatsDto{PorRole: make(map[string]int)}
	for _, u := range usuarios {
		stats.Total++
		if u.Ativo {
			stats.Ativos++
		}
		stats.PorRole[u.Role]++
	}
	return stats, nil
}

func toUsuarioDto(u *entity.Usuario) *dto.UsuarioDto {
	return &dto.UsuarioDto{
		ID:       u.ID,
		Nome:     u.Nome,
		Email:    u.Email,
		UserName: u.UserName,
		Role:     u.Role,
		Ativo:    u.Ativo,
	}
}
