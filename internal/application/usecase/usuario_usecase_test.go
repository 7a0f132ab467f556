package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projeto2025/vendas-api/internal/application/auth"
	"github.com/projeto2025/vendas-api/internal/application/dto"
	"github.com/projeto2025/vendas-api/internal/application/usecase"
	"github.com/projeto2025/vendas-api/internal/domain"
	"github.com/projeto2025/vendas-api/internal/domain/entity"
)

// ── fake em memória ───────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	usuarios map[int64]*entity.Usuario
	nextID   int64
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[int64]*entity.Usuario), nextID: 1}
}

func (f *fakeUsuarioRepo) emUso(userName, email string, exceto int64) bool {
	for _, u := range f.usuarios {
		if u.ID == exceto {
			continue
		}
		if u.UserName == userName || u.Email == email {
			return true
		}
	}
	return false
}

func (f *fakeUsuarioRepo) Add(u *entity.Usuario) error {
	if f.emUso(u.UserName, u.Email, 0) {
		return domain.ErrDuplicate
	}
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.usuarios[u.ID] = &cp
	return nil
}

func (f *fakeUsuarioRepo) Get(id int64) (*entity.Usuario, error) {
	u, ok := f.usuarios[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsuarioRepo) GetAll() ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(f.usuarios))
	for _, u := range f.usuarios {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUsuarioRepo) Update(u *entity.Usuario) error {
	if f.emUso(u.UserName, u.Email, u.ID) {
		return domain.ErrDuplicate
	}
	cp := *u
	f.usuarios[u.ID] = &cp
	return nil
}

func (f *fakeUsuarioRepo) Remove(id int64) error {
	if u, ok := f.usuarios[id]; ok {
		u.Ativo = false
		u.RefreshToken = nil
		u.RefreshTokenExpiry = nil
	}
	return nil
}

func (f *fakeUsuarioRepo) GetByUserName(userName string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.UserName == userName && u.Ativo {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Email == email && u.Ativo {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) GetByRefreshToken(string) (*entity.Usuario, error) {
	return nil, nil
}

func newUseCase() (*usecase.UsuarioUseCase, *fakeUsuarioRepo) {
	repo := newFakeUsuarioRepo()
	return usecase.NewUsuarioUseCase(repo), repo
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// ── testes ────────────────────────────────────────────────────────────────────

func TestCreate_DefaultsEHash(t *testing.T) {
	uc, repo := newUseCase()

	criado, err := uc.Create(dto.CreateUsuarioRequest{
		Nome: "Maria Silva", Email: "maria@exemplo.com", UserName: "maria", Senha: "segredo1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, criado.Role, "role padrão quando não informada")
	assert.True(t, criado.Ativo)

	// Hash bcrypt persistido, nunca a senha em claro.
	salvo, _ := repo.Get(criado.ID)
	assert.NotEqual(t, "segredo1", salvo.SenhaHash)
	assert.True(t, auth.VerifyPassword(salvo.SenhaHash, "segredo1"))
}

func TestCreate_Validacao(t *testing.T) {
	uc, _ := newUseCase()
	casos := []dto.CreateUsuarioRequest{
		{Email: "a@b.com", Senha: "x"},
		{UserName: "maria", Senha: "x"},
		{UserName: "maria", Email: "a@b.com"},
	}
	for _, caso := range casos {
		_, err := uc.Create(caso)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCreate_Duplicado(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Create(dto.CreateUsuarioRequest{
		Nome: "Maria", Email: "maria@exemplo.com", UserName: "maria", Senha: "segredo1",
	})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateUsuarioRequest{
		Nome: "Outra", Email: "outra@exemplo.com", UserName: "maria", Senha: "segredo2",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(dto.CreateUsuarioRequest{
		Nome: "Outra", Email: "maria@exemplo.com", UserName: "outra", Senha: "segredo2",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdate_RoleEAtivoSoPorAdmin(t *testing.T) {
	uc, _ := newUseCase()
	criado, err := uc.Create(dto.CreateUsuarioRequest{
		Nome: "Maria", Email: "maria@exemplo.com", UserName: "maria", Senha: "segredo1",
	})
	require.NoError(t, err)

	// Sem isAdmin os campos Role e Ativo são ignorados.
	out, err := uc.Update(criado.ID, dto.UpdateUsuarioRequest{
		Nome: "Maria Lima", Role: strPtr(entity.RoleAdmin), Ativo: boolPtr(false),
	}, false)
	require.NoError(t, err)
	assert.Equal(t, "Maria Lima", out.Nome)
	assert.Equal(t, entity.RoleUser, out.Role)
	assert.True(t, out.Ativo)

	// Com isAdmin aplicam.
	out, err = uc.Update(criado.ID, dto.UpdateUsuarioRequest{
		Role: strPtr(entity.RoleAdmin), Ativo: boolPtr(false),
	}, true)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.False(t, out.Ativo)
}

func TestUpdate_Inexistente(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Update(9999, dto.UpdateUsuarioRequest{Nome: "X"}, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_Logico(t *testing.T) {
	uc, repo := newUseCase()
	criado, err := uc.Create(dto.CreateUsuarioRequest{
		Nome: "Maria", Email: "maria@exemplo.com", UserName: "maria", Senha: "segredo1",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(criado.ID))

	// A linha continua existindo, desativada; listagem e busca por username
	// não a enxergam mais.
	salvo, _ := repo.Get(criado.ID)
	require.NotNil(t, salvo)
	assert.False(t, salvo.Ativo)

	ativos, err := uc.GetAll()
	require.NoError(t, err)
	assert.Empty(t, ativos)

	_, err = uc.GetByUserName("maria")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Get por ID ainda devolve o usuário desativado.
	porID, err := uc.Get(criado.ID)
	require.NoError(t, err)
	assert.False(t, porID.Ativo)

	// Repetir a exclusão não é erro.
	assert.NoError(t, uc.Delete(criado.ID))
}

// Redefinição de senha por Admin: não exige a senha atual, só grava o hash da
// nova. É o caminho de desbloqueio de quem esqueceu a senha.
func TestResetPassword(t *testing.T) {
	uc, repo := newUseCase()
	criado, err := uc.Create(dto.CreateUsuarioRequest{
		Nome: "Maria", Email: "maria@exemplo.com", UserName: "maria", Senha: "segredo1",
	})
	require.NoError(t, err)

	require.NoError(t, uc.ResetPassword(criado.ID, dto.ResetPasswordRequest{NovaSenha: "nova-senha"}))

	salvo, _ := repo.Get(criado.ID)
	assert.False(t, auth.VerifyPassword(salvo.SenhaHash, "segredo1"), "senha antiga deixa de valer")
	assert.True(t, auth.VerifyPassword(salvo.SenhaHash, "nova-senha"))
	assert.NotEqual(t, "nova-senha", salvo.SenhaHash, "persistido como hash")
}

func TestResetPassword_Validacao(t *testing.T) {
	uc, _ := newUseCase()
	criado, err := uc.Create(dto.CreateUsuarioRequest{
		Nome: "Maria", Email: "maria@exemplo.com", UserName: "maria", Senha: "segredo1",
	})
	require.NoError(t, err)

	err = uc.ResetPassword(criado.ID, dto.ResetPasswordRequest{NovaSenha: "curta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.ResetPassword(9999, dto.ResetPasswordRequest{NovaSenha: "nova-senha"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateAdmin(t *testing.T) {
	uc, _ := newUseCase()
	criado, err := uc.CreateAdmin(dto.CreateAdminRequest{
		Nome: "Root", Email: "root@exemplo.com", UserName: "root", Senha: "segredo1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, criado.Role)

	_, err = uc.CreateAdmin(dto.CreateAdminRequest{
		Nome: "Root2", Email: "root2@exemplo.com", UserName: "root", Senha: "segredo1",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestStats(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.CreateAdmin(dto.CreateAdminRequest{
		Nome: "Root", Email: "root@exemplo.com", UserName: "root", Senha: "segredo1",
	})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateUsuarioRequest{
		Nome: "Maria", Email: "maria@exemplo.com", UserName: "maria", Senha: "segredo1",
	})
	require.NoError(t, err)
	vendedor, err := uc.Create(dto.CreateUsuarioRequest{
		Nome: "João", Email: "joao@exemplo.com", UserName: "joao", Senha: "segredo1",
		Role: entity.RoleVendedor,
	})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(vendedor.ID))

	stats, err := uc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Ativos)
	assert.Equal(t, 1, stats.PorRole[entity.RoleAdmin])
	assert.Equal(t, 1, stats.PorRole[entity.RoleUser])
	assert.Equal(t, 1, stats.PorRole[entity.RoleVendedor], "desativado ainda conta por role")
}
