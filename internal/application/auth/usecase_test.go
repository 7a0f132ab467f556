package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projeto2025/vendas-api/internal/application/auth"
	"github.com/projeto2025/vendas-api/internal/application/dto"
	"github.com/projeto2025/vendas-api/internal/domain"
	"github.com/projeto2025/vendas-api/internal/domain/entity"
	"github.com/projeto2025/vendas-api/pkg/jwt"
)

var testJWT = jwt.Config{
	Secret:   "segredo-de-teste",
	Issuer:   "vendas-api-test",
	Audience: "vendas-api-test",
}

// fakeUsuarioRepo repositório em memória com a mesma semântica do adaptador
// PostgreSQL: buscas por credencial só enxergam ativos e o refresh token só é
// encontrado enquanto não expirar.
type fakeUsuarioRepo struct {
	usuarios map[int64]*entity.Usuario
	nextID   int64
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[int64]*entity.Usuario), nextID: 1}
}

func (f *fakeUsuarioRepo) Add(u *entity.Usuario) error {
	for _, existing := range f.usuarios {
		if existing.UserName == u.UserName || existing.Email == u.Email {
			return domain.ErrDuplicate
		}
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
	if _, ok := f.usuarios[u.ID]; !ok {
		return nil
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

func (f *fakeUsuarioRepo) GetByRefreshToken(refreshToken string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.RefreshToken != nil && *u.RefreshToken == refreshToken &&
			u.RefreshTokenExpiry != nil && u.RefreshTokenExpiry.After(time.Now()) && u.Ativo {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// seedUsuario cria um usuário ativo com a senha dada.
func seedUsuario(t *testing.T, repo *fakeUsuarioRepo, userName, senha string) *entity.Usuario {
	t.Helper()
	hash, err := auth.HashPassword(senha)
	require.NoError(t, err)
	u := &entity.Usuario{
		Nome:        "Ana Souza",
		Email:       userName + "@loja.com",
		UserName:    userName,
		SenhaHash:   hash,
		Role:        entity.RoleVendedor,
		Ativo:       true,
		DataCriacao: time.Now(),
	}
	require.NoError(t, repo.Add(u))
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Hash e verificação
// ──────────────────────────────────────────────────────────────────────────────

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("senha-secreta")
	require.NoError(t, err)
	assert.NotEqual(t, "senha-secreta", hash)

	assert.True(t, auth.VerifyPassword(hash, "senha-secreta"))
	assert.False(t, auth.VerifyPassword(hash, "senha-errada"))
}

func TestHashPassword_SaltAleatorio(t *testing.T) {
	h1, err := auth.HashPassword("mesma-senha")
	require.NoError(t, err)
	h2, err := auth.HashPassword("mesma-senha")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2, "o salt deve variar por chamada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Sucesso(t *testing.T) {
	repo := newFakeUsuarioRepo()
	seedUsuario(t, repo, "ana", "senha123")
	uc := auth.NewAuthUseCase(repo, testJWT)

	resp, err := uc.Login(dto.LoginRequest{UserName: "ana", Senha: "senha123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 7200, resp.ExpiresIn, "access token vive 120 minutos")
	assert.Equal(t, "ana", resp.Usuario.UserName)

	// Access token deve carregar os claims do usuário.
	claims, err := jwt.Parse(testJWT, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.UserName)
	assert.Equal(t, entity.RoleVendedor, claims.Role)

	// Sessão persistida: último login e refresh token com validade de 7 dias.
	persisted, err := repo.Get(resp.Usuario.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted.UltimoLogin)
	require.NotNil(t, persisted.RefreshToken)
	assert.Equal(t, resp.RefreshToken, *persisted.RefreshToken)
	require.NotNil(t, persisted.RefreshTokenExpiry)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), *persisted.RefreshTokenExpiry, time.Minute)
}

func TestLogin_CredenciaisInvalidas(t *testing.T) {
	repo := newFakeUsuarioRepo()
	seedUsuario(t, repo, "ana", "senha123")
	uc := auth.NewAuthUseCase(repo, testJWT)

	// Usuário desconhecido e senha errada produzem o MESMO erro genérico.
	_, err := uc.Login(dto.LoginRequest{UserName: "ninguem", Senha: "qualquer"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(dto.LoginRequest{UserName: "ana", Senha: "senha-errada"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UsuarioInativo(t *testing.T) {
	repo := newFakeUsuarioRepo()
	u := seedUsuario(t, repo, "ana", "senha123")
	require.NoError(t, repo.Remove(u.ID))
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(dto.LoginRequest{UserName: "ana", Senha: "senha123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"usuário desativado não pode logar, com o mesmo erro genérico")
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh e revogação
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_RotacionaTokens(t *testing.T) {
	repo := newFakeUsuarioRepo()
	seedUsuario(t, repo, "ana", "senha123")
	uc := auth.NewAuthUseCase(repo, testJWT)

	login, err := uc.Login(dto.LoginRequest{UserName: "ana", Senha: "senha123"})
	require.NoError(t, err)

	refreshed, err := uc.Refresh(dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken,
		"o refresh deve emitir um token novo")

	// O token antigo foi rotacionado e não vale mais.
	_, err = uc.Refresh(dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// O novo continua válido.
	_, err = uc.Refresh(dto.RefreshTokenRequest{RefreshToken: refreshed.RefreshToken})
	assert.NoError(t, err)
}

func TestRefresh_TokenExpirado(t *testing.T) {
	repo := newFakeUsuarioRepo()
	u := seedUsuario(t, repo, "ana", "senha123")
	uc := auth.NewAuthUseCase(repo, testJWT)

	// Sessão com expiração no passado, gravada direto no repositório.
	expirado := "token-expirado"
	passado := time.Now().Add(-time.Hour)
	u.RefreshToken = &expirado
	u.RefreshTokenExpiry = &passado
	require.NoError(t, repo.Update(u))

	_, err := uc.Refresh(dto.RefreshTokenRequest{RefreshToken: expirado})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRevoke(t *testing.T) {
	repo := newFakeUsuarioRepo()
	seedUsuario(t, repo, "ana", "senha123")
	uc := auth.NewAuthUseCase(repo, testJWT)

	login, err := uc.Login(dto.LoginRequest{UserName: "ana", Senha: "senha123"})
	require.NoError(t, err)

	ok, err := uc.Revoke(login.RefreshToken)
	require.NoError(t, err)
	assert.True(t, ok)

	// Depois de revogado o token não serve para refresh nem para nova revogação.
	_, err = uc.Refresh(dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	ok, err = uc.Revoke(login.RefreshToken)
	require.NoError(t, err)
	assert.False(t, ok, "revogar token desconhecido devolve false")
}

// ──────────────────────────────────────────────────────────────────────────────
// Troca de senha
// ──────────────────────────────────────────────────────────────────────────────

func TestChangePassword(t *testing.T) {
	repo := newFakeUsuarioRepo()
	u := seedUsuario(t, repo, "ana", "senha123")
	uc := auth.NewAuthUseCase(repo, testJWT)

	// Senha atual errada.
	err := uc.ChangePassword(u.ID, dto.ChangePasswordRequest{
		SenhaAtual: "errada", NovaSenha: "nova123", ConfirmarNovaSenha: "nova123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Confirmação divergente.
	err = uc.ChangePassword(u.ID, dto.ChangePasswordRequest{
		SenhaAtual: "senha123", NovaSenha: "nova123", ConfirmarNovaSenha: "outra",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Troca válida: a senha antiga deixa de valer.
	err = uc.ChangePassword(u.ID, dto.ChangePasswordRequest{
		SenhaAtual: "senha123", NovaSenha: "nova123", ConfirmarNovaSenha: "nova123",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{UserName: "ana", Senha: "senha123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = uc.Login(dto.LoginRequest{UserName: "ana", Senha: "nova123"})
	assert.NoError(t, err)
}
