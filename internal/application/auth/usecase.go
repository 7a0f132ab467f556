package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/projeto2025/vendas-api/internal/application/dto"
	"github.com/projeto2025/vendas-api/internal/domain"
	"github.com/projeto2025/vendas-api/internal/domain/entity"
	"github.com/projeto2025/vendas-api/internal/domain/repository"
	"github.com/projeto2025/vendas-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Política de sessão. Constantes de pacote: o tempo de vida nunca é decidido
// por chamada.
const (
	bcryptCost           = 12
	refreshTokenBytes    = 64
	refreshTokenLifetime = 7 * 24 * time.Hour
)

// AuthUseCase autenticação: login com par de tokens, rotação de refresh,
// revogação e troca de senha.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      jwt.Config
}

// NewAuthUseCase constrói o caso de uso.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg jwt.Config) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// HashPassword gera o hash bcrypt da senha com salt aleatório embutido. Duas
// chamadas com a mesma senha produzem hashes diferentes.
func HashPassword(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash de senha: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword confere a senha contra o hash armazenado.
func VerifyPassword(hash, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}

// Login autentica por username e senha. Usuário desconhecido, inativo ou senha
// errada produzem o mesmo ErrInvalidCredentials, sem distinguir qual falhou.
// Em caso de sucesso carimba o último login, emite o access token e grava um
// refresh token novo com validade de sete dias.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.UserName == "" || in.Senha == "" {
		return nil, domain.ErrInvalidCredentials
	}
	usuario, err := uc.usuarioRepo.GetByUserName(in.UserName)
	if err != nil {
		return nil, err
	}
	if usuario == nil || !VerifyPassword(usuario.SenhaHash, in.Senha) {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.emitirSessao(usuario)
}

// Refresh troca o refresh token vigente por um par novo (rotação: o token
// usado deixa de valer). Token desconhecido, expirado ou de usuário inativo
// produzem o mesmo ErrInvalidCredentials.
func (uc *AuthUseCase) Refresh(in dto.RefreshTokenRequest) (*dto.LoginResponse, error) {
	if in.RefreshToken == "" {
		return nil, domain.ErrInvalidCredentials
	}
	usuario, err := uc.usuarioRepo.GetByRefreshToken(in.RefreshToken)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.emitirSessao(usuario)
}

// Revoke derruba a sessão de refresh dona do token. Devolve false quando
// nenhum usuário ativo possui o token.
func (uc *AuthUseCase) Revoke(refreshToken string) (bool, error) {
	if refreshToken == "" {
		return false, nil
	}
	usuario, err := uc.usuarioRepo.GetByRefreshToken(refreshToken)
	if err != nil {
		return false, err
	}
	if usuario == nil {
		return false, nil
	}
	usuario.RefreshToken = nil
	usuario.RefreshTokenExpiry = nil
	if err := uc.usuarioRepo.Update(usuario); err != nil {
		return false, err
	}
	return true, nil
}

// ChangePassword troca a senha do usuário após conferir a atual.
func (uc *AuthUseCase) ChangePassword(userID int64, in dto.ChangePasswordRequest) error {
	if in.NovaSenha == "" || in.NovaSenha != in.ConfirmarNovaSenha {
		return domain.ErrInvalidInput
	}
	usuario, err := uc.usuarioRepo.Get(userID)
	if err != nil {
		return err
	}
	if usuario == nil || !usuario.Ativo {
		return domain.ErrNotFound
	}
	if !VerifyPassword(usuario.SenhaHash, in.SenhaAtual) {
		return domain.ErrInvalidCredentials
	}
	hash, err := HashPassword(in.NovaSenha)
	if err != nil {
		return err
	}
	usuario.SenhaHash = hash
	return uc.usuarioRepo.Update(usuario)
}

// emitirSessao carimba o último login, gera o par de tokens e persiste a
// sessão de refresh.
func (uc *AuthUseCase) emitirSessao(usuario *entity.Usuario) (*dto.LoginResponse, error) {
	accessToken, expiresAt, err := jwt.Generate(uc.jwtCfg,
		usuario.ID, usuario.UserName, usuario.Email, usuario.Nome, usuario.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := gerarRefreshToken()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	refreshExpiry := now.Add(refreshTokenLifetime)
	usuario.UltimoLogin = &now
	usuario.RefreshToken = &refreshToken
	usuario.RefreshTokenExpiry = &refreshExpiry
	if err := uc.usuarioRepo.Update(usuario); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(jwt.AccessTokenLifetime.Seconds()),
		ExpiresAt:    expiresAt,
		Usuario: dto.UsuarioDto{
			ID:       usuario.ID,
			Nome:     usuario.Nome,
			Email:    usuario.Email,
			UserName: usuario.UserName,
			Role:     usuario.Role,
			Ativo:    usuario.Ativo,
		},
	}, nil
}

// gerarRefreshToken produz 64 bytes aleatórios em base64. Opaco: não carrega
// claims; a validade vive na linha do usuário.
func gerarRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("gerar refresh token: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
