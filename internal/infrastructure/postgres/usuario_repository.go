package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/projeto2025/vendas-api/internal/domain"
	"github.com/projeto2025/vendas-api/internal/domain/entity"
	"github.com/projeto2025/vendas-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioColumns = `id, nome, email, user_name, senha_hash, role, ativo,
	data_criacao, ultimo_login, refresh_token, refresh_token_expiry`

// UsuarioRepo implementação da porta UsuarioRepository sobre PostgreSQL.
// Exclusão é lógica; as buscas por credencial só enxergam usuários ativos.
type UsuarioRepo struct {
	q Querier
}

func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Add persiste um novo usuário e preenche o ID gerado. Violação de unicidade
// de user_name ou email vira ErrDuplicate.
func (r *UsuarioRepo) Add(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (nome, email, user_name, senha_hash, role, ativo,
			data_criacao, ultimo_login, refresh_token, refresh_token_expiry)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		u.Nome, u.Email, u.UserName, u.SenhaHash, u.Role, u.Ativo,
		u.DataCriacao, u.UltimoLogin, u.RefreshToken, u.RefreshTokenExpiry,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// Get obtém o usuário por ID, ativo ou não; (nil, nil) quando não existe.
func (r *UsuarioRepo) Get(id int64) (*entity.Usuario, error) {
	return r.queryOne(`SELECT `+usuarioColumns+` FROM usuarios WHERE id = $1`, id)
}

// GetAll lista todos os usuários, inclusive inativos, ordenados por nome.
func (r *UsuarioRepo) GetAll() ([]*entity.Usuario, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+usuarioColumns+` FROM usuarios ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		u, err := scanUsuarioRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// GetByUserName localiza o usuário ativo pelo username exato.
func (r *UsuarioRepo) GetByUserName(userName string) (*entity.Usuario, error) {
	return r.queryOne(
		`SELECT `+usuarioColumns+` FROM usuarios WHERE user_name = $1 AND ativo`, userName)
}

// GetByEmail localiza o usuário ativo pelo email, sem distinção de caixa.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return r.queryOne(
		`SELECT `+usuarioColumns+` FROM usuarios WHERE LOWER(email) = LOWER($1) AND ativo`, email)
}

// GetByRefreshToken localiza o usuário ativo dono do refresh token vigente.
// Token expirado ou de usuário inativo não é encontrado.
func (r *UsuarioRepo) GetByRefreshToken(refreshToken string) (*entity.Usuario, error) {
	return r.queryOne(
		`SELECT `+usuarioColumns+` FROM usuarios
		 WHERE refresh_token = $1 AND refresh_token_expiry > NOW() AND ativo`, refreshToken)
}

// Update regrava todos os campos mutáveis do usuário, sessão de refresh
// incluída.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET nome = $2, email = $3, user_name = $4, senha_hash = $5,
			role = $6, ativo = $7, ultimo_login = $8, refresh_token = $9,
			refresh_token_expiry = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nome, u.Email, u.UserName, u.SenhaHash, u.Role, u.Ativo,
		u.UltimoLogin, u.RefreshToken, u.RefreshTokenExpiry,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// Remove desativa o usuário e derruba a sessão de refresh. A linha permanece.
func (r *UsuarioRepo) Remove(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET ativo = FALSE, refresh_token = NULL, refresh_token_expiry = NULL
		 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("desativar usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) queryOne(query string, args ...any) (*entity.Usuario, error) {
	row := r.q.QueryRow(context.Background(), query, args...)
	u, err := scanUsuarioRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUsuarioRow(row rowScanner) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Nome, &u.Email, &u.UserName, &u.SenhaHash, &u.Role,
		&u.Ativo, &u.DataCriacao, &u.UltimoLogin, &u.RefreshToken, &u.RefreshTokenExpiry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan usuario: %w", err)
	}
	return &u, nil
}
