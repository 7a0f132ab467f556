package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/projeto2025/vendas-api/internal/domain/entity"
	"github.com/projeto2025/vendas-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementação da porta CategoriaRepository sobre PostgreSQL
// (usável com pool ou tx).
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Add persiste uma nova categoria e preenche o ID gerado.
func (r *CategoriaRepo) Add(c *entity.Categoria) error {
	query := `
		INSERT INTO categorias (nome, descricao, ativo, data_cadastro)
		VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.Nome, c.Descricao, c.Ativo, c.DataCadastro,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// Get obtém uma categoria por ID; (nil, nil) quando não existe.
func (r *CategoriaRepo) Get(id int64) (*entity.Categoria, error) {
	query := `
		SELECT id, nome, descricao, ativo, data_cadastro
		FROM categorias WHERE id = $1`
	var c entity.Categoria
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nome, &c.Descricao, &c.Ativo, &c.DataCadastro,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// GetAll lista as categorias ordenadas por nome.
func (r *CategoriaRepo) GetAll() ([]*entity.Categoria, error) {
	query := `
		SELECT id, nome, descricao, ativo, data_cadastro
		FROM categorias ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nome, &c.Descricao, &c.Ativo, &c.DataCadastro); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza uma categoria existente (substituição completa da linha).
func (r *CategoriaRepo) Update(c *entity.Categoria) error {
	query := `
		UPDATE categorias SET nome = $2, descricao = $3, ativo = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Nome, c.Descricao, c.Ativo)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// Remove exclui a categoria por ID.
func (r *CategoriaRepo) Remove(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}
