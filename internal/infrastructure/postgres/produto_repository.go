package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/projeto2025/vendas-api/internal/domain/entity"
	"github.com/projeto2025/vendas-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

const produtoColumns = `id, nome, descricao, marca, modelo, preco, quantidade_estoque,
	especificacoes, imagem_url, ativo, data_cadastro, id_categoria`

// ProdutoRepo implementação da porta ProdutoRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Add persiste um novo produto e preenche o ID gerado.
func (r *ProdutoRepo) Add(p *entity.Produto) error {
	query := `
		INSERT INTO produtos (nome, descricao, marca, modelo, preco, quantidade_estoque,
			especificacoes, imagem_url, ativo, data_cadastro, id_categoria)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Nome, p.Descricao, p.Marca, p.Modelo, p.Preco, p.QuantidadeEstoque,
		p.Especificacoes, p.ImagemURL, p.Ativo, p.DataCadastro, p.IDCategoria,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// Get obtém um produto por ID; (nil, nil) quando não existe.
func (r *ProdutoRepo) Get(id int64) (*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produtos WHERE id = $1`
	var p entity.Produto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nome, &p.Descricao, &p.Marca, &p.Modelo, &p.Preco, &p.QuantidadeEstoque,
		&p.Especificacoes, &p.ImagemURL, &p.Ativo, &p.DataCadastro, &p.IDCategoria,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// GetAll lista todos os produtos ordenados por nome.
func (r *ProdutoRepo) GetAll() ([]*entity.Produto, error) {
	return r.queryList(`SELECT `+produtoColumns+` FROM produtos ORDER BY nome`, nil)
}

// GetByCategoria lista produtos ativos da categoria, ordenados por nome.
func (r *ProdutoRepo) GetByCategoria(idCategoria int64) ([]*entity.Produto, error) {
	return r.queryList(
		`SELECT `+produtoColumns+` FROM produtos WHERE id_categoria = $1 AND ativo ORDER BY nome`,
		[]any{idCategoria},
	)
}

// GetByMarca lista produtos ativos cuja marca contém o termo.
func (r *ProdutoRepo) GetByMarca(marca string) ([]*entity.Produto, error) {
	return r.queryList(
		`SELECT `+produtoColumns+` FROM produtos WHERE marca ILIKE '%' || $1 || '%' AND ativo ORDER BY nome`,
		[]any{marca},
	)
}

// GetEmEstoque lista produtos ativos com estoque positivo.
func (r *ProdutoRepo) GetEmEstoque() ([]*entity.Produto, error) {
	return r.queryList(
		`SELECT `+produtoColumns+` FROM produtos WHERE quantidade_estoque > 0 AND ativo ORDER BY nome`,
		nil,
	)
}

// Buscar procura o termo em nome, descrição, marca e modelo.
func (r *ProdutoRepo) Buscar(termo string) ([]*entity.Produto, error) {
	return r.queryList(
		`SELECT `+produtoColumns+` FROM produtos
		 WHERE nome ILIKE '%' || $1 || '%' OR descricao ILIKE '%' || $1 || '%'
		    OR marca ILIKE '%' || $1 || '%' OR modelo ILIKE '%' || $1 || '%'
		 ORDER BY nome`,
		[]any{termo},
	)
}

// CountByCategoria conta produtos da categoria, ativos ou não.
func (r *ProdutoRepo) CountByCategoria(idCategoria int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM produtos WHERE id_categoria = $1`, idCategoria,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count produtos por categoria: %w", err)
	}
	return n, nil
}

// Update atualiza um produto existente (substituição completa da linha).
func (r *ProdutoRepo) Update(p *entity.Produto) error {
	query := `
		UPDATE produtos SET nome = $2, descricao = $3, marca = $4, modelo = $5, preco = $6,
			quantidade_estoque = $7, especificacoes = $8, imagem_url = $9, ativo = $10,
			id_categoria = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nome, p.Descricao, p.Marca, p.Modelo, p.Preco,
		p.QuantidadeEstoque, p.Especificacoes, p.ImagemURL, p.Ativo, p.IDCategoria,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// AjustarEstoque soma delta ao estoque em um único UPDATE condicional: a
// escrita só acontece se o resultado for >= 0, o que fecha a corrida entre
// débitos concorrentes no mesmo produto. RowsAffected zero significa estoque
// insuficiente ou produto inexistente; em ambos devolve false sem erro.
func (r *ProdutoRepo) AjustarEstoque(id int64, delta int) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET quantidade_estoque = quantidade_estoque + $2
		 WHERE id = $1 AND quantidade_estoque + $2 >= 0`,
		id, delta,
	)
	if err != nil {
		return false, fmt.Errorf("ajustar estoque: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Remove exclui o produto por ID.
func (r *ProdutoRepo) Remove(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}

func (r *ProdutoRepo) queryList(query string, args []any) ([]*entity.Produto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(&p.ID, &p.Nome, &p.Descricao, &p.Marca, &p.Modelo, &p.Preco,
			&p.QuantidadeEstoque, &p.Especificacoes, &p.ImagemURL, &p.Ativo, &p.DataCadastro,
			&p.IDCategoria); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
