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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const clienteColumns = `id, nome, email, telefone, cpf, data_nascimento,
	endereco, cidade, estado, cep, ativo, data_cadastro`

// ClienteRepo implementação da porta ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Add persiste um novo cliente e preenche o ID gerado. Violação de CPF único
// vira ErrDuplicate.
func (r *ClienteRepo) Add(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (nome, email, telefone, cpf, data_nascimento,
			endereco, cidade, estado, cep, ativo, data_cadastro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.Nome, c.Email, c.Telefone, c.Cpf, c.DataNascimento,
		c.Endereco, c.Cidade, c.Estado, c.Cep, c.Ativo, c.DataCadastro,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// Get obtém um cliente por ID; (nil, nil) quando não existe.
func (r *ClienteRepo) Get(id int64) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE id = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nome, &c.Email, &c.Telefone, &c.Cpf, &c.DataNascimento,
		&c.Endereco, &c.Cidade, &c.Estado, &c.Cep, &c.Ativo, &c.DataCadastro,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// GetAll lista todos os clientes ordenados por nome.
func (r *ClienteRepo) GetAll() ([]*entity.Cliente, error) {
	return r.queryList(`SELECT `+clienteColumns+` FROM clientes ORDER BY nome`, nil)
}

// GetByNome lista clientes cujo nome contém o termo.
func (r *ClienteRepo) GetByNome(nome string) ([]*entity.Cliente, error) {
	return r.queryList(
		`SELECT `+clienteColumns+` FROM clientes WHERE nome ILIKE '%' || $1 || '%' ORDER BY nome`,
		[]any{nome},
	)
}

// GetByEmail lista clientes com o email exato (sem distinção de caixa).
func (r *ClienteRepo) GetByEmail(email string) ([]*entity.Cliente, error) {
	return r.queryList(
		`SELECT `+clienteColumns+` FROM clientes WHERE LOWER(email) = LOWER($1) ORDER BY nome`,
		[]any{email},
	)
}

// Update atualiza um cliente existente.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE clientes SET nome = $2, email = $3, telefone = $4, cpf = $5,
			data_nascimento = $6, endereco = $7, cidade = $8, estado = $9,
			cep = $10, ativo = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nome, c.Email, c.Telefone, c.Cpf, c.DataNascimento,
		c.Endereco, c.Cidade, c.Estado, c.Cep, c.Ativo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Remove exclui o cliente por ID.
func (r *ClienteRepo) Remove(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) queryList(query string, args []any) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nome, &c.Email, &c.Telefone, &c.Cpf, &c.DataNascimento,
			&c.Endereco, &c.Cidade, &c.Estado, &c.Cep, &c.Ativo, &c.DataCadastro); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
