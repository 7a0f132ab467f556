package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/projeto2025/vendas-api/internal/domain/entity"
	"github.com/projeto2025/vendas-api/internal/domain/repository"
)

var _ repository.VendaRepository = (*VendaRepo)(nil)

const vendaColumns = `id, id_cliente, data_venda, valor_total, desconto, status,
	forma_pagamento, observacoes`

// VendaRepo implementação da porta VendaRepository sobre PostgreSQL.
type VendaRepo struct {
	q Querier
}

func NewVendaRepository(q Querier) *VendaRepo {
	return &VendaRepo{q: q}
}

// Add persiste a cabeça da venda e preenche o ID gerado.
func (r *VendaRepo) Add(v *entity.Venda) error {
	query := `
		INSERT INTO vendas (id_cliente, data_venda, valor_total, desconto, status,
			forma_pagamento, observacoes)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		v.IDCliente, v.DataVenda, v.ValorTotal, v.Desconto, v.Status,
		v.FormaPagamento, v.Observacoes,
	).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("insert venda: %w", err)
	}
	return nil
}

// Get obtém a venda por ID; (nil, nil) quando não existe.
func (r *VendaRepo) Get(id int64) (*entity.Venda, error) {
	query := `SELECT ` + vendaColumns + ` FROM vendas WHERE id = $1`
	var v entity.Venda
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.IDCliente, &v.DataVenda, &v.ValorTotal, &v.Desconto, &v.Status,
		&v.FormaPagamento, &v.Observacoes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}
	return &v, nil
}

// GetComItens carrega a venda e seus itens. Venda inexistente devolve
// (nil, nil, nil).
func (r *VendaRepo) GetComItens(id int64) (*entity.Venda, []*entity.ItemVenda, error) {
	v, err := r.Get(id)
	if err != nil || v == nil {
		return nil, nil, err
	}
	itens, err := NewItemVendaRepository(r.q).GetByVenda(id)
	if err != nil {
		return nil, nil, err
	}
	return v, itens, nil
}

// GetAll lista todas as vendas, mais recentes primeiro.
func (r *VendaRepo) GetAll() ([]*entity.Venda, error) {
	return r.queryList(`SELECT `+vendaColumns+` FROM vendas ORDER BY data_venda DESC`, nil)
}

// GetByCliente lista as vendas do cliente, mais recentes primeiro.
func (r *VendaRepo) GetByCliente(idCliente int64) ([]*entity.Venda, error) {
	return r.queryList(
		`SELECT `+vendaColumns+` FROM vendas WHERE id_cliente = $1 ORDER BY data_venda DESC`,
		[]any{idCliente},
	)
}

// GetByPeriodo lista vendas com data_venda dentro do intervalo fechado.
func (r *VendaRepo) GetByPeriodo(inicio, fim time.Time) ([]*entity.Venda, error) {
	return r.queryList(
		`SELECT `+vendaColumns+` FROM vendas WHERE data_venda BETWEEN $1 AND $2 ORDER BY data_venda DESC`,
		[]any{inicio, fim},
	)
}

// CountByCliente conta vendas do cliente.
func (r *VendaRepo) CountByCliente(idCliente int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM vendas WHERE id_cliente = $1`, idCliente,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count vendas por cliente: %w", err)
	}
	return n, nil
}

// Update atualiza a cabeça da venda. Itens não são tocados.
func (r *VendaRepo) Update(v *entity.Venda) error {
	query := `
		UPDATE vendas SET id_cliente = $2, data_venda = $3, valor_total = $4,
			desconto = $5, status = $6, forma_pagamento = $7, observacoes = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.IDCliente, v.DataVenda, v.ValorTotal, v.Desconto, v.Status,
		v.FormaPagamento, v.Observacoes,
	)
	if err != nil {
		return fmt.Errorf("update venda: %w", err)
	}
	return nil
}

// Remove exclui a venda; os itens caem pela FK ON DELETE CASCADE.
func (r *VendaRepo) Remove(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM vendas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venda: %w", err)
	}
	return nil
}

func (r *VendaRepo) queryList(query string, args []any) ([]*entity.Venda, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venda
	for rows.Next() {
		var v entity.Venda
		if err := rows.Scan(&v.ID, &v.IDCliente, &v.DataVenda, &v.ValorTotal, &v.Desconto,
			&v.Status, &v.FormaPagamento, &v.Observacoes); err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
