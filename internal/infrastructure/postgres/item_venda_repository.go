package postgres

import (
	"context"
	"fmt"

	"github.com/projeto2025/vendas-api/internal/domain/entity"
	"github.com/projeto2025/vendas-api/internal/domain/repository"
)

var _ repository.ItemVendaRepository = (*ItemVendaRepo)(nil)

// ItemVendaRepo implementação da porta ItemVendaRepository sobre PostgreSQL.
type ItemVendaRepo struct {
	q Querier
}

func NewItemVendaRepository(q Querier) *ItemVendaRepo {
	return &ItemVendaRepo{q: q}
}

// Add persiste uma linha da venda e preenche o ID gerado. O Subtotal já vem
// validado pela orquestração; aqui grava como veio.
func (r *ItemVendaRepo) Add(i *entity.ItemVenda) error {
	query := `
		INSERT INTO itens_venda (id_venda, id_produto, quantidade, preco_unitario, desconto, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		i.IDVenda, i.IDProduto, i.Quantidade, i.PrecoUnitario, i.Desconto, i.Subtotal,
	).Scan(&i.ID)
	if err != nil {
		return fmt.Errorf("insert item de venda: %w", err)
	}
	return nil
}

// GetByVenda lista os itens da venda na ordem de inserção.
func (r *ItemVendaRepo) GetByVenda(idVenda int64) ([]*entity.ItemVenda, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, id_venda, id_produto, quantidade, preco_unitario, desconto, subtotal
		 FROM itens_venda WHERE id_venda = $1 ORDER BY id`, idVenda)
	if err != nil {
		return nil, fmt.Errorf("list itens da venda: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemVenda
	for rows.Next() {
		var i entity.ItemVenda
		if err := rows.Scan(&i.ID, &i.IDVenda, &i.IDProduto, &i.Quantidade,
			&i.PrecoUnitario, &i.Desconto, &i.Subtotal); err != nil {
			return nil, fmt.Errorf("scan item de venda: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
