package repository

import (
	"time"

	"github.com/projeto2025/vendas-api/internal/domain/entity"
)

// VendaRepository define a porta de persistência para Venda (DIP).
// Remove exclui a venda; os itens caem em cascata na camada de armazenamento.
type VendaRepository interface {
	Add(venda *entity.Venda) error
	Get(id int64) (*entity.Venda, error)
	// GetComItens carrega a venda e seus itens em uma só chamada.
	GetComItens(id int64) (*entity.Venda, []*entity.ItemVenda, error)
	GetAll() ([]*entity.Venda, error)
	GetByCliente(idCliente int64) ([]*entity.Venda, error)
	GetByPeriodo(inicio, fim time.Time) ([]*entity.Venda, error)
	Update(venda *entity.Venda) error
	Remove(id int64) error
	// CountByCliente conta vendas do cliente. Usado pela trava de exclusão de
	// Cliente.
	CountByCliente(idCliente int64) (int64, error)
}

// ItemVendaRepository define a porta de persistência para ItemVenda.
// Itens são imutáveis após a criação; não há Update.
type ItemVendaRepository interface {
	Add(item *entity.ItemVenda) error
	GetByVenda(idVenda int64) ([]*entity.ItemVenda, error)
}
