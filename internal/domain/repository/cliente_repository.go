package repository

import "github.com/projeto2025/vendas-api/internal/domain/entity"

// ClienteRepository define a porta de persistência para Cliente (DIP).
type ClienteRepository interface {
	Add(cliente *entity.Cliente) error
	Get(id int64) (*entity.Cliente, error)
	GetAll() ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Remove(id int64) error
	// GetByNome lista clientes cujo nome contém o termo, ordenados por nome.
	GetByNome(nome string) ([]*entity.Cliente, error)
	GetByEmail(email string) ([]*entity.Cliente, error)
}
