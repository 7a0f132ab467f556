package repository

import "github.com/projeto2025/vendas-api/internal/domain/entity"

// CategoriaRepository define a porta de persistência para Categoria (DIP).
// Get devolve (nil, nil) quando a categoria não existe.
type CategoriaRepository interface {
	Add(categoria *entity.Categoria) error
	Get(id int64) (*entity.Categoria, error)
	GetAll() ([]*entity.Categoria, error)
	Update(categoria *entity.Categoria) error
	Remove(id int64) error
}
