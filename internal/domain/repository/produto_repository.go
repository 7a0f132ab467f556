package repository

import "github.com/projeto2025/vendas-api/internal/domain/entity"

// ProdutoRepository define a porta de persistência para Produto (DIP).
type ProdutoRepository interface {
	Add(produto *entity.Produto) error
	Get(id int64) (*entity.Produto, error)
	GetAll() ([]*entity.Produto, error)
	Update(produto *entity.Produto) error
	Remove(id int64) error
	// GetByCategoria lista produtos ativos da categoria, ordenados por nome.
	GetByCategoria(idCategoria int64) ([]*entity.Produto, error)
	// GetByMarca lista produtos ativos cuja marca contém o termo.
	GetByMarca(marca string) ([]*entity.Produto, error)
	// GetEmEstoque lista produtos ativos com estoque positivo.
	GetEmEstoque() ([]*entity.Produto, error)
	// Buscar procura o termo em nome, descrição, marca e modelo.
	Buscar(termo string) ([]*entity.Produto, error)
	// CountByCategoria conta produtos da categoria, ativos ou não. Usado pela
	// trava de exclusão de Categoria.
	CountByCategoria(idCategoria int64) (int64, error)
	// AjustarEstoque soma delta ao estoque do produto em uma única escrita
	// condicional: só confirma se o resultado for >= 0. Devolve false, sem
	// erro, quando o estoque ficaria negativo ou o produto não existe.
	AjustarEstoque(id int64, delta int) (bool, error)
}
