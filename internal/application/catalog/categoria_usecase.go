package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/projeto2025/vendas-api/internal/application/dto"
	"github.com/projeto2025/vendas-api/internal/domain"
	"github.com/projeto2025/vendas-api/internal/domain/entity"
	"github.com/projeto2025/vendas-api/internal/domain/repository"
)

// CategoriaUseCase CRUD de categorias. A exclusão é travada enquanto houver
// produto apontando para a categoria.
type CategoriaUseCase struct {
	categoriaRepo repository.CategoriaRepository
	produtoRepo   repository.ProdutoRepository
}

// NewCategoriaUseCase constrói o caso de uso.
func NewCategoriaUseCase(categoriaRepo repository.CategoriaRepository, produtoRepo repository.ProdutoRepository) *CategoriaUseCase {
	return &CategoriaUseCase{categoriaRepo: categoriaRepo, produtoRepo: produtoRepo}
}

// Add cria uma categoria. DataCadastro é do servidor.
func (uc *CategoriaUseCase) Add(in dto.CategoriaDto) (*dto.CategoriaDto, error) {
	if strings.TrimSpace(in.Nome) == "" {
		return nil, domain.ErrInvalidInput
	}
	categoria := &entity.Categoria{
		Nome:         in.Nome,
		Descricao:    in.Descricao,
		Ativo:        in.Ativo,
		DataCadastro: time.Now(),
	}
	if err := uc.categoriaRepo.Add(categoria); err != nil {
		return nil, err
	}
	return toCategoriaDto(categoria), nil
}

// Get obtém categoria por ID; ErrNotFound quando não existe.
func (uc *CategoriaUseCase) Get(id int64) (*dto.CategoriaDto, error) {
	categoria, err := uc.categoriaRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoriaDto(categoria), nil
}

// GetAll lista todas as categorias.
func (uc *CategoriaUseCase) GetAll() ([]*dto.CategoriaDto, error) {
	categorias, err := uc.categoriaRepo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoriaDto, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, toCategoriaDto(c))
	}
	return out, nil
}

// Update atualiza a categoria. DataCadastro original é preservada.
func (uc *CategoriaUseCase) Update(in dto.CategoriaDto) (*dto.CategoriaDto, error) {
	if in.ID <= 0 || strings.TrimSpace(in.Nome) == "" {
		return nil, domain.ErrInvalidInput
	}
	categoria, err := uc.categoriaRepo.Get(in.ID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	categoria.Nome = in.Nome
	categoria.Descricao = in.Descricao
	categoria.Ativo = in.Ativo
	if err := uc.categoriaRepo.Update(categoria); err != nil {
		return nil, err
	}
	return toCategoriaDto(categoria), nil
}

// Remove exclui a categoria. ErrConflict enquanto algum produto, ativo ou não,
// apontar para ela.
func (uc *CategoriaUseCase) Remove(id int64) error {
	categoria, err := uc.categoriaRepo.Get(id)
	if err != nil {
		return err
	}
	if categoria == nil {
		return domain.ErrNotFound
	}
	n, err := uc.produtoRepo.CountByCategoria(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: categoria possui %d produto(s)", domain.ErrConflict, n)
	}
	return uc.categoriaRepo.Remove(id)
}

func toCategoriaDto(c *entity.Categoria) *dto.CategoriaDto {
	return &dto.CategoriaDto{
		ID:           c.ID,
		Nome:         c.Nome,
		Descricao:    c.Descricao,
		Ativo:        c.Ativo,
		DataCadastro: c.DataCadastro,
	}
}
