package catalog

import (
	"strings"
	"time"

	"github.com/projeto2025/vendas-api/internal/application/dto"
	"github.com/projeto2025/vendas-api/internal/domain"
	"github.com/projeto2025/vendas-api/internal/domain/entity"
	"github.com/projeto2025/vendas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProdutoUseCase CRUD e consultas de produtos. Leituras denormalizam
// NomeCategoria; o estoque só muda pelo ajuste condicional do repositório.
type ProdutoUseCase struct {
	produtoRepo   repository.ProdutoRepository
	categoriaRepo repository.CategoriaRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(produtoRepo repository.ProdutoRepository, categoriaRepo repository.CategoriaRepository) *ProdutoUseCase {
	return &ProdutoUseCase{produtoRepo: produtoRepo, categoriaRepo: categoriaRepo}
}

// Add cria um produto. A categoria deve existir; preço não pode ser negativo
// nem o estoque inicial.
func (uc *ProdutoUseCase) Add(in dto.ProdutoDto) (*dto.ProdutoDto, error) {
	if strings.TrimSpace(in.Nome) == "" || in.IDCategoria <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Preco.LessThan(decimal.Zero) || in.QuantidadeEstoque < 0 {
		return nil, domain.ErrInvalidInput
	}
	categoria, err := uc.categoriaRepo.Get(in.IDCategoria)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	produto := &entity.Produto{
		Nome:              in.Nome,
		Descricao:         in.Descricao,
		Marca:             in.Marca,
		Modelo:            in.Modelo,
		Preco:             in.Preco,
		QuantidadeEstoque: in.QuantidadeEstoque,
		Especificacoes:    in.Especificacoes,
		ImagemURL:         in.ImagemURL,
		Ativo:             in.Ativo,
		DataCadastro:      time.Now(),
		IDCategoria:       in.IDCategoria,
	}
	if err := uc.produtoRepo.Add(produto); err != nil {
		return nil, err
	}
	return uc.toDto(produto), nil
}

// Get obtém produto por ID; ErrNotFound quando não existe.
func (uc *ProdutoUseCase) Get(id int64) (*dto.ProdutoDto, error) {
	produto, err := uc.produtoRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toDto(produto), nil
}

// GetAll lista todos os produtos.
func (uc *ProdutoUseCase) GetAll() ([]*dto.ProdutoDto, error) {
	produtos, err := uc.produtoRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return uc.toDtos(produtos), nil
}

// GetByCategoria lista produtos ativos da categoria. Categoria inexistente é
// ErrNotFound.
func (uc *ProdutoUseCase) GetByCategoria(idCategoria int64) ([]*dto.ProdutoDto, error) {
	categoria, err := uc.categoriaRepo.Get(idCategoria)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	produtos, err := uc.produtoRepo.GetByCategoria(idCategoria)
	if err != nil {
		return nil, err
	}
	return uc.toDtos(produtos), nil
}

// GetByMarca lista produtos ativos cuja marca contém o termo.
func (uc *ProdutoUseCase) GetByMarca(marca string) ([]*dto.ProdutoDto, error) {
	if strings.TrimSpace(marca) == "" {
		return nil, domain.ErrInvalidInput
	}
	produtos, err := uc.produtoRepo.GetByMarca(marca)
	if err != nil {
		return nil, err
	}
	return uc.toDtos(produtos), nil
}

// GetEmEstoque lista produtos ativos com estoque positivo.
func (uc *ProdutoUseCase) GetEmEstoque() ([]*dto.ProdutoDto, error) {
	produtos, err := uc.produtoRepo.GetEmEstoque()
	if err != nil {
		return nil, err
	}
	return uc.toDtos(produtos), nil
}

// Buscar procura o termo em nome, descrição, marca e modelo.
func (uc *ProdutoUseCase) Buscar(termo string) ([]*dto.ProdutoDto, error) {
	if strings.TrimSpace(termo) == "" {
		return nil, domain.ErrInvalidInput
	}
	produtos, err := uc.produtoRepo.Buscar(termo)
	if err != nil {
		return nil, err
	}
	return uc.toDtos(produtos), nil
}

// Update atualiza o produto. QuantidadeEstoque NÃO é alterada por aqui: o
// valor enviado é ignorado e o estoque só muda via AjustarEstoque.
func (uc *ProdutoUseCase) Update(in dto.ProdutoDto) (*dto.ProdutoDto, error) {
	if in.ID <= 0 || strings.TrimSpace(in.Nome) == "" || in.IDCategoria <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Preco.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	produto, err := uc.produtoRepo.Get(in.ID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}
	categoria, err := uc.categoriaRepo.Get(in.IDCategoria)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	produto.Nome = in.Nome
	produto.Descricao = in.Descricao
	produto.Marca = in.Marca
	produto.Modelo = in.Modelo
	produto.Preco = in.Preco
	produto.Especificacoes = in.Especificacoes
	produto.ImagemURL = in.ImagemURL
	produto.Ativo = in.Ativo
	produto.IDCategoria = in.IDCategoria
	if err := uc.produtoRepo.Update(produto); err != nil {
		return nil, err
	}
	return uc.toDto(produto), nil
}

// AjustarEstoque soma o delta ao estoque do produto. Delta negativo que
// deixaria o estoque negativo devolve ErrInsufficientStock; produto
// desconhecido devolve ErrNotFound.
func (uc *ProdutoUseCase) AjustarEstoque(id int64, delta int) (*dto.ProdutoDto, error) {
	if delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	produto, err := uc.produtoRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}
	ok, err := uc.produtoRepo.AjustarEstoque(id, delta)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInsufficientStock
	}
	return uc.Get(id)
}

// Remove exclui o produto; sem erro quando já não existe.
func (uc *ProdutoUseCase) Remove(id int64) error {
	return uc.produtoRepo.Remove(id)
}

func (uc *ProdutoUseCase) toDto(p *entity.Produto) *dto.ProdutoDto {
	out := &dto.ProdutoDto{
		ID:                p.ID,
		Nome:              p.Nome,
		Descricao:         p.Descricao,
		Marca:             p.Marca,
		Modelo:            p.Modelo,
		Preco:             p.Preco,
		QuantidadeEstoque: p.QuantidadeEstoque,
		Especificacoes:    p.Especificacoes,
		ImagemURL:         p.ImagemURL,
		Ativo:             p.Ativo,
		DataCadastro:      p.DataCadastro,
		IDCategoria:       p.IDCategoria,
	}
	if categoria, err := uc.categoriaRepo.Get(p.IDCategoria); err == nil && categoria != nil {
		out.NomeCategoria = categoria.Nome
	}
	return out
}

func (uc *ProdutoUseCase) toDtos(produtos []*entity.Produto) []*dto.ProdutoDto {
	nomes := make(map[int64]string)
	out := make([]*dto.ProdutoDto, 0, len(produtos))
	for _, p := range produtos {
		d := uc.toDtoSemCategoria(p)
		nome, ok := nomes[p.IDCategoria]
		if !ok {
			if categoria, err := uc.categoriaRepo.Get(p.IDCategoria); err == nil && categoria != nil {
				nome = categoria.Nome
			}
			nomes[p.IDCategoria] = nome
		}
		d.NomeCategoria = nome
		out = append(out, d)
	}
	return out
}

func (uc *ProdutoUseCase) toDtoSemCategoria(p *entity.Produto) *dto.ProdutoDto {
	return &dto.ProdutoDto{
		ID:                p.ID,
		Nome:              p.Nome,
		Descricao:         p.Descricao,
		Marca:             p.Marca,
		Modelo:            p.Modelo,
		Preco:             p.Preco,
		QuantidadeEstoque: p.QuantidadeEstoque,
		Especificacoes:    p.Especificacoes,
		ImagemURL:         p.ImagemURL,
		Ativo:             p.Ativo,
		DataCadastro:      p.DataCadastro,
		IDCategoria:       p.IDCategoria,
	}
}
