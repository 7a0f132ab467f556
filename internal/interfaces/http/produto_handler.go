package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/projeto2025/vendas-api/internal/application/catalog"
	"github.com/projeto2025/vendas-api/internal/application/dto"
	"github.com/shopspring/decimal"
)

// ProdutoHandler trata as requisições HTTP de produtos.
type ProdutoHandler struct {
	uc *catalog.ProdutoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *catalog.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// GetAll GET /api/produtos
func (h *ProdutoHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.uc.GetAll()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/produtos/:id
func (h *ProdutoHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	produto, err := h.uc.Get(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(produto)
}

// GetByCategoria GET /api/produtos/categoria/:id
func (h *ProdutoHandler) GetByCategoria(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	list, err := h.uc.GetByCategoria(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// GetByMarca GET /api/produtos/marca/:marca
func (h *ProdutoHandler) GetByMarca(c *fiber.Ctx) error {
	list, err := h.uc.GetByMarca(c.Params("marca"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// GetEmEstoque GET /api/produtos/estoque
func (h *ProdutoHandler) GetEmEstoque(c *fiber.Ctx) error {
	list, err := h.uc.GetEmEstoque()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// Buscar GET /api/produtos/buscar/:termo
func (h *ProdutoHandler) Buscar(c *fiber.Ctx) error {
	list, err := h.uc.Buscar(c.Params("termo"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// Create POST /api/produtos
func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	var in dto.ProdutoDto
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if msgs := validarProduto(in); len(msgs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "dados do produto inválidos", Errors: msgs,
		})
	}
	produto, err := h.uc.Add(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(produto)
}

// Update PUT /api/produtos
func (h *ProdutoHandler) Update(c *fiber.Ctx) error {
	var in dto.ProdutoDto
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if msgs := validarProduto(in); len(msgs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "dados do produto inválidos", Errors: msgs,
		})
	}
	produto, err := h.uc.Update(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(produto)
}

// AjustarEstoque PUT /api/produtos/estoque/:id
func (h *ProdutoHandler) AjustarEstoque(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.AjusteEstoqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	produto, err := h.uc.AjustarEstoque(id, in.Quantidade)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(produto)
}

// Delete DELETE /api/produtos/:id
func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := h.uc.Remove(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// validarProduto regras de entrada espelhadas no handler para devolver as
// mensagens por campo de uma vez.
func validarProduto(in dto.ProdutoDto) []string {
	var msgs []string
	if in.Nome == "" {
		msgs = append(msgs, "nome é obrigatório")
	}
	if in.IDCategoria <= 0 {
		msgs = append(msgs, "idCategoria é obrigatório")
	}
	if in.Preco.LessThan(decimal.Zero) {
		msgs = append(msgs, "preco não pode ser negativo")
	}
	if in.QuantidadeEstoque < 0 {
		msgs = append(msgs, "quantidadeEstoque não pode ser negativa")
	}
	return msgs
}
