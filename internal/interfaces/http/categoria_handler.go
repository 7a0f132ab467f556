package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/projeto2025/vendas-api/internal/application/catalog"
	"github.com/projeto2025/vendas-api/internal/application/dto"
)

// CategoriaHandler trata as requisições HTTP de categorias.
type CategoriaHandler struct {
	uc *catalog.CategoriaUseCase
}

// NewCategoriaHandler constrói o handler.
func NewCategoriaHandler(uc *catalog.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// GetAll GET /api/categorias
func (h *CategoriaHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.uc.GetAll()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/categorias/:id
func (h *CategoriaHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	categoria, err := h.uc.Get(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(categoria)
}

// Create POST /api/categorias
func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoriaDto
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "campos obrigatórios ausentes",
			Errors: []string{"nome é obrigatório"},
		})
	}
	categoria, err := h.uc.Add(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(categoria)
}

// Update PUT /api/categorias
func (h *CategoriaHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoriaDto
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	categoria, err := h.uc.Update(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(categoria)
}

// Delete DELETE /api/categorias/:id
func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := h.uc.Remove(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
