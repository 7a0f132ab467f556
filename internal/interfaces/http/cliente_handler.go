package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/projeto2025/vendas-api/internal/application/customer"
	"github.com/projeto2025/vendas-api/internal/application/dto"
)

// ClienteHandler trata as requisições HTTP de clientes.
type ClienteHandler struct {
	uc *customer.ClienteUseCase
}

// NewClienteHandler constrói o handler.
func NewClienteHandler(uc *customer.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// GetAll GET /api/clientes
func (h *ClienteHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.uc.GetAll()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/clientes/:id
func (h *ClienteHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	cliente, err := h.uc.Get(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(cliente)
}

// GetByNome GET /api/clientes/buscar/:nome
func (h *ClienteHandler) GetByNome(c *fiber.Ctx) error {
	list, err := h.uc.GetByNome(c.Params("nome"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// GetByEmail GET /api/clientes/email/:email
func (h *ClienteHandler) GetByEmail(c *fiber.Ctx) error {
	list, err := h.uc.GetByEmail(c.Params("email"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// Create POST /api/clientes
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteDto
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "dados do cliente inválidos",
			Errors: []string{"nome é obrigatório"},
		})
	}
	cliente, err := h.uc.Add(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// Update PUT /api/clientes
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.ClienteDto
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	cliente, err := h.uc.Update(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(cliente)
}

// Delete DELETE /api/clientes/:id
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := h.uc.Remove(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
