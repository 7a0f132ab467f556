package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/projeto2025/vendas-api/internal/application/dto"
	"github.com/projeto2025/vendas-api/internal/application/sales"
)

// VendaHandler trata as requisições HTTP de vendas.
type VendaHandler struct {
	uc *sales.VendaUseCase
}

// NewVendaHandler constrói o handler.
func NewVendaHandler(uc *sales.VendaUseCase) *VendaHandler {
	return &VendaHandler{uc: uc}
}

// Create POST /api/vendas
func (h *VendaHandler) Create(c *fiber.Ctx) error {
	var in dto.VendaDto
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if msgs := validarVenda(in); len(msgs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "dados da venda inválidos", Errors: msgs,
		})
	}
	venda, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(venda)
}

// GetAll GET /api/vendas
func (h *VendaHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.uc.GetAll()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/vendas/:id
func (h *VendaHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	venda, err := h.uc.Get(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(venda)
}

// GetComItens GET /api/vendas/:id/itens
func (h *VendaHandler) GetComItens(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	venda, err := h.uc.GetComItens(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(venda)
}

// GetByCliente GET /api/vendas/cliente/:id
func (h *VendaHandler) GetByCliente(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	list, err := h.uc.GetByCliente(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// GetByPeriodo GET /api/vendas/periodo?dataInicio=2006-01-02&dataFim=2006-01-02
func (h *VendaHandler) GetByPeriodo(c *fiber.Ctx) error {
	inicio, err := time.Parse("2006-01-02", c.Query("dataInicio"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "dataInicio inválida (formato 2006-01-02)",
		})
	}
	fim, err := time.Parse("2006-01-02", c.Query("dataFim"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "dataFim inválida (formato 2006-01-02)",
		})
	}
	// O fim é inclusivo: cobre o dia inteiro.
	fim = fim.Add(24*time.Hour - time.Nanosecond)
	list, err := h.uc.GetByPeriodo(inicio, fim)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/vendas
func (h *VendaHandler) Update(c *fiber.Ctx) error {
	var in dto.VendaDto
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	venda, err := h.uc.Update(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(venda)
}

// Finalizar PUT /api/vendas/:id/finalizar
func (h *VendaHandler) Finalizar(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	venda, err := h.uc.Finalizar(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(venda)
}

// Cancelar PUT /api/vendas/:id/cancelar
func (h *VendaHandler) Cancelar(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	venda, err := h.uc.Cancelar(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(venda)
}

// Delete DELETE /api/vendas/:id
func (h *VendaHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := h.uc.Remove(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Comprovante GET /api/vendas/:id/comprovante
func (h *VendaHandler) Comprovante(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	pdfBytes, filename, err := h.uc.Comprovante(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// validarVenda regras de entrada por campo da criação de venda.
func validarVenda(in dto.VendaDto) []string {
	var msgs []string
	if in.IDCliente <= 0 {
		msgs = append(msgs, "idCliente é obrigatório")
	}
	if len(in.ItensVenda) == 0 {
		msgs = append(msgs, "itensVenda não pode ser vazio")
	}
	for _, item := range in.ItensVenda {
		if item.IDProduto <= 0 {
			msgs = append(msgs, "idProduto é obrigatório em todos os itens")
			break
		}
	}
	for _, item := range in.ItensVenda {
		if item.Quantidade <= 0 {
			msgs = append(msgs, "quantidade deve ser maior que zero em todos os itens")
			break
		}
	}
	return msgs
}
