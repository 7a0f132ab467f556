package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/projeto2025/vendas-api/internal/application/dto"
	"github.com/projeto2025/vendas-api/internal/application/usecase"
)

// AdminHandler bootstrap do primeiro administrador e estatísticas.
type AdminHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewAdminHandler constrói o handler.
func NewAdminHandler(uc *usecase.UsuarioUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// CreateAdmin POST /api/admin/create-admin (público). Username já tomado
// devolve 409.
func (h *AdminHandler) CreateAdmin(c *fiber.Ctx) error {
	var in dto.CreateAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if msgs := validarNovoUsuario(in.UserName, in.Email, in.Senha); len(msgs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "dados do administrador inválidos", Errors: msgs,
		})
	}
	usuario, err := h.uc.CreateAdmin(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usuario)
}

// ResetPassword PUT /api/admin/:id/reset-password (Admin). Redefine a senha
// sem exigir a atual.
func (h *AdminHandler) ResetPassword(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.ResetPassword(id, in); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats GET /api/admin/stats (Admin)
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(stats)
}
