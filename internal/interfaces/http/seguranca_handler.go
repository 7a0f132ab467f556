package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/projeto2025/vendas-api/internal/application/auth"
	"github.com/projeto2025/vendas-api/internal/application/dto"
)

// SegurancaHandler trata login, refresh, revogação e logout.
type SegurancaHandler struct {
	uc *auth.AuthUseCase
}

// NewSegurancaHandler constrói o handler.
func NewSegurancaHandler(uc *auth.AuthUseCase) *SegurancaHandler {
	return &SegurancaHandler{uc: uc}
}

// Login POST /api/seguranca/login
func (h *SegurancaHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Refresh POST /api/seguranca/refresh-token
func (h *SegurancaHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshTokenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.Refresh(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Revoke POST /api/seguranca/revoke-token (autenticado)
func (h *SegurancaHandler) Revoke(c *fiber.Ctx) error {
	var in dto.RefreshTokenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	ok, err := h.uc.Revoke(in.RefreshToken)
	if err != nil {
		return respondDomainError(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "refresh token desconhecido"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Logout POST /api/seguranca/logout (autenticado): revoga o refresh token
// enviado; sem corpo ou token desconhecido não é erro.
func (h *SegurancaHandler) Logout(c *fiber.Ctx) error {
	var in dto.RefreshTokenRequest
	_ = c.BodyParser(&in)
	if in.RefreshToken != "" {
		if _, err := h.uc.Revoke(in.RefreshToken); err != nil {
			return respondDomainError(c, err)
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}
