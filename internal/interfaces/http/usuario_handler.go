package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/projeto2025/vendas-api/internal/application/auth"
	"github.com/projeto2025/vendas-api/internal/application/dto"
	"github.com/projeto2025/vendas-api/internal/application/usecase"
	"github.com/projeto2025/vendas-api/internal/domain"
	"github.com/projeto2025/vendas-api/internal/domain/entity"
)

// UsuarioHandler trata as requisições HTTP de usuários. Rotas de leitura e
// alteração individuais aceitam o próprio usuário ou um Admin.
type UsuarioHandler struct {
	uc     *usecase.UsuarioUseCase
	authUC *auth.AuthUseCase
}

// NewUsuarioHandler constrói o handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase, authUC *auth.AuthUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc, authUC: authUC}
}

// GetAll GET /api/usuarios (Admin)
func (h *UsuarioHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.uc.GetAll()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/usuarios/:id (Admin ou o próprio usuário)
func (h *UsuarioHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	if !h.isAdminOuDono(c, id) {
		return respondDomainError(c, fmt.Errorf("%w: sem permissão para este usuário", domain.ErrForbidden))
	}
	usuario, err := h.uc.Get(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(usuario)
}

// GetByUserName GET /api/usuarios/username/:username (Admin ou o próprio)
func (h *UsuarioHandler) GetByUserName(c *fiber.Ctx) error {
	userName := c.Params("username")
	if GetRole(c) != entity.RoleAdmin && GetUserName(c) != userName {
		return respondDomainError(c, fmt.Errorf("%w: sem permissão para este usuário", domain.ErrForbidden))
	}
	usuario, err := h.uc.GetByUserName(userName)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(usuario)
}

// Create POST /api/usuarios (Admin)
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if msgs := validarNovoUsuario(in.UserName, in.Email, in.Senha); len(msgs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "dados do usuário inválidos", Errors: msgs,
		})
	}
	usuario, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usuario)
}

// Update PUT /api/usuarios/:id (Admin ou o próprio; role/ativo só Admin)
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	if !h.isAdminOuDono(c, id) {
		return respondDomainError(c, fmt.Errorf("%w: sem permissão para este usuário", domain.ErrForbidden))
	}
	var in dto.UpdateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	usuario, err := h.uc.Update(id, in, GetRole(c) == entity.RoleAdmin)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(usuario)
}

// Delete DELETE /api/usuarios/:id (Admin)
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ChangePassword POST /api/usuarios/:id/change-password (só o próprio)
func (h *UsuarioHandler) ChangePassword(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	if GetUserID(c) != id {
		return respondDomainError(c, fmt.Errorf("%w: só é possível trocar a própria senha", domain.ErrForbidden))
	}
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.authUC.ChangePassword(id, in); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UsuarioHandler) isAdminOuDono(c *fiber.Ctx, id int64) bool {
	return GetRole(c) == entity.RoleAdmin || GetUserID(c) == id
}

// validarNovoUsuario regras por campo para criação de usuário e de admin.
func validarNovoUsuario(userName, email, senha string) []string {
	var msgs []string
	if userName == "" {
		msgs = append(msgs, "userName é obrigatório")
	}
	if email == "" {
		msgs = append(msgs, "email é obrigatório")
	}
	if len(senha) < 6 {
		msgs = append(msgs, "senha deve ter ao menos 6 caracteres")
	}
	return msgs
}
