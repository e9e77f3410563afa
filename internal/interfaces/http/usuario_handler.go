package http

import (
	"errors"

	"github.com/JoaoAlvarez/contas-api/internal/application/dto"
	"github.com/JoaoAlvarez/contas-api/internal/application/usecase"
	"github.com/JoaoAlvarez/contas-api/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// UsuarioHandler trata o registro de usuários.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler constrói o handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Criar godoc
// @Summary      Registrar usuário
// @Tags         usuario
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NovoUsuarioDTO  true  "username, password, roles"
// @Success      204
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/v1/usuario [post]
func (h *UsuarioHandler) Criar(c *fiber.Ctx) error {
	var in dto.NovoUsuarioDTO
	if err := c.BodyParser(&in); err != nil {
		return respostaErro(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if violacoes := validarStruct(&in); violacoes != nil {
		return respostaValidacao(c, violacoes)
	}

	if err := h.uc.Criar(c.Context(), &in); err != nil {
		if errors.Is(err, domain.ErrUsuarioJaExiste) {
			return respostaValidacao(c, []dto.FieldMessage{{FieldName: "username", Message: "Usuário ja exsite"}})
		}
		if errors.Is(err, domain.ErrRoleInvalida) {
			return respostaValidacao(c, []dto.FieldMessage{{FieldName: "roles", Message: "Role inexistente"}})
		}
		return respostaErro(c, fiber.StatusInternalServerError, "Erro interno no servidor")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
