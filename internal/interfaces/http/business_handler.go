package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcastillo-pa/salon-api/internal/application/dto"
	"github.com/jcastillo-pa/salon-api/internal/application/usecase"
	"github.com/jcastillo-pa/salon-api/internal/domain"
)

// BusinessHandler expone el resolver de negocio y la creación de negocios.
type BusinessHandler struct {
	uc *usecase.BusinessUseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Current godoc
// @Summary      Negocio del usuario autenticado (resolver)
// @Tags         business
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BusinessContextResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business [get]
func (h *BusinessHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.ResolveCurrent(c.Context(), GetUserID(c))
	if err != nil {
		if err == domain.ErrUnauthenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no autenticado"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_BUSINESS", Message: "el usuario no pertenece a ningún negocio"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear negocio (el creador queda como owner)
// @Tags         business
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBusinessRequest  true  "Datos del negocio"
// @Success      201   {object}  dto.BusinessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/businesses [post]
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrUnauthenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no autenticado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido y la moneda debe ser USD, COP o PAB"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el negocio ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// requireBusiness resuelve el negocio del usuario autenticado y escribe la
// respuesta de error si no hay sesión o membresía. Los handlers de entidades
// nunca infieren el negocio por otra vía.
func requireBusiness(c *fiber.Ctx, uc *usecase.BusinessUseCase) (string, bool) {
	bctx, err := uc.ResolveCurrent(c.Context(), GetUserID(c))
	if err != nil {
		switch err {
		case domain.ErrUnauthenticated:
			_ = c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no autenticado"})
		case domain.ErrNotFound:
			_ = c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_BUSINESS", Message: "el usuario no pertenece a ningún negocio"})
		default:
			_ = c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return "", false
	}
	return bctx.BusinessID, true
}
