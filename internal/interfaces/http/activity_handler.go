package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/dto"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/usecase"
)

// ActivityHandler maneja la bitácora de actividad (protegido).
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// Create registra manualmente una entrada de bitácora.
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateActivityLogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar la bitácora de actividad
// @Tags         activity
// @Security     Bearer
// @Produce      json
// @Param        actor_id     query  string  false  "Filtrar por actor"
// @Param        entity_type  query  string  false  "Filtrar por tipo de entidad"
// @Param        entity_id    query  string  false  "Filtrar por entidad"
// @Success      200  {array}  dto.ActivityLogResponse
// @Router       /api/activity [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	var req dto.ActivityLogListRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	out, err := h.uc.List(req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
