package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/dto"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/usecase"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/entity"
)

// TimeEntryHandler maneja las imputaciones de horas (protegido).
type TimeEntryHandler struct {
	uc *usecase.TimeEntryUseCase
}

// NewTimeEntryHandler construye el handler.
func NewTimeEntryHandler(uc *usecase.TimeEntryUseCase) *TimeEntryHandler {
	return &TimeEntryHandler{uc: uc}
}

// Create godoc
// @Summary      Imputar horas contra un puesto
// @Tags         time-entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTimeEntryRequest  true  "Imputación"
// @Success      201   {object}  dto.TimeEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/time-entries [post]
func (h *TimeEntryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTimeEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar imputaciones con filtros
// @Tags         time-entries
// @Security     Bearer
// @Produce      json
// @Param        user_id      query  string  false  "Filtrar por usuario"
// @Param        position_id  query  string  false  "Filtrar por puesto"
// @Param        project_id   query  string  false  "Filtrar por proyecto"
// @Param        from         query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to           query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {array}  dto.TimeEntryResponse
// @Router       /api/time-entries [get]
func (h *TimeEntryHandler) List(c *fiber.Ctx) error {
	var req dto.TimeEntryListRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	// Un consultor solo ve sus propias imputaciones.
	if GetRole(c) == entity.RoleConsultant {
		req.UserID = GetUserID(c)
	}
	out, err := h.uc.List(req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene una imputación.
func (h *TimeEntryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	if GetRole(c) == entity.RoleConsultant && out.UserID != GetUserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el autor puede ver esta imputación"})
	}
	return c.JSON(out)
}

// Update modifica una imputación. Un consultor solo puede tocar las suyas.
func (h *TimeEntryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateTimeEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if GetRole(c) == entity.RoleConsultant {
		current, err := h.uc.GetByID(id)
		if err != nil {
			return fail(c, err)
		}
		if current.UserID != GetUserID(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el autor puede modificar esta imputación"})
		}
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una imputación. Un consultor solo puede borrar las suyas.
func (h *TimeEntryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if GetRole(c) == entity.RoleConsultant {
		current, err := h.uc.GetByID(id)
		if err != nil {
			return fail(c, err)
		}
		if current.UserID != GetUserID(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el autor puede borrar esta imputación"})
		}
	}
	if err := h.uc.Delete(c.Context(), GetUserID(c), id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
