package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/dto"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/report"
)

// ReportHandler maneja los endpoints de reportes (protegido).
type ReportHandler struct {
	budgetUC      *report.BudgetUseCase
	utilizationUC *report.UtilizationUseCase
	bookingUC     *report.BookingUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(budgetUC *report.BudgetUseCase, utilizationUC *report.UtilizationUseCase, bookingUC *report.BookingUseCase) *ReportHandler {
	return &ReportHandler{budgetUC: budgetUC, utilizationUC: utilizationUC, bookingUC: bookingUC}
}

// GetBudget godoc
// @Summary      Reporte de consumo de presupuesto
// @Description  Consumo por puesto, proyecto o cliente según el filtro. Con varios
//               filtros la precedencia es position_id, project_id, client_id; sin
//               filtros el reporte es global. Un id desconocido devuelve lista vacía.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        position_id  query  string  false  "Alcance: un puesto"
// @Param        project_id   query  string  false  "Alcance: un proyecto y sus puestos"
// @Param        client_id    query  string  false  "Alcance: un cliente y sus puestos"
// @Success      200  {array}  dto.BudgetReportDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/budget [get]
func (h *ReportHandler) GetBudget(c *fiber.Ctx) error {
	var req dto.BudgetReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	out, err := h.budgetUC.GetBudgetConsumption(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetUtilization godoc
// @Summary      Reporte de utilización por usuario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Inicio (YYYY-MM-DD). Default: primer día del mes."
// @Param        end_date    query  string  false  "Fin (YYYY-MM-DD). Default: hoy."
// @Success      200  {object}  dto.UtilizationReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/utilization [get]
func (h *ReportHandler) GetUtilization(c *fiber.Ctx) error {
	var req dto.UtilizationReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	out, err := h.utilizationUC.GetUtilization(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetBookings godoc
// @Summary      Detalle de imputaciones con jerarquía resuelta
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fin (YYYY-MM-DD)"
// @Param        user_id     query  string  false  "Filtrar por usuario"
// @Param        project_id  query  string  false  "Filtrar por proyecto"
// @Param        client_id   query  string  false  "Filtrar por cliente"
// @Success      200  {object}  dto.BookingReportDTO
// @Router       /api/reports/bookings [get]
func (h *ReportHandler) GetBookings(c *fiber.Ctx) error {
	var req dto.BookingReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	out, err := h.bookingUC.GetBookings(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ExportBookingsPDF godoc
// @Summary      Exportar el reporte de booking como PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        start_date  query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fin (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Router       /api/reports/bookings/pdf [get]
func (h *ReportHandler) ExportBookingsPDF(c *fiber.Ctx) error {
	var req dto.BookingReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	data, err := h.bookingUC.ExportPDF(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="booking-report.pdf"`)
	return c.Send(data)
}
