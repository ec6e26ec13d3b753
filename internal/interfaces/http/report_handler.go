package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/analytics"
	"github.com/jhoicas/ventas-api/internal/application/dto"
)

// ReportHandler maneja los reportes de ventas (solo lectura).
type ReportHandler struct {
	uc *analytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// TimedData godoc
// @Summary      Ventas del último intervalo
// @Tags         reports
// @Produce      json
// @Param        interval  query  string  true  "daily | weekly | monthly | yearly"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /sales/get_timed_data [get]
func (h *ReportHandler) TimedData(c *fiber.Ctx) error {
	out, err := h.uc.GetTimedSales(c.UserContext(), c.Query("interval"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"status":   dto.StatusSuccess,
		"interval": out.Interval,
		"data":     out.Data,
	})
}

// CompareData godoc
// @Summary      Comparar dos períodos
// @Description  category1 y category2 van juntas o no van.
// @Tags         reports
// @Produce      json
// @Param        start_date   query  string  true   "Inicio período 1 (YYYY-MM-DD)"
// @Param        end_date     query  string  true   "Fin período 1 (YYYY-MM-DD)"
// @Param        start_date2  query  string  true   "Inicio período 2 (YYYY-MM-DD)"
// @Param        end_date2    query  string  true   "Fin período 2 (YYYY-MM-DD)"
// @Param        category1    query  string  false  "Categoría período 1"
// @Param        category2    query  string  false  "Categoría período 2"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /sales/compare_data [get]
func (h *ReportHandler) CompareData(c *fiber.Ctx) error {
	start1, end1, err := requiredDateRange(c, "start_date", "end_date")
	if err != nil {
		return respondError(c, err)
	}
	start2, end2, err := requiredDateRange(c, "start_date2", "end_date2")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.CompareSales(c.UserContext(),
		dto.PeriodQuery{Start: start1, End: end1, Category: c.Query("category1")},
		dto.PeriodQuery{Start: start2, End: end2, Category: c.Query("category2")},
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"status":    dto.StatusSuccess,
		"category1": out.Category1,
		"period1":   out.Period1,
		"category2": out.Category2,
		"period2":   out.Period2,
	})
}

// Summary godoc
// @Summary      Resumen de ventas del período
// @Tags         reports
// @Produce      json
// @Param        start_date  query  string  true  "YYYY-MM-DD"
// @Param        end_date    query  string  true  "YYYY-MM-DD (inclusivo)"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /sales/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	start, end, err := requiredDateRange(c, "start_date", "end_date")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Summarize(c.UserContext(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, out)
}
