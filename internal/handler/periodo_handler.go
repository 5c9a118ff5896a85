package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"agua-be-svc/internal/service"
	"agua-be-svc/internal/tariff"
	"agua-be-svc/pkg/logger"
	"agua-be-svc/pkg/utils"
)

// RecalcularRequest carries one meter reading per resident for a recompute
type RecalcularRequest struct {
	Leituras map[uint]decimal.Decimal `json:"leituras" binding:"required"`
}

// PeriodoHandler handles billing-period HTTP requests
type PeriodoHandler struct {
	periodoService service.PeriodoService
	billingService service.BillingService
	resumoService  service.ResumoService
	exportService  service.ExportService
	logger         *logger.Logger
}

// NewPeriodoHandler creates a new PeriodoHandler instance
func NewPeriodoHandler(
	periodoService service.PeriodoService,
	billingService service.BillingService,
	resumoService service.ResumoService,
	exportService service.ExportService,
	logger *logger.Logger,
) *PeriodoHandler {
	return &PeriodoHandler{
		periodoService: periodoService,
		billingService: billingService,
		resumoService:  resumoService,
		exportService:  exportService,
		logger:         logger,
	}
}

// GetPeriodos lists periods, newest first
// @Summary List billing periods
// @Tags periodos
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]models.Periodo}
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/periodos [get]
func (h *PeriodoHandler) GetPeriodos(c *gin.Context) {
	periodos, err := h.periodoService.GetAll()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list periods")
		utils.InternalServerErrorResponse(c, "Failed to list periods", err)
		return
	}

	utils.SuccessResponse(c, "Periods retrieved successfully", periodos)
}

// GetPeriodo retrieves one period
// @Summary Get billing period
// @Tags periodos
// @Produce json
// @Param id path int true "Period ID"
// @Success 200 {object} utils.APIResponse{data=models.Periodo}
// @Failure 404 {object} utils.APIResponse "Period not found"
// @Router /api/v1/periodos/{id} [get]
func (h *PeriodoHandler) GetPeriodo(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid period ID", err)
		return
	}

	periodo, err := h.periodoService.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Period not found")
			return
		}
		h.logger.WithError(err).Error("Failed to get period")
		utils.InternalServerErrorResponse(c, "Failed to get period", err)
		return
	}

	utils.SuccessResponse(c, "Period retrieved successfully", periodo)
}

// CreatePeriodo opens a new billing period
// @Summary Create billing period
// @Tags periodos
// @Accept json
// @Produce json
// @Param request body service.CreatePeriodoRequest true "Period data"
// @Success 201 {object} utils.APIResponse{data=models.Periodo}
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 409 {object} utils.APIResponse "Period already exists"
// @Router /api/v1/periodos [post]
func (h *PeriodoHandler) CreatePeriodo(c *gin.Context) {
	var req service.CreatePeriodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	periodo, err := h.periodoService.Create(&req)
	if err != nil {
		if errors.Is(err, service.ErrPeriodoDuplicado) {
			utils.ConflictResponse(c, "Period already exists for this month and year", err)
			return
		}
		h.logger.WithError(err).Error("Failed to create period")
		utils.BadRequestResponse(c, "Failed to create period", err)
		return
	}

	utils.CreatedResponse(c, "Period created successfully", periodo)
}

// UpdateDespesas adjusts an open period's expenses
// @Summary Update period expenses
// @Description Adjusts the expenses of an open period and re-derives its total. Charges keep their values until the period is recalculated.
// @Tags periodos
// @Accept json
// @Produce json
// @Param id path int true "Period ID"
// @Param request body service.UpdateDespesasRequest true "Expense data"
// @Success 200 {object} utils.APIResponse{data=models.Periodo}
// @Failure 404 {object} utils.APIResponse "Period not found"
// @Failure 409 {object} utils.APIResponse "Period is closed"
// @Router /api/v1/periodos/{id}/despesas [put]
func (h *PeriodoHandler) UpdateDespesas(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid period ID", err)
		return
	}

	var req service.UpdateDespesasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	periodo, err := h.periodoService.UpdateDespesas(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFoundResponse(c, "Period not found")
		case errors.Is(err, service.ErrPeriodoFechado):
			utils.ConflictResponse(c, "Period is closed", err)
		default:
			utils.BadRequestResponse(c, "Failed to update period expenses", err)
		}
		return
	}

	utils.SuccessResponse(c, "Period expenses updated successfully", periodo)
}

// Recalcular reprices every resident's charge for the period
// @Summary Recalculate period charges
// @Description Derives the price per m³ from the period's expenses and the submitted readings, then recalculates and stores every resident's charge atomically.
// @Tags periodos
// @Accept json
// @Produce json
// @Param id path int true "Period ID"
// @Param request body RecalcularRequest true "Meter readings keyed by resident ID"
// @Success 200 {object} utils.APIResponse{data=service.RecalculationResponse}
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Period not found"
// @Failure 409 {object} utils.APIResponse "Period is closed"
// @Failure 422 {object} utils.APIResponse "Invalid tariff configuration or no consumption data"
// @Router /api/v1/periodos/{id}/recalcular [post]
func (h *PeriodoHandler) Recalcular(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid period ID", err)
		return
	}

	var req RecalcularRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	resp, err := h.billingService.RecalculatePeriod(c.Request.Context(), id, req.Leituras)
	if err != nil {
		var cfgErr *tariff.ConfigError
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFoundResponse(c, "Period not found")
		case errors.Is(err, service.ErrPeriodoFechado):
			utils.ConflictResponse(c, "Period is closed", err)
		case errors.Is(err, service.ErrNoConsumptionData):
			utils.UnprocessableEntityResponse(c, "No consumption registered for the period", err)
		case errors.As(err, &cfgErr):
			utils.UnprocessableEntityResponse(c, "Invalid tariff configuration", err)
		default:
			h.logger.WithError(err).Error("Failed to recalculate period")
			if resp != nil {
				c.JSON(http.StatusInternalServerError, utils.APIResponse{
					Success: false,
					Message: "Failed to recalculate period",
					Data:    resp,
					Error:   err.Error(),
				})
				return
			}
			utils.InternalServerErrorResponse(c, "Failed to recalculate period", err)
		}
		return
	}

	utils.SuccessResponse(c, "Period recalculated successfully", resp)
}

// Fechar closes a period
// @Summary Close billing period
// @Tags periodos
// @Produce json
// @Param id path int true "Period ID"
// @Success 200 {object} utils.APIResponse{data=models.Periodo}
// @Failure 404 {object} utils.APIResponse "Period not found"
// @Router /api/v1/periodos/{id}/fechar [post]
func (h *PeriodoHandler) Fechar(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid period ID", err)
		return
	}

	periodo, err := h.periodoService.Fechar(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Period not found")
			return
		}
		h.logger.WithError(err).Error("Failed to close period")
		utils.InternalServerErrorResponse(c, "Failed to close period", err)
		return
	}

	utils.SuccessResponse(c, "Period closed successfully", periodo)
}

// Reabrir reopens a closed period
// @Summary Reopen billing period
// @Tags periodos
// @Produce json
// @Param id path int true "Period ID"
// @Success 200 {object} utils.APIResponse{data=models.Periodo}
// @Failure 404 {object} utils.APIResponse "Period not found"
// @Router /api/v1/periodos/{id}/reabrir [post]
func (h *PeriodoHandler) Reabrir(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid period ID", err)
		return
	}

	periodo, err := h.periodoService.Reabrir(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Period not found")
			return
		}
		h.logger.WithError(err).Error("Failed to reopen period")
		utils.InternalServerErrorResponse(c, "Failed to reopen period", err)
		return
	}

	utils.SuccessResponse(c, "Period reopened successfully", periodo)
}

// GetConsumos lists the period's charges with payment status
// @Summary List period charges
// @Tags periodos
// @Produce json
// @Param id path int true "Period ID"
// @Success 200 {object} utils.APIResponse{data=[]response.ConsumoDetalheResponse}
// @Failure 404 {object} utils.APIResponse "Period not found"
// @Router /api/v1/periodos/{id}/consumos [get]
func (h *PeriodoHandler) GetConsumos(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid period ID", err)
		return
	}

	consumos, err := h.billingService.GetConsumosByPeriodo(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Period not found")
			return
		}
		h.logger.WithError(err).Error("Failed to list period charges")
		utils.InternalServerErrorResponse(c, "Failed to list period charges", err)
		return
	}

	utils.SuccessResponse(c, "Charges retrieved successfully", consumos)
}

// GetResumo returns the period's billing summary
// @Summary Get period summary
// @Tags periodos
// @Produce json
// @Param id path int true "Period ID"
// @Success 200 {object} utils.APIResponse{data=response.ResumoPeriodoResponse}
// @Failure 404 {object} utils.APIResponse "Period not found"
// @Router /api/v1/periodos/{id}/resumo [get]
func (h *PeriodoHandler) GetResumo(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid period ID", err)
		return
	}

	resumo, err := h.resumoService.GetResumoPeriodo(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Period not found")
			return
		}
		h.logger.WithError(err).Error("Failed to get period summary")
		utils.InternalServerErrorResponse(c, "Failed to get period summary", err)
		return
	}

	utils.SuccessResponse(c, "Summary retrieved successfully", resumo)
}

// ExportExcel downloads the period's charges as a spreadsheet
// @Summary Export period to Excel
// @Tags periodos
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "Period ID"
// @Success 200 {file} binary "Excel file"
// @Failure 404 {object} utils.APIResponse "Period not found"
// @Router /api/v1/periodos/{id}/export [get]
func (h *PeriodoHandler) ExportExcel(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid period ID", err)
		return
	}

	data, filename, err := h.exportService.ExportPeriodoToExcel(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Period not found")
			return
		}
		h.logger.WithError(err).Error("Failed to export period")
		utils.InternalServerErrorResponse(c, "Failed to export period", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
