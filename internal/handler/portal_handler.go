package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"agua-be-svc/internal/service"
	"agua-be-svc/pkg/logger"
	"agua-be-svc/pkg/utils"
)

// PortalHandler handles the public resident-portal HTTP requests
type PortalHandler struct {
	moradorService service.MoradorService
	billingService service.BillingService
	logger         *logger.Logger
}

// NewPortalHandler creates a new PortalHandler instance
func NewPortalHandler(moradorService service.MoradorService, billingService service.BillingService, logger *logger.Logger) *PortalHandler {
	return &PortalHandler{
		moradorService: moradorService,
		billingService: billingService,
		logger:         logger,
	}
}

// GetPortal returns a resident's billing history by chácara number
// @Summary Resident portal lookup
// @Description Returns the resident's charges and the association's PIX details. Residents identify themselves by chácara number only.
// @Tags portal
// @Produce json
// @Param numero_chacara path string true "Chácara number"
// @Success 200 {object} utils.APIResponse{data=response.MoradorPortalResponse}
// @Failure 404 {object} utils.APIResponse "Chácara not found"
// @Router /api/v1/portal/{numero_chacara} [get]
func (h *PortalHandler) GetPortal(c *gin.Context) {
	numeroChacara := c.Param("numero_chacara")
	if numeroChacara == "" {
		utils.BadRequestResponse(c, "Chácara number is required", nil)
		return
	}

	portal, err := h.moradorService.GetPortalByChacara(numeroChacara)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Chácara not found")
			return
		}
		h.logger.WithError(err).Error("Failed to load resident portal")
		utils.InternalServerErrorResponse(c, "Failed to load resident portal", err)
		return
	}

	utils.SuccessResponse(c, "Portal data retrieved successfully", portal)
}

// GetDetalhamento returns the calculation breakdown of a charge
// @Summary Charge breakdown
// @Description Rebuilds the tariff calculation for a charge, including the per-band description lines.
// @Tags portal
// @Produce json
// @Param id path int true "Charge ID"
// @Success 200 {object} utils.APIResponse{data=tariff.Detalhamento}
// @Failure 404 {object} utils.APIResponse "Charge not found"
// @Router /api/v1/consumos/{id}/detalhamento [get]
func (h *PortalHandler) GetDetalhamento(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid charge ID", err)
		return
	}

	detalhamento, err := h.billingService.GetDetalhamento(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Charge not found")
			return
		}
		h.logger.WithError(err).Error("Failed to build charge breakdown")
		utils.InternalServerErrorResponse(c, "Failed to build charge breakdown", err)
		return
	}

	utils.SuccessResponse(c, "Breakdown retrieved successfully", detalhamento)
}
