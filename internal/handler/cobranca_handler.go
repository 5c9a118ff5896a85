package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"agua-be-svc/internal/service"
	"agua-be-svc/pkg/logger"
	"agua-be-svc/pkg/utils"
)

// CobrancaHandler handles WhatsApp charge-notification HTTP requests
type CobrancaHandler struct {
	notificationService service.NotificationService
	logger              *logger.Logger
}

// NewCobrancaHandler creates a new CobrancaHandler instance
func NewCobrancaHandler(notificationService service.NotificationService, logger *logger.Logger) *CobrancaHandler {
	return &CobrancaHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// GetCobrancasWhatsApp builds the WhatsApp deep links for a period's charges
// @Summary List WhatsApp charge links
// @Description Returns one ready-to-send wa.me link per billed resident with a phone number and no approved payment, flagging residents already notified.
// @Tags cobrancas
// @Produce json
// @Param id path int true "Period ID"
// @Success 200 {object} utils.APIResponse{data=[]response.CobrancaWhatsAppResponse}
// @Failure 404 {object} utils.APIResponse "Period not found"
// @Router /api/v1/periodos/{id}/cobrancas-whatsapp [get]
func (h *CobrancaHandler) GetCobrancasWhatsApp(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid period ID", err)
		return
	}

	cobrancas, err := h.notificationService.GetCobrancasWhatsApp(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Period not found")
			return
		}
		h.logger.WithError(err).Error("Failed to build charge links")
		utils.InternalServerErrorResponse(c, "Failed to build charge links", err)
		return
	}

	utils.SuccessResponse(c, "Charge links retrieved successfully", cobrancas)
}

// MarcarEnviado registers that a charge message was sent
// @Summary Mark charge as sent
// @Tags cobrancas
// @Produce json
// @Param id path int true "Period ID"
// @Param morador_id path int true "Resident ID"
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/periodos/{id}/cobrancas-whatsapp/{morador_id} [post]
func (h *CobrancaHandler) MarcarEnviado(c *gin.Context) {
	periodoID, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid period ID", err)
		return
	}

	moradorID, err := parseIDParam(c, "morador_id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid resident ID", err)
		return
	}

	if err := h.notificationService.MarcarEnviado(periodoID, moradorID); err != nil {
		h.logger.WithError(err).Error("Failed to mark charge as sent")
		utils.InternalServerErrorResponse(c, "Failed to mark charge as sent", err)
		return
	}

	utils.SuccessResponse(c, "Charge marked as sent", nil)
}
