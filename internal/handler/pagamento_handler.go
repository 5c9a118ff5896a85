package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"agua-be-svc/internal/models"
	"agua-be-svc/internal/service"
	"agua-be-svc/pkg/logger"
	"agua-be-svc/pkg/utils"
)

// DeclararPagamentoRequest identifies the charge a resident claims to have
// paid
type DeclararPagamentoRequest struct {
	ConsumoID uint `json:"consumo_id" binding:"required"`
}

// PagamentoHandler handles PIX payment-claim HTTP requests
type PagamentoHandler struct {
	pagamentoService service.PagamentoService
	logger           *logger.Logger
}

// NewPagamentoHandler creates a new PagamentoHandler instance
func NewPagamentoHandler(pagamentoService service.PagamentoService, logger *logger.Logger) *PagamentoHandler {
	return &PagamentoHandler{
		pagamentoService: pagamentoService,
		logger:           logger,
	}
}

// DeclararPagamento records a resident's PIX payment claim
// @Summary Declare payment
// @Description Records that the resident paid the charge via PIX. The claim waits for administrator review.
// @Tags pagamentos
// @Accept json
// @Produce json
// @Param request body DeclararPagamentoRequest true "Charge to declare as paid"
// @Success 201 {object} utils.APIResponse{data=models.Pagamento}
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Charge not found"
// @Failure 409 {object} utils.APIResponse "Charge already has a pending or approved payment"
// @Router /api/v1/pagamentos [post]
func (h *PagamentoHandler) DeclararPagamento(c *gin.Context) {
	var req DeclararPagamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	pagamento, err := h.pagamentoService.Declarar(req.ConsumoID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFoundResponse(c, "Charge not found")
		case errors.Is(err, service.ErrPagamentoDuplicado):
			utils.ConflictResponse(c, "Charge already has a pending or approved payment", err)
		default:
			h.logger.WithError(err).Error("Failed to declare payment")
			utils.InternalServerErrorResponse(c, "Failed to declare payment", err)
		}
		return
	}

	utils.CreatedResponse(c, "Payment declared successfully", pagamento)
}

// AprovarPagamento approves a pending claim
// @Summary Approve payment
// @Tags pagamentos
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} utils.APIResponse{data=models.Pagamento}
// @Failure 404 {object} utils.APIResponse "Payment not found"
// @Failure 409 {object} utils.APIResponse "Payment already reviewed"
// @Router /api/v1/pagamentos/{id}/aprovar [post]
func (h *PagamentoHandler) AprovarPagamento(c *gin.Context) {
	h.revisar(c, h.pagamentoService.Aprovar, "Payment approved successfully")
}

// RejeitarPagamento rejects a pending claim
// @Summary Reject payment
// @Tags pagamentos
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} utils.APIResponse{data=models.Pagamento}
// @Failure 404 {object} utils.APIResponse "Payment not found"
// @Failure 409 {object} utils.APIResponse "Payment already reviewed"
// @Router /api/v1/pagamentos/{id}/rejeitar [post]
func (h *PagamentoHandler) RejeitarPagamento(c *gin.Context) {
	h.revisar(c, h.pagamentoService.Rejeitar, "Payment rejected successfully")
}

func (h *PagamentoHandler) revisar(c *gin.Context, review func(uint) (*models.Pagamento, error), successMessage string) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid payment ID", err)
		return
	}

	pagamento, err := review(id)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFoundResponse(c, "Payment not found")
		case errors.Is(err, service.ErrPagamentoJaRevisado):
			utils.ConflictResponse(c, "Payment already reviewed", err)
		default:
			h.logger.WithError(err).Error("Failed to review payment")
			utils.InternalServerErrorResponse(c, "Failed to review payment", err)
		}
		return
	}

	utils.SuccessResponse(c, successMessage, pagamento)
}

// GetPagamentosByPeriodo lists a period's payment claims
// @Summary List period payments
// @Tags pagamentos
// @Produce json
// @Param id path int true "Period ID"
// @Success 200 {object} utils.APIResponse{data=[]models.Pagamento}
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/periodos/{id}/pagamentos [get]
func (h *PagamentoHandler) GetPagamentosByPeriodo(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid period ID", err)
		return
	}

	pagamentos, err := h.pagamentoService.GetByPeriodo(id)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list payments")
		utils.InternalServerErrorResponse(c, "Failed to list payments", err)
		return
	}

	utils.SuccessResponse(c, "Payments retrieved successfully", pagamentos)
}
