package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"agua-be-svc/internal/service"
	"agua-be-svc/pkg/logger"
	"agua-be-svc/pkg/utils"
)

// MoradorHandler handles resident-related HTTP requests
type MoradorHandler struct {
	moradorService service.MoradorService
	logger         *logger.Logger
}

// NewMoradorHandler creates a new MoradorHandler instance
func NewMoradorHandler(moradorService service.MoradorService, logger *logger.Logger) *MoradorHandler {
	return &MoradorHandler{
		moradorService: moradorService,
		logger:         logger,
	}
}

// GetMoradores lists residents
// @Summary List residents
// @Description List residents with optional search on name or chácara number
// @Tags moradores
// @Produce json
// @Param search query string false "Search by name or chácara number"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.PaginatedResponse
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/moradores [get]
func (h *MoradorHandler) GetMoradores(c *gin.Context) {
	search := c.Query("search")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	moradores, total, err := h.moradorService.GetAll(search, page, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list residents")
		utils.InternalServerErrorResponse(c, "Failed to list residents", err)
		return
	}

	utils.PaginatedSuccessResponse(c, "Residents retrieved successfully", moradores, page, limit, total)
}

// GetMorador retrieves one resident
// @Summary Get resident
// @Tags moradores
// @Produce json
// @Param id path int true "Resident ID"
// @Success 200 {object} utils.APIResponse{data=models.Morador}
// @Failure 404 {object} utils.APIResponse "Resident not found"
// @Router /api/v1/moradores/{id} [get]
func (h *MoradorHandler) GetMorador(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid resident ID", err)
		return
	}

	morador, err := h.moradorService.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Resident not found")
			return
		}
		h.logger.WithError(err).Error("Failed to get resident")
		utils.InternalServerErrorResponse(c, "Failed to get resident", err)
		return
	}

	utils.SuccessResponse(c, "Resident retrieved successfully", morador)
}

// CreateMorador registers a new resident
// @Summary Create resident
// @Tags moradores
// @Accept json
// @Produce json
// @Param request body service.MoradorRequest true "Resident data"
// @Success 201 {object} utils.APIResponse{data=models.Morador}
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 409 {object} utils.APIResponse "Chácara number already registered"
// @Router /api/v1/moradores [post]
func (h *MoradorHandler) CreateMorador(c *gin.Context) {
	var req service.MoradorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	morador, err := h.moradorService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChacaraDuplicada):
			utils.ConflictResponse(c, "Chácara number already registered", err)
		case errors.Is(err, service.ErrTelefoneInvalido):
			utils.BadRequestResponse(c, "Invalid phone number", err)
		default:
			h.logger.WithError(err).Error("Failed to create resident")
			utils.InternalServerErrorResponse(c, "Failed to create resident", err)
		}
		return
	}

	utils.CreatedResponse(c, "Resident created successfully", morador)
}

// UpdateMorador modifies a resident
// @Summary Update resident
// @Tags moradores
// @Accept json
// @Produce json
// @Param id path int true "Resident ID"
// @Param request body service.MoradorRequest true "Resident data"
// @Success 200 {object} utils.APIResponse{data=models.Morador}
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Resident not found"
// @Failure 409 {object} utils.APIResponse "Chácara number already registered"
// @Router /api/v1/moradores/{id} [put]
func (h *MoradorHandler) UpdateMorador(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid resident ID", err)
		return
	}

	var req service.MoradorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	morador, err := h.moradorService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFoundResponse(c, "Resident not found")
		case errors.Is(err, service.ErrChacaraDuplicada):
			utils.ConflictResponse(c, "Chácara number already registered", err)
		case errors.Is(err, service.ErrTelefoneInvalido):
			utils.BadRequestResponse(c, "Invalid phone number", err)
		default:
			h.logger.WithError(err).Error("Failed to update resident")
			utils.InternalServerErrorResponse(c, "Failed to update resident", err)
		}
		return
	}

	utils.SuccessResponse(c, "Resident updated successfully", morador)
}

// DesativarMorador deactivates a resident, keeping their billing history
// @Summary Deactivate resident
// @Tags moradores
// @Produce json
// @Param id path int true "Resident ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse "Resident not found"
// @Router /api/v1/moradores/{id} [delete]
func (h *MoradorHandler) DesativarMorador(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid resident ID", err)
		return
	}

	if err := h.moradorService.Desativar(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Resident not found")
			return
		}
		h.logger.WithError(err).Error("Failed to deactivate resident")
		utils.InternalServerErrorResponse(c, "Failed to deactivate resident", err)
		return
	}

	utils.SuccessResponse(c, "Resident deactivated successfully", nil)
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
