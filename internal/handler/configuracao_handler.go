package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"agua-be-svc/internal/service"
	"agua-be-svc/internal/tariff"
	"agua-be-svc/pkg/logger"
	"agua-be-svc/pkg/utils"
)

// ConfiguracaoHandler handles configuration HTTP requests
type ConfiguracaoHandler struct {
	configService service.ConfiguracaoService
	logger        *logger.Logger
}

// NewConfiguracaoHandler creates a new ConfiguracaoHandler instance
func NewConfiguracaoHandler(configService service.ConfiguracaoService, logger *logger.Logger) *ConfiguracaoHandler {
	return &ConfiguracaoHandler{
		configService: configService,
		logger:        logger,
	}
}

// GetConfiguracao retrieves the active configuration
// @Summary Get configuration
// @Tags configuracoes
// @Produce json
// @Success 200 {object} utils.APIResponse{data=models.Configuracao}
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/configuracoes [get]
func (h *ConfiguracaoHandler) GetConfiguracao(c *gin.Context) {
	config, err := h.configService.Get()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get configuration")
		utils.InternalServerErrorResponse(c, "Failed to get configuration", err)
		return
	}

	utils.SuccessResponse(c, "Configuration retrieved successfully", config)
}

// UpdateConfiguracao saves the configuration
// @Summary Update configuration
// @Description Saves association details and the tariff schedule. An invalid schedule is rejected with the list of problems.
// @Tags configuracoes
// @Accept json
// @Produce json
// @Param request body service.ConfiguracaoRequest true "Configuration data"
// @Success 200 {object} utils.APIResponse{data=models.Configuracao}
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 422 {object} utils.APIResponse "Invalid tariff schedule"
// @Router /api/v1/configuracoes [put]
func (h *ConfiguracaoHandler) UpdateConfiguracao(c *gin.Context) {
	var req service.ConfiguracaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	config, err := h.configService.Update(&req)
	if err != nil {
		var cfgErr *tariff.ConfigError
		if errors.As(err, &cfgErr) {
			utils.UnprocessableEntityResponse(c, "Invalid tariff schedule", err)
			return
		}
		h.logger.WithError(err).Error("Failed to update configuration")
		utils.BadRequestResponse(c, "Failed to update configuration", err)
		return
	}

	utils.SuccessResponse(c, "Configuration updated successfully", config)
}
