package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"agua-be-svc/internal/middleware"
	"agua-be-svc/internal/service"
	"agua-be-svc/pkg/logger"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	moradorService service.MoradorService,
	periodoService service.PeriodoService,
	billingService service.BillingService,
	pagamentoService service.PagamentoService,
	configService service.ConfiguracaoService,
	notificationService service.NotificationService,
	resumoService service.ResumoService,
	exportService service.ExportService,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(authService, logger)
	moradorHandler := NewMoradorHandler(moradorService, logger)
	periodoHandler := NewPeriodoHandler(periodoService, billingService, resumoService, exportService, logger)
	pagamentoHandler := NewPagamentoHandler(pagamentoService, logger)
	configHandler := NewConfiguracaoHandler(configService, logger)
	cobrancaHandler := NewCobrancaHandler(notificationService, logger)
	portalHandler := NewPortalHandler(moradorService, billingService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Public routes: resident portal and payment claims
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/portal/:numero_chacara", portalHandler.GetPortal)
		v1.GET("/consumos/:id/detalhamento", portalHandler.GetDetalhamento)
		v1.POST("/pagamentos", pagamentoHandler.DeclararPagamento)

		// Administrator routes
		admin := v1.Group("")
		admin.Use(middleware.AuthRequired(jwtSecret))
		{
			// Resident routes
			moradores := admin.Group("/moradores")
			{
				moradores.GET("", moradorHandler.GetMoradores)
				moradores.POST("", moradorHandler.CreateMorador)
				moradores.GET("/:id", moradorHandler.GetMorador)
				moradores.PUT("/:id", moradorHandler.UpdateMorador)
				moradores.DELETE("/:id", moradorHandler.DesativarMorador)
			}

			// Period routes
			periodos := admin.Group("/periodos")
			{
				periodos.GET("", periodoHandler.GetPeriodos)
				periodos.POST("", periodoHandler.CreatePeriodo)
				periodos.GET("/:id", periodoHandler.GetPeriodo)
				periodos.PUT("/:id/despesas", periodoHandler.UpdateDespesas)
				periodos.POST("/:id/recalcular", periodoHandler.Recalcular)
				periodos.POST("/:id/fechar", periodoHandler.Fechar)
				periodos.POST("/:id/reabrir", periodoHandler.Reabrir)
				periodos.GET("/:id/consumos", periodoHandler.GetConsumos)
				periodos.GET("/:id/resumo", periodoHandler.GetResumo)
				periodos.GET("/:id/export", periodoHandler.ExportExcel)
				periodos.GET("/:id/pagamentos", pagamentoHandler.GetPagamentosByPeriodo)
				periodos.GET("/:id/cobrancas-whatsapp", cobrancaHandler.GetCobrancasWhatsApp)
				periodos.POST("/:id/cobrancas-whatsapp/:morador_id", cobrancaHandler.MarcarEnviado)
			}

			// Payment review routes
			pagamentos := admin.Group("/pagamentos")
			{
				pagamentos.POST("/:id/aprovar", pagamentoHandler.AprovarPagamento)
				pagamentos.POST("/:id/rejeitar", pagamentoHandler.RejeitarPagamento)
			}

			// Configuration routes
			configuracoes := admin.Group("/configuracoes")
			{
				configuracoes.GET("", configHandler.GetConfiguracao)
				configuracoes.PUT("", configHandler.UpdateConfiguracao)
			}
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Agua Backend Service",
	})
}
