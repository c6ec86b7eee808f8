package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registra todas las rutas del API v1.
// El webhook de WhatsApp queda fuera de la autenticación: Meta no envía API key.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Webhook de mensajería (verificación y recepción)
	api.GET("/webhooks/whatsapp", h.verifyWebhook)
	api.POST("/webhooks/whatsapp", h.receiveWebhook)

	// Rutas Health-check
	api.GET("/system/health", h.healthCheck)

	// Rutas del panel, protegidas por API key cuando hay llaves configuradas
	panel := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		panel.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	reportes := panel.Group("/reportes")
	{
		reportes.GET("", h.listReports)
		reportes.GET("/stats", h.getStats)
		reportes.GET("/:id", h.getReport)
		reportes.PATCH("/:id/estado", h.updateReportStatus)
		reportes.GET("/:id/alertas", h.listDispatches)
	}

	intervenciones := panel.Group("/intervenciones")
	{
		intervenciones.POST("", h.createIntervention)
		intervenciones.PATCH("/:id", h.updateIntervention)
	}

	destinatarios := panel.Group("/destinatarios")
	{
		destinatarios.GET("", h.listRecipients)
		destinatarios.POST("", h.createRecipient)
	}

	historico := panel.Group("/historico")
	{
		historico.GET("", h.listHistorico)
		historico.GET("/:id", h.getHistorico)
		historico.POST("", h.createHistorico)
	}

	// Motor de consultas RAG y distribución manual de alertas
	panel.POST("/consultas/rag", h.ragQuery)
	panel.POST("/alertas/distribuir", h.distributeAlerts)
}
