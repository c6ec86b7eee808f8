package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dagrd-medellin/emergency-pipeline/internal/service"
)

// @Summary Verify the WhatsApp webhook
// @Description Echo the challenge when Meta verifies the webhook subscription
// @Tags Webhook
// @Produce plain
// @Param hub.mode query string true "Subscription mode"
// @Param hub.verify_token query string true "Verification token"
// @Param hub.challenge query string true "Challenge to echo back"
// @Success 200 {string} string "Challenge"
// @Failure 403 {object} map[string]string "Verification failed"
// @Router /webhooks/whatsapp [get]
func (h *Handler) verifyWebhook(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token != "" && token == h.cfg.WhatsAppVerifyToken {
		h.logger.Info("Webhook verified successfully")
		c.String(http.StatusOK, challenge)
		return
	}

	h.logger.WithField("mode", mode).Warn("Webhook verification failed")
	c.JSON(http.StatusForbidden, gin.H{"error": "verification failed"})
}

// @Summary Receive WhatsApp messages
// @Description Process inbound WhatsApp notifications. Voice messages run the full ingestion pipeline, everything else is acknowledged and ignored.
// @Tags Webhook
// @Accept json
// @Produce json
// @Param envelope body WebhookEnvelope true "WhatsApp Cloud API notification"
// @Success 200 {object} map[string]string "Processing result"
// @Failure 500 {object} map[string]string "Pipeline failure"
// @Router /webhooks/whatsapp [post]
func (h *Handler) receiveWebhook(c *gin.Context) {
	var envelope WebhookEnvelope
	log := h.logger.WithField("method", "receiveWebhook")

	if err := c.ShouldBindJSON(&envelope); err != nil {
		log.WithError(err).Warn("Failed to bind webhook envelope")
		// Meta reintenta ante errores: un sobre malformado se confirma igual
		c.JSON(http.StatusOK, gin.H{"status": "no_messages"})
		return
	}

	msg, ok := firstMessage(envelope)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"status": "no_messages"})
		return
	}

	// Solo los mensajes de voz entran al pipeline; el resto se confirma sin procesar
	if msg.Type != "audio" || msg.Audio == nil {
		log.WithField("type", msg.Type).Info("Ignoring non-audio message")
		c.JSON(http.StatusOK, gin.H{"status": "ignored_non_audio"})
		return
	}

	report, err := h.ingestionService.ProcessAudioMessage(c.Request.Context(), service.InboundAudioMessage{
		From:      msg.From,
		MediaID:   msg.Audio.ID,
		Timestamp: parseWebhookTimestamp(msg.Timestamp),
	})
	if err != nil {
		log.WithError(err).Error("Audio message pipeline failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error procesando el mensaje",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"reportId": report.ID,
	})
}

// firstMessage extrae el primer mensaje del sobre de notificación
func firstMessage(envelope WebhookEnvelope) (WebhookMessage, bool) {
	for _, entry := range envelope.Entry {
		for _, change := range entry.Changes {
			if len(change.Value.Messages) > 0 {
				return change.Value.Messages[0], true
			}
		}
	}
	return WebhookMessage{}, false
}

// parseWebhookTimestamp convierte el timestamp unix del sobre; si es inválido
// se usa la hora de recepción
func parseWebhookTimestamp(s string) time.Time {
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil && secs > 0 {
		return time.Unix(secs, 0).UTC()
	}
	return time.Now().UTC()
}
