package whatsapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dagrd-medellin/emergency-pipeline/internal/models"
)

// Notifier entrega alertas a destinatarios. Los destinatarios con canal
// whatsapp reciben un mensaje de texto por la Graph API; el canal email queda
// registrado en el log.
// TODO: conectar el envío real de correo para canal email cuando la entidad
// defina el servidor SMTP institucional.
type Notifier struct {
	client *Client
	logger *logrus.Logger
}

// NewNotifier crea un nuevo Notifier sobre el cliente de WhatsApp
func NewNotifier(client *Client, logger *logrus.Logger) *Notifier {
	return &Notifier{client: client, logger: logger}
}

// Notify envía la alerta de un reporte a un destinatario
func (n *Notifier) Notify(ctx context.Context, recipient *models.AlertRecipient, report *models.Report) error {
	switch recipient.Canal {
	case models.CanalWhatsApp:
		if !n.client.Configured() {
			return fmt.Errorf("whatsapp channel unavailable: access token not configured")
		}
		return n.client.SendTextMessage(ctx, recipient.Contacto, alertMessage(report))
	case models.CanalEmail:
		n.logger.WithFields(logrus.Fields{
			"recipient": recipient.Contacto,
			"report_id": report.ID,
		}).Info("Email delivery not implemented, alert logged only")
		return nil
	default:
		return fmt.Errorf("unknown alert channel %q", recipient.Canal)
	}
}

// alertMessage arma el texto de la alerta en español
func alertMessage(r *models.Report) string {
	var b strings.Builder
	b.WriteString("🚨 ALERTA DAGRD\n")
	b.WriteString(fmt.Sprintf("Tipo: %s\n", r.TipoEmergencia))
	b.WriteString(fmt.Sprintf("Severidad: %s\n", r.Severidad))
	b.WriteString(fmt.Sprintf("Ubicación: %s, %s\n", r.Ubicacion, r.Municipio))
	if r.ImpactoEstimado != "" {
		b.WriteString(fmt.Sprintf("Impacto estimado: %s\n", r.ImpactoEstimado))
	}
	b.WriteString(fmt.Sprintf("Reporte: %s", r.ID))
	return b.String()
}
