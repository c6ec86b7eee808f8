package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertChannel - canal de contacto de un destinatario
type AlertChannel string

const (
	CanalEmail    AlertChannel = "email"
	CanalWhatsApp AlertChannel = "whatsapp"
)

// AlertRecipient - destinatario configurado para recibir alertas
type AlertRecipient struct {
	ID              uuid.UUID       `json:"id"`
	Nombre          string          `json:"nombre"`
	Canal           AlertChannel    `json:"canal"`
	Contacto        string          `json:"contacto"`
	Activo          bool            `json:"activo"`
	Severidades     []Severity      `json:"severidades"`
	TiposEmergencia []EmergencyType `json:"tipos_emergencia"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Matches indica si el destinatario es elegible para un reporte:
// activo Y (severidad suscrita O tipo suscrito)
func (r *AlertRecipient) Matches(severidad Severity, tipo EmergencyType) bool {
	if !r.Activo {
		return false
	}
	for _, s := range r.Severidades {
		if s == severidad {
			return true
		}
	}
	for _, t := range r.TiposEmergencia {
		if t == tipo {
			return true
		}
	}
	return false
}

// DispatchState - estado de entrega de una alerta individual
type DispatchState string

const (
	AlertaPendiente DispatchState = "pendiente"
	AlertaEnviada   DispatchState = "enviado"
	AlertaFallida   DispatchState = "fallido"
)

// AlertDispatch vincula un reporte con un destinatario. Se crea en bloque con
// estado pendiente y solo muta su campo de estado tras el intento de entrega.
type AlertDispatch struct {
	ID             uuid.UUID     `json:"id"`
	ReporteID      uuid.UUID     `json:"reporte_id"`
	DestinatarioID uuid.UUID     `json:"destinatario_id"`
	Canal          AlertChannel  `json:"canal"`
	Estado         DispatchState `json:"estado"`
	FechaEnvio     time.Time     `json:"fecha_envio"`
}
