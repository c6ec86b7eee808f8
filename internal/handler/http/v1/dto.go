package v1

import (
	"time"

	"github.com/google/uuid"
)

// WebhookEnvelope - sobre de notificación entrante de la API de WhatsApp Cloud
// @Description Sobre de notificación entrante de la API de WhatsApp Cloud
type WebhookEnvelope struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	ID      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Field string       `json:"field"`
	Value WebhookValue `json:"value"`
}

type WebhookValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Messages         []WebhookMessage `json:"messages"`
}

type WebhookMessage struct {
	From      string        `json:"from"`
	ID        string        `json:"id"`
	Timestamp string        `json:"timestamp"`
	Type      string        `json:"type"`
	Audio     *WebhookAudio `json:"audio,omitempty"`
}

type WebhookAudio struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type"`
}

// QueryRequest DTO para una consulta RAG en lenguaje natural
// @Description DTO para una consulta RAG en lenguaje natural
type QueryRequest struct {
	Query string `json:"query" validate:"required,min=3"`
}

// RelatedReportResponse - reporte recuperado con su puntaje de similitud
// @Description Reporte recuperado con su puntaje de similitud
type RelatedReportResponse struct {
	Report     *ReportResponse `json:"report"`
	Similarity float64         `json:"similarity"`
}

// QueryResponse DTO de la respuesta del motor RAG
// @Description DTO de la respuesta del motor RAG
type QueryResponse struct {
	Answer         string                   `json:"answer"`
	RelatedReports []*RelatedReportResponse `json:"relatedReports"`
	Sources        []uuid.UUID              `json:"sources"`
}

// DistributeAlertsRequest DTO para disparar la distribución de alertas de un reporte
// @Description DTO para disparar la distribución de alertas de un reporte
type DistributeAlertsRequest struct {
	ReporteID string `json:"reporteId" validate:"required,uuid"`
}

// DistributeAlertsResponse DTO con el número de alertas despachadas
// @Description DTO con el número de alertas despachadas
type DistributeAlertsResponse struct {
	Success    bool `json:"success"`
	AlertsSent int  `json:"alertsSent"`
}

// ReportResponse DTO de un reporte de emergencia
// @Description DTO de un reporte de emergencia
type ReportResponse struct {
	ID                      uuid.UUID `json:"id"`
	TelefonoReportante      string    `json:"telefono_reportante"`
	Transcripcion           string    `json:"transcripcion"`
	ConfianzaTranscripcion  float64   `json:"confianza_transcripcion"`
	TipoEmergencia          string    `json:"tipo_emergencia"`
	Subtipo                 string    `json:"subtipo,omitempty"`
	Ubicacion               string    `json:"ubicacion"`
	Latitud                 *float64  `json:"latitud,omitempty"`
	Longitud                *float64  `json:"longitud,omitempty"`
	Municipio               string    `json:"municipio"`
	Severidad               string    `json:"severidad"`
	InfraestructuraAfectada []string  `json:"infraestructura_afectada"`
	ImpactoEstimado         string    `json:"impacto_estimado,omitempty"`
	AccionesInmediatas      []string  `json:"acciones_inmediatas"`
	Estado                  string    `json:"estado"`
	RevisionManual          bool      `json:"revision_manual"`
	FechaRecepcion          time.Time `json:"fecha_recepcion"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// ReportDetailResponse DTO de un reporte con sus intervenciones
// @Description DTO de un reporte con sus intervenciones
type ReportDetailResponse struct {
	Report         *ReportResponse         `json:"report"`
	Intervenciones []*InterventionResponse `json:"intervenciones"`
}

// ReportListResponse DTO de listado paginado de reportes
// @Description DTO de listado paginado de reportes
type ReportListResponse struct {
	Data     []*ReportResponse `json:"data"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// UpdateReportStatusRequest DTO para avanzar el estado de un reporte
// @Description DTO para avanzar el estado de un reporte
type UpdateReportStatusRequest struct {
	Estado string `json:"estado" validate:"required,oneof=pendiente en_proceso resuelto"`
}

// StatsResponse DTO con el conteo de reportes por estado
// @Description DTO con el conteo de reportes por estado
type StatsResponse struct {
	Pendiente int `json:"pendiente"`
	EnProceso int `json:"en_proceso"`
	Resuelto  int `json:"resuelto"`
	Total     int `json:"total"`
}

// CreateInterventionRequest DTO para crear una intervención sobre un reporte
// @Description DTO para crear una intervención sobre un reporte
type CreateInterventionRequest struct {
	ReporteID   string `json:"reporteId" validate:"required,uuid"`
	Personal    string `json:"personal" validate:"required,min=2,max=255"`
	Descripcion string `json:"descripcion,omitempty"`
	Notas       string `json:"notas,omitempty"`
}

// UpdateInterventionRequest DTO para avanzar el estado de una intervención
// @Description DTO para avanzar el estado de una intervención
type UpdateInterventionRequest struct {
	Estado string `json:"estado" validate:"required,oneof=pendiente en_proceso completada"`
	Notas  string `json:"notas,omitempty"`
}

// InterventionResponse DTO de una intervención
// @Description DTO de una intervención
type InterventionResponse struct {
	ID                int64      `json:"id"`
	ReporteID         uuid.UUID  `json:"reporteId"`
	Personal          string     `json:"personal"`
	Descripcion       string     `json:"descripcion,omitempty"`
	Estado            string     `json:"estado"`
	FechaAsignacion   time.Time  `json:"fecha_asignacion"`
	FechaFinalizacion *time.Time `json:"fecha_finalizacion,omitempty"`
	Notas             string     `json:"notas,omitempty"`
}

// CreateRecipientRequest DTO para registrar un destinatario de alertas
// @Description DTO para registrar un destinatario de alertas
type CreateRecipientRequest struct {
	Nombre          string   `json:"nombre" validate:"required,min=2,max=255"`
	Canal           string   `json:"canal" validate:"required,oneof=email whatsapp"`
	Contacto        string   `json:"contacto" validate:"required"`
	Activo          *bool    `json:"activo,omitempty"`
	Severidades     []string `json:"severidades" validate:"dive,oneof=Baja Media Alta Crítica"`
	TiposEmergencia []string `json:"tipos_emergencia"`
}

// RecipientResponse DTO de un destinatario de alertas
// @Description DTO de un destinatario de alertas
type RecipientResponse struct {
	ID              uuid.UUID `json:"id"`
	Nombre          string    `json:"nombre"`
	Canal           string    `json:"canal"`
	Contacto        string    `json:"contacto"`
	Activo          bool      `json:"activo"`
	Severidades     []string  `json:"severidades"`
	TiposEmergencia []string  `json:"tipos_emergencia"`
	CreatedAt       time.Time `json:"created_at"`
}

// DispatchResponse DTO de un despacho de alerta
// @Description DTO de un despacho de alerta
type DispatchResponse struct {
	ID             uuid.UUID `json:"id"`
	ReporteID      uuid.UUID `json:"reporteId"`
	DestinatarioID uuid.UUID `json:"destinatarioId"`
	Canal          string    `json:"canal"`
	Estado         string    `json:"estado"`
	FechaEnvio     time.Time `json:"fecha_envio"`
}

// CreateHistoricoRequest DTO para registrar un punto histórico de riesgo
// @Description DTO para registrar un punto histórico de riesgo
type CreateHistoricoRequest struct {
	Direccion     string   `json:"direccion" validate:"required,min=3,max=500"`
	Barrio        string   `json:"barrio,omitempty"`
	Comuna        string   `json:"comuna,omitempty"`
	Latitud       *float64 `json:"latitud,omitempty" validate:"omitempty,latitude"`
	Longitud      *float64 `json:"longitud,omitempty" validate:"omitempty,longitude"`
	Prioridad     string   `json:"prioridad,omitempty"`
	Observaciones string   `json:"observaciones,omitempty"`
}

// HistoricoResponse DTO de un registro histórico
// @Description DTO de un registro histórico
type HistoricoResponse struct {
	ID            int64     `json:"id"`
	Direccion     string    `json:"direccion"`
	Barrio        string    `json:"barrio,omitempty"`
	Comuna        string    `json:"comuna,omitempty"`
	Latitud       *float64  `json:"latitud,omitempty"`
	Longitud      *float64  `json:"longitud,omitempty"`
	Prioridad     string    `json:"prioridad,omitempty"`
	Observaciones string    `json:"observaciones,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// HistoricoListResponse DTO de listado paginado del histórico
// @Description DTO de listado paginado del histórico
type HistoricoListResponse struct {
	Data     []*HistoricoResponse `json:"data"`
	Total    int                  `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
}
