package models

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyType - taxonomía canónica de tipos de emergencia.
// La traducción a etiquetas de UI ocurre fuera de este servicio.
type EmergencyType string

const (
	TipoDeslizamiento   EmergencyType = "Deslizamiento"
	TipoInundacion      EmergencyType = "Inundación"
	TipoColapsoVial     EmergencyType = "Colapso Vial"
	TipoDanoEstructural EmergencyType = "Daño Estructural"
	TipoGrieta          EmergencyType = "Grieta"
	TipoOtro            EmergencyType = "Otro"
)

// EmergencyTypes contiene todos los tipos válidos, en orden de catálogo
var EmergencyTypes = []EmergencyType{
	TipoDeslizamiento,
	TipoInundacion,
	TipoColapsoVial,
	TipoDanoEstructural,
	TipoGrieta,
	TipoOtro,
}

func (t EmergencyType) Valid() bool {
	for _, v := range EmergencyTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ParseEmergencyType normaliza el valor devuelto por el extractor.
// Un valor fuera del catálogo cae en TipoOtro.
func ParseEmergencyType(s string) EmergencyType {
	t := EmergencyType(s)
	if t.Valid() {
		return t
	}
	return TipoOtro
}

// Severity - niveles canónicos de gravedad
type Severity string

const (
	SeveridadBaja    Severity = "Baja"
	SeveridadMedia   Severity = "Media"
	SeveridadAlta    Severity = "Alta"
	SeveridadCritica Severity = "Crítica"
)

var Severities = []Severity{SeveridadBaja, SeveridadMedia, SeveridadAlta, SeveridadCritica}

func (s Severity) Valid() bool {
	for _, v := range Severities {
		if s == v {
			return true
		}
	}
	return false
}

// ParseSeverity normaliza la gravedad extraída; valores desconocidos caen en Media
func ParseSeverity(s string) Severity {
	sev := Severity(s)
	if sev.Valid() {
		return sev
	}
	return SeveridadMedia
}

// ReportStatus - ciclo de vida de un reporte. Las transiciones solo avanzan,
// no existe una acción de reapertura.
type ReportStatus string

const (
	EstadoPendiente ReportStatus = "pendiente"
	EstadoEnProceso ReportStatus = "en_proceso"
	EstadoResuelto  ReportStatus = "resuelto"
)

var reportStatusRank = map[ReportStatus]int{
	EstadoPendiente: 0,
	EstadoEnProceso: 1,
	EstadoResuelto:  2,
}

func (s ReportStatus) Valid() bool {
	_, ok := reportStatusRank[s]
	return ok
}

// CanTransitionTo indica si la transición de estado es válida (solo hacia adelante)
func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	cur, ok := reportStatusRank[s]
	if !ok {
		return false
	}
	nxt, ok := reportStatusRank[next]
	if !ok {
		return false
	}
	return nxt > cur
}

// Report representa un reporte de emergencia procesado a partir de un audio de WhatsApp.
// El registro solo existe con transcripción y embedding completos: el INSERT del
// pipeline es la frontera de durabilidad.
type Report struct {
	ID                      uuid.UUID     `json:"id"`
	TelefonoReportante      string        `json:"telefono_reportante"`
	AudioRef                string        `json:"audio_ref"`
	Transcripcion           string        `json:"transcripcion"`
	ConfianzaTranscripcion  float64       `json:"confianza_transcripcion"`
	TipoEmergencia          EmergencyType `json:"tipo_emergencia"`
	Subtipo                 string        `json:"subtipo,omitempty"`
	Ubicacion               string        `json:"ubicacion"`
	Latitud                 *float64      `json:"latitud,omitempty"`
	Longitud                *float64      `json:"longitud,omitempty"`
	Municipio               string        `json:"municipio"`
	Severidad               Severity      `json:"severidad"`
	InfraestructuraAfectada []string      `json:"infraestructura_afectada"`
	ImpactoEstimado         string        `json:"impacto_estimado,omitempty"`
	AccionesInmediatas      []string      `json:"acciones_inmediatas"`
	Estado                  ReportStatus  `json:"estado"`
	RevisionManual          bool          `json:"revision_manual"`
	Embedding               []float32     `json:"-"`
	FechaRecepcion          time.Time     `json:"fecha_recepcion"`
	CreatedAt               time.Time     `json:"created_at"`
	UpdatedAt               time.Time     `json:"updated_at"`
}

// ReportMatch es un reporte recuperado por búsqueda de similitud junto con su puntaje
type ReportMatch struct {
	Report     *Report `json:"report"`
	Similarity float64 `json:"similarity"`
}

// ReportFilter - filtros de listado del panel
type ReportFilter struct {
	Estado      ReportStatus
	Severidad   Severity
	Tipo        EmergencyType
	Municipio   string
	FechaInicio *time.Time
	FechaFin    *time.Time
	Busqueda    string
	Page        int
	PageSize    int
}
