package models

import (
	"time"

	"github.com/google/uuid"
)

// InterventionStatus - ciclo de vida de una intervención, solo hacia adelante
type InterventionStatus string

const (
	IntervencionPendiente  InterventionStatus = "pendiente"
	IntervencionEnProceso  InterventionStatus = "en_proceso"
	IntervencionCompletada InterventionStatus = "completada"
)

var interventionStatusRank = map[InterventionStatus]int{
	IntervencionPendiente:  0,
	IntervencionEnProceso:  1,
	IntervencionCompletada: 2,
}

func (s InterventionStatus) Valid() bool {
	_, ok := interventionStatusRank[s]
	return ok
}

// CanTransitionTo indica si la transición de estado es válida (solo hacia adelante)
func (s InterventionStatus) CanTransitionTo(next InterventionStatus) bool {
	cur, ok := interventionStatusRank[s]
	if !ok {
		return false
	}
	nxt, ok := interventionStatusRank[next]
	if !ok {
		return false
	}
	return nxt > cur
}

// Intervention - asignación de personal de campo a un reporte.
// Su creación pasa el reporte padre a en_proceso.
type Intervention struct {
	ID                int64              `json:"id"`
	ReporteID         uuid.UUID          `json:"reporte_id"`
	Personal          string             `json:"personal"`
	Descripcion       string             `json:"descripcion"`
	Estado            InterventionStatus `json:"estado"`
	FechaAsignacion   time.Time          `json:"fecha_asignacion"`
	FechaFinalizacion *time.Time         `json:"fecha_finalizacion,omitempty"`
	Notas             string             `json:"notas,omitempty"`
}
