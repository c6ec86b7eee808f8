package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportStatus_CanTransitionTo(t *testing.T) {
	// El ciclo de vida solo avanza: pendiente → en_proceso → resuelto
	assert.True(t, EstadoPendiente.CanTransitionTo(EstadoEnProceso))
	assert.True(t, EstadoPendiente.CanTransitionTo(EstadoResuelto))
	assert.True(t, EstadoEnProceso.CanTransitionTo(EstadoResuelto))

	// Sin retrocesos ni transiciones al mismo estado
	assert.False(t, EstadoEnProceso.CanTransitionTo(EstadoPendiente))
	assert.False(t, EstadoResuelto.CanTransitionTo(EstadoEnProceso))
	assert.False(t, EstadoResuelto.CanTransitionTo(EstadoPendiente))
	assert.False(t, EstadoPendiente.CanTransitionTo(EstadoPendiente))

	// Valores fuera del catálogo
	assert.False(t, EstadoPendiente.CanTransitionTo(ReportStatus("archivado")))
	assert.False(t, ReportStatus("archivado").CanTransitionTo(EstadoResuelto))
}

func TestInterventionStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, IntervencionPendiente.CanTransitionTo(IntervencionEnProceso))
	assert.True(t, IntervencionEnProceso.CanTransitionTo(IntervencionCompletada))
	assert.False(t, IntervencionCompletada.CanTransitionTo(IntervencionPendiente))
	assert.False(t, IntervencionEnProceso.CanTransitionTo(IntervencionEnProceso))
}

func TestParseEmergencyType(t *testing.T) {
	// Valores del catálogo se conservan
	assert.Equal(t, TipoDeslizamiento, ParseEmergencyType("Deslizamiento"))
	assert.Equal(t, TipoInundacion, ParseEmergencyType("Inundación"))
	assert.Equal(t, TipoColapsoVial, ParseEmergencyType("Colapso Vial"))

	// Cualquier valor desconocido cae en Otro
	assert.Equal(t, TipoOtro, ParseEmergencyType("terremoto"))
	assert.Equal(t, TipoOtro, ParseEmergencyType(""))
	assert.Equal(t, TipoOtro, ParseEmergencyType("deslizamiento")) // sensible a mayúsculas
}

func TestParseSeverity(t *testing.T) {
	assert.Equal(t, SeveridadCritica, ParseSeverity("Crítica"))
	assert.Equal(t, SeveridadBaja, ParseSeverity("Baja"))

	// Valores desconocidos caen en Media
	assert.Equal(t, SeveridadMedia, ParseSeverity("urgente"))
	assert.Equal(t, SeveridadMedia, ParseSeverity(""))
}

func TestAlertRecipient_Matches(t *testing.T) {
	recipient := &AlertRecipient{
		Activo:          true,
		Severidades:     []Severity{SeveridadAlta, SeveridadCritica},
		TiposEmergencia: []EmergencyType{TipoDeslizamiento},
	}

	// Coincide por severidad o por tipo (OR)
	assert.True(t, recipient.Matches(SeveridadAlta, TipoGrieta))
	assert.True(t, recipient.Matches(SeveridadBaja, TipoDeslizamiento))
	assert.False(t, recipient.Matches(SeveridadBaja, TipoGrieta))

	// Un destinatario inactivo nunca es elegible
	recipient.Activo = false
	assert.False(t, recipient.Matches(SeveridadCritica, TipoDeslizamiento))
}
