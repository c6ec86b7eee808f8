package v1

import (
	"github.com/dagrd-medellin/emergency-pipeline/internal/models"
)

// ModelToReportResponse convierte el modelo de dominio en DTO de respuesta.
// El embedding nunca sale por la API.
func ModelToReportResponse(model *models.Report) *ReportResponse {
	return &ReportResponse{
		ID:                      model.ID,
		TelefonoReportante:      model.TelefonoReportante,
		Transcripcion:           model.Transcripcion,
		ConfianzaTranscripcion:  model.ConfianzaTranscripcion,
		TipoEmergencia:          string(model.TipoEmergencia),
		Subtipo:                 model.Subtipo,
		Ubicacion:               model.Ubicacion,
		Latitud:                 model.Latitud,
		Longitud:                model.Longitud,
		Municipio:               model.Municipio,
		Severidad:               string(model.Severidad),
		InfraestructuraAfectada: model.InfraestructuraAfectada,
		ImpactoEstimado:         model.ImpactoEstimado,
		AccionesInmediatas:      model.AccionesInmediatas,
		Estado:                  string(model.Estado),
		RevisionManual:          model.RevisionManual,
		FechaRecepcion:          model.FechaRecepcion,
		CreatedAt:               model.CreatedAt,
		UpdatedAt:               model.UpdatedAt,
	}
}

// ModelsToReportResponses convierte un slice de modelos en slice de DTO
func ModelsToReportResponses(models []*models.Report) []*ReportResponse {
	responses := make([]*ReportResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToReportResponse(model)
	}
	return responses
}

// MatchesToRelatedResponses convierte coincidencias de similitud en DTO
func MatchesToRelatedResponses(matches []*models.ReportMatch) []*RelatedReportResponse {
	responses := make([]*RelatedReportResponse, len(matches))
	for i, m := range matches {
		responses[i] = &RelatedReportResponse{
			Report:     ModelToReportResponse(m.Report),
			Similarity: m.Similarity,
		}
	}
	return responses
}

// ModelToInterventionResponse convierte una intervención en DTO
func ModelToInterventionResponse(model *models.Intervention) *InterventionResponse {
	return &InterventionResponse{
		ID:                model.ID,
		ReporteID:         model.ReporteID,
		Personal:          model.Personal,
		Descripcion:       model.Descripcion,
		Estado:            string(model.Estado),
		FechaAsignacion:   model.FechaAsignacion,
		FechaFinalizacion: model.FechaFinalizacion,
		Notas:             model.Notas,
	}
}

// ModelsToInterventionResponses convierte un slice de intervenciones en slice de DTO
func ModelsToInterventionResponses(models []*models.Intervention) []*InterventionResponse {
	responses := make([]*InterventionResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToInterventionResponse(model)
	}
	return responses
}

// DTOToRecipientModel convierte el DTO de creación en modelo de dominio.
// Un destinatario nuevo queda activo salvo indicación explícita.
func DTOToRecipientModel(dto CreateRecipientRequest) *models.AlertRecipient {
	activo := true
	if dto.Activo != nil {
		activo = *dto.Activo
	}
	severidades := make([]models.Severity, 0, len(dto.Severidades))
	for _, s := range dto.Severidades {
		severidades = append(severidades, models.Severity(s))
	}
	tipos := make([]models.EmergencyType, 0, len(dto.TiposEmergencia))
	for _, t := range dto.TiposEmergencia {
		tipos = append(tipos, models.ParseEmergencyType(t))
	}
	return &models.AlertRecipient{
		Nombre:          dto.Nombre,
		Canal:           models.AlertChannel(dto.Canal),
		Contacto:        dto.Contacto,
		Activo:          activo,
		Severidades:     severidades,
		TiposEmergencia: tipos,
	}
}

// ModelToRecipientResponse convierte un destinatario en DTO
func ModelToRecipientResponse(model *models.AlertRecipient) *RecipientResponse {
	severidades := make([]string, 0, len(model.Severidades))
	for _, s := range model.Severidades {
		severidades = append(severidades, string(s))
	}
	tipos := make([]string, 0, len(model.TiposEmergencia))
	for _, t := range model.TiposEmergencia {
		tipos = append(tipos, string(t))
	}
	return &RecipientResponse{
		ID:              model.ID,
		Nombre:          model.Nombre,
		Canal:           string(model.Canal),
		Contacto:        model.Contacto,
		Activo:          model.Activo,
		Severidades:     severidades,
		TiposEmergencia: tipos,
		CreatedAt:       model.CreatedAt,
	}
}

// ModelsToRecipientResponses convierte un slice de destinatarios en slice de DTO
func ModelsToRecipientResponses(models []*models.AlertRecipient) []*RecipientResponse {
	responses := make([]*RecipientResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToRecipientResponse(model)
	}
	return responses
}

// ModelsToDispatchResponses convierte despachos de alerta en DTO
func ModelsToDispatchResponses(models []*models.AlertDispatch) []*DispatchResponse {
	responses := make([]*DispatchResponse, len(models))
	for i, model := range models {
		responses[i] = &DispatchResponse{
			ID:             model.ID,
			ReporteID:      model.ReporteID,
			DestinatarioID: model.DestinatarioID,
			Canal:          string(model.Canal),
			Estado:         string(model.Estado),
			FechaEnvio:     model.FechaEnvio,
		}
	}
	return responses
}

// DTOToHistoricoModel convierte el DTO de creación en modelo de dominio
func DTOToHistoricoModel(dto CreateHistoricoRequest) *models.HistoricalRecord {
	return &models.HistoricalRecord{
		Direccion:     dto.Direccion,
		Barrio:        dto.Barrio,
		Comuna:        dto.Comuna,
		Latitud:       dto.Latitud,
		Longitud:      dto.Longitud,
		Prioridad:     dto.Prioridad,
		Observaciones: dto.Observaciones,
	}
}

// ModelToHistoricoResponse convierte un registro histórico en DTO
func ModelToHistoricoResponse(model *models.HistoricalRecord) *HistoricoResponse {
	return &HistoricoResponse{
		ID:            model.ID,
		Direccion:     model.Direccion,
		Barrio:        model.Barrio,
		Comuna:        model.Comuna,
		Latitud:       model.Latitud,
		Longitud:      model.Longitud,
		Prioridad:     model.Prioridad,
		Observaciones: model.Observaciones,
		CreatedAt:     model.CreatedAt,
	}
}

// ModelsToHistoricoResponses convierte un slice de registros históricos en slice de DTO
func ModelsToHistoricoResponses(models []*models.HistoricalRecord) []*HistoricoResponse {
	responses := make([]*HistoricoResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToHistoricoResponse(model)
	}
	return responses
}
