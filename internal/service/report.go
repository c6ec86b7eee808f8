package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dagrd-medellin/emergency-pipeline/internal/models"
)

// ReportRepository define el contrato de persistencia de reportes
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, estado models.ReportStatus) error
	List(ctx context.Context, filter models.ReportFilter) ([]*models.Report, int, error)
	SearchSimilar(ctx context.Context, embedding []float32, k int, threshold float64) ([]*models.ReportMatch, error)
	CountByStatus(ctx context.Context) (map[models.ReportStatus]int, error)
	GetReportFromCache(ctx context.Context, id uuid.UUID) (*models.Report, error)
	SetReportCache(ctx context.Context, report *models.Report) error
	InvalidateReportCache(ctx context.Context, id uuid.UUID) error
}

// InterventionRepository define el contrato de persistencia de intervenciones
type InterventionRepository interface {
	Create(ctx context.Context, intervention *models.Intervention) error
	GetByID(ctx context.Context, id int64) (*models.Intervention, error)
	Update(ctx context.Context, intervention *models.Intervention) error
	ListByReport(ctx context.Context, reporteID uuid.UUID) ([]*models.Intervention, error)
}

// HistoryRepository define el contrato de persistencia del histórico importado
type HistoryRepository interface {
	Create(ctx context.Context, record *models.HistoricalRecord) error
	GetByID(ctx context.Context, id int64) (*models.HistoricalRecord, error)
	List(ctx context.Context, page, pageSize int) ([]*models.HistoricalRecord, int, error)
}

// ReportService - lógica de negocio del panel: reportes, intervenciones e histórico
type ReportService interface {
	GetReport(ctx context.Context, id uuid.UUID) (*models.Report, []*models.Intervention, error)
	ListReports(ctx context.Context, filter models.ReportFilter) ([]*models.Report, int, error)
	UpdateReportStatus(ctx context.Context, id uuid.UUID, estado models.ReportStatus) error
	GetStats(ctx context.Context) (map[models.ReportStatus]int, error)
	CreateIntervention(ctx context.Context, intervention *models.Intervention) error
	UpdateIntervention(ctx context.Context, id int64, estado models.InterventionStatus, notas string) (*models.Intervention, error)
	ListHistorico(ctx context.Context, page, pageSize int) ([]*models.HistoricalRecord, int, error)
	GetHistorico(ctx context.Context, id int64) (*models.HistoricalRecord, error)
	CreateHistorico(ctx context.Context, record *models.HistoricalRecord) error
}

type reportService struct {
	reports       ReportRepository
	interventions InterventionRepository
	history       HistoryRepository
	logger        *logrus.Logger
}

func NewReportService(reports ReportRepository, interventions InterventionRepository, history HistoryRepository, logger *logrus.Logger) ReportService {
	return &reportService{
		reports:       reports,
		interventions: interventions,
		history:       history,
		logger:        logger,
	}
}

// GetReport obtiene un reporte con sus intervenciones, pasando por el caché
func (s *reportService) GetReport(ctx context.Context, id uuid.UUID) (*models.Report, []*models.Intervention, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "GetReport",
		"reporte_id": id,
	})

	report, err := s.reports.GetReportFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Report cache lookup failed")
	}
	if report == nil {
		report, err = s.reports.GetByID(ctx, id)
		if err != nil {
			log.WithError(err).Error("Failed to get report from repository")
			return nil, nil, fmt.Errorf("service: could not get report: %w", err)
		}
		if err := s.reports.SetReportCache(ctx, report); err != nil {
			log.WithError(err).Warn("Failed to cache report")
		}
	}

	interventions, err := s.interventions.ListByReport(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to list interventions for report")
		return nil, nil, fmt.Errorf("service: could not list interventions: %w", err)
	}
	return report, interventions, nil
}

// ListReports devuelve reportes filtrados y paginados junto al total
func (s *reportService) ListReports(ctx context.Context, filter models.ReportFilter) ([]*models.Report, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "ListReports",
		"page":      filter.Page,
		"page_size": filter.PageSize,
	})

	reports, total, err := s.reports.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, 0, fmt.Errorf("service: could not list reports: %w", err)
	}

	log.WithField("count", len(reports)).Info("Reports listed successfully")
	return reports, total, nil
}

// UpdateReportStatus cambia el estado de un reporte aplicando la regla de
// avance estricto: un estado nunca retrocede porque no existe acción de reapertura
func (s *reportService) UpdateReportStatus(ctx context.Context, id uuid.UUID, estado models.ReportStatus) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "UpdateReportStatus",
		"reporte_id": id,
		"estado":     estado,
	})

	if !estado.Valid() {
		return fmt.Errorf("service: %w: %q", ErrInvalidStatus, estado)
	}

	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update status of a non-existent report")
		return fmt.Errorf("service: report %s not found for status update: %w", id, err)
	}

	if !report.Estado.CanTransitionTo(estado) {
		log.Warn("Rejected backward or invalid status transition")
		return fmt.Errorf("service: %w: %s -> %s", ErrBackwardTransition, report.Estado, estado)
	}

	if err := s.reports.UpdateStatus(ctx, id, estado); err != nil {
		log.WithError(err).Error("Failed to update report status in repository")
		return fmt.Errorf("service: could not update report status: %w", err)
	}

	if err := s.reports.InvalidateReportCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate report cache")
	}

	log.Info("Report status updated successfully")
	return nil
}

// GetStats devuelve el conteo de reportes por estado
func (s *reportService) GetStats(ctx context.Context) (map[models.ReportStatus]int, error) {
	stats, err := s.reports.CountByStatus(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get report stats")
		return nil, fmt.Errorf("service: could not get report stats: %w", err)
	}
	return stats, nil
}

// CreateIntervention crea una intervención y pasa el reporte padre a en_proceso
func (s *reportService) CreateIntervention(ctx context.Context, intervention *models.Intervention) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "CreateIntervention",
		"reporte_id": intervention.ReporteID,
	})
	log.Info("Creating intervention")

	report, err := s.reports.GetByID(ctx, intervention.ReporteID)
	if err != nil {
		log.WithError(err).Warn("Attempted to create intervention for a non-existent report")
		return fmt.Errorf("service: report %s not found for intervention: %w", intervention.ReporteID, err)
	}

	intervention.Estado = models.IntervencionPendiente
	if intervention.FechaAsignacion.IsZero() {
		intervention.FechaAsignacion = time.Now().UTC()
	}
	if err := s.interventions.Create(ctx, intervention); err != nil {
		log.WithError(err).Error("Failed to create intervention in repository")
		return fmt.Errorf("service: could not create intervention: %w", err)
	}

	// Efecto secundario del contrato: el reporte pasa a en_proceso si aún está pendiente
	if report.Estado.CanTransitionTo(models.EstadoEnProceso) {
		if err := s.reports.UpdateStatus(ctx, report.ID, models.EstadoEnProceso); err != nil {
			log.WithError(err).Error("Failed to move parent report to en_proceso")
			return fmt.Errorf("service: could not update parent report status: %w", err)
		}
		if err := s.reports.InvalidateReportCache(ctx, report.ID); err != nil {
			log.WithError(err).Warn("Failed to invalidate report cache")
		}
	}

	log.WithField("intervencion_id", intervention.ID).Info("Intervention created successfully")
	return nil
}

// UpdateIntervention avanza el estado de una intervención; completada fija la
// fecha de finalización
func (s *reportService) UpdateIntervention(ctx context.Context, id int64, estado models.InterventionStatus, notas string) (*models.Intervention, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "report",
		"method":          "UpdateIntervention",
		"intervencion_id": id,
	})

	if !estado.Valid() {
		return nil, fmt.Errorf("service: %w: %q", ErrInvalidStatus, estado)
	}

	existing, err := s.interventions.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent intervention")
		return nil, fmt.Errorf("service: intervention %d not found for update: %w", id, err)
	}

	if !existing.Estado.CanTransitionTo(estado) {
		log.Warn("Rejected backward or invalid intervention transition")
		return nil, fmt.Errorf("service: %w: %s -> %s", ErrBackwardTransition, existing.Estado, estado)
	}

	existing.Estado = estado
	if notas != "" {
		existing.Notas = notas
	}
	if estado == models.IntervencionCompletada && existing.FechaFinalizacion == nil {
		now := time.Now().UTC()
		existing.FechaFinalizacion = &now
	}

	if err := s.interventions.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update intervention in repository")
		return nil, fmt.Errorf("service: could not update intervention: %w", err)
	}

	log.Info("Intervention updated successfully")
	return existing, nil
}

// ListHistorico devuelve el histórico importado con paginación
func (s *reportService) ListHistorico(ctx context.Context, page, pageSize int) ([]*models.HistoricalRecord, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	records, total, err := s.history.List(ctx, page, pageSize)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list historical records")
		return nil, 0, fmt.Errorf("service: could not list historical records: %w", err)
	}
	return records, total, nil
}

func (s *reportService) GetHistorico(ctx context.Context, id int64) (*models.HistoricalRecord, error) {
	record, err := s.history.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("historico_id", id).Warn("Historical record not found")
		return nil, fmt.Errorf("service: could not get historical record: %w", err)
	}
	return record, nil
}

func (s *reportService) CreateHistorico(ctx context.Context, record *models.HistoricalRecord) error {
	if err := s.history.Create(ctx, record); err != nil {
		s.logger.WithError(err).Error("Failed to create historical record")
		return fmt.Errorf("service: could not create historical record: %w", err)
	}
	return nil
}
