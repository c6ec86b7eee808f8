package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dagrd-medellin/emergency-pipeline/internal/models"
)

// AlertRepository define el contrato de persistencia de destinatarios y alertas
type AlertRepository interface {
	FindEligibleRecipients(ctx context.Context, severidad models.Severity, tipo models.EmergencyType) ([]*models.AlertRecipient, error)
	CreateDispatches(ctx context.Context, reporteID uuid.UUID, recipients []*models.AlertRecipient) ([]*models.AlertDispatch, error)
	UpdateDispatchState(ctx context.Context, dispatchID uuid.UUID, estado models.DispatchState) error
	ListDispatchesByReport(ctx context.Context, reporteID uuid.UUID) ([]*models.AlertDispatch, error)
	ListRecipients(ctx context.Context) ([]*models.AlertRecipient, error)
	CreateRecipient(ctx context.Context, recipient *models.AlertRecipient) error
}

// Notifier entrega una alerta a un destinatario concreto
type Notifier interface {
	Notify(ctx context.Context, recipient *models.AlertRecipient, report *models.Report) error
}

// AlertService - contrato de distribución de alertas y gestión de destinatarios.
// DistributeAlerts no es idempotente: invocarlo dos veces para el mismo reporte
// duplica los despachos, el invocante debe llamarlo a lo sumo una vez por reporte.
type AlertService interface {
	DistributeAlerts(ctx context.Context, reportID uuid.UUID) (int, error)
	ListRecipients(ctx context.Context) ([]*models.AlertRecipient, error)
	CreateRecipient(ctx context.Context, recipient *models.AlertRecipient) error
	ListDispatchesByReport(ctx context.Context, reportID uuid.UUID) ([]*models.AlertDispatch, error)
}

type alertService struct {
	reports     ReportRepository
	alerts      AlertRepository
	notifier    Notifier
	logger      *logrus.Logger
	concurrency int
}

func NewAlertService(reports ReportRepository, alerts AlertRepository, notifier Notifier, logger *logrus.Logger, concurrency int) AlertService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &alertService{
		reports:     reports,
		alerts:      alerts,
		notifier:    notifier,
		logger:      logger,
		concurrency: concurrency,
	}
}

// DistributeAlerts calcula los destinatarios elegibles del reporte, crea un
// despacho pendiente por cada uno y los entrega con concurrencia acotada.
// Cada entrega es independiente: el fallo de un destinatario no bloquea ni
// revierte los demás.
func (s *alertService) DistributeAlerts(ctx context.Context, reportID uuid.UUID) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "DistributeAlerts",
		"reporte_id": reportID,
	})
	log.Info("Distributing alerts")

	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		log.WithError(err).Error("Failed to load report for alert distribution")
		return 0, fmt.Errorf("service: could not load report for alerts: %w", err)
	}

	recipients, err := s.alerts.FindEligibleRecipients(ctx, report.Severidad, report.TipoEmergencia)
	if err != nil {
		log.WithError(err).Error("Failed to find eligible recipients")
		return 0, fmt.Errorf("service: could not find recipients: %w", err)
	}
	if len(recipients) == 0 {
		log.Info("No eligible recipients for report")
		return 0, nil
	}

	dispatches, err := s.alerts.CreateDispatches(ctx, reportID, recipients)
	if err != nil {
		log.WithError(err).Error("Failed to create alert dispatches")
		return 0, fmt.Errorf("service: could not create dispatches: %w", err)
	}

	recipientsByID := make(map[uuid.UUID]*models.AlertRecipient, len(recipients))
	for _, r := range recipients {
		recipientsByID[r.ID] = r
	}

	// Entrega con fan-out acotado; cada despacho actualiza su propio estado
	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup
	for _, dispatch := range dispatches {
		recipient, ok := recipientsByID[dispatch.DestinatarioID]
		if !ok {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(d *models.AlertDispatch, r *models.AlertRecipient) {
			defer wg.Done()
			defer func() { <-sem }()
			s.deliver(ctx, d, r, report)
		}(dispatch, recipient)
	}
	wg.Wait()

	log.WithField("alerts_sent", len(dispatches)).Info("Alert distribution completed")
	return len(dispatches), nil
}

// deliver intenta la entrega de un despacho y actualiza su estado final
func (s *alertService) deliver(ctx context.Context, dispatch *models.AlertDispatch, recipient *models.AlertRecipient, report *models.Report) {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "alert",
		"dispatch_id":     dispatch.ID,
		"destinatario_id": recipient.ID,
		"canal":           recipient.Canal,
	})

	estado := models.AlertaEnviada
	if err := s.notifier.Notify(ctx, recipient, report); err != nil {
		log.WithError(err).Warn("Alert delivery failed")
		estado = models.AlertaFallida
	}

	if err := s.alerts.UpdateDispatchState(ctx, dispatch.ID, estado); err != nil {
		log.WithError(err).Error("Failed to update dispatch state")
		return
	}
	dispatch.Estado = estado
}

func (s *alertService) ListRecipients(ctx context.Context) ([]*models.AlertRecipient, error) {
	recipients, err := s.alerts.ListRecipients(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list alert recipients")
		return nil, fmt.Errorf("service: could not list recipients: %w", err)
	}
	return recipients, nil
}

func (s *alertService) CreateRecipient(ctx context.Context, recipient *models.AlertRecipient) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "CreateRecipient",
		"canal":   recipient.Canal,
	})

	if err := s.alerts.CreateRecipient(ctx, recipient); err != nil {
		log.WithError(err).Error("Failed to create alert recipient")
		return fmt.Errorf("service: could not create recipient: %w", err)
	}
	log.WithField("destinatario_id", recipient.ID).Info("Alert recipient created")
	return nil
}

func (s *alertService) ListDispatchesByReport(ctx context.Context, reportID uuid.UUID) ([]*models.AlertDispatch, error) {
	dispatches, err := s.alerts.ListDispatchesByReport(ctx, reportID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list dispatches for report")
		return nil, fmt.Errorf("service: could not list dispatches: %w", err)
	}
	return dispatches, nil
}
