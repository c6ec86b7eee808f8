package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dagrd-medellin/emergency-pipeline/internal/models"
	"github.com/dagrd-medellin/emergency-pipeline/internal/service/mocks"
)

// newTestAlertService - función auxiliar para crear el servicio de alertas con mocks
func newTestAlertService(t *testing.T) (*alertService, *mocks.MockReportRepository, *mocks.MockAlertRepository, *mocks.MockNotifier) {
	ctrl := gomock.NewController(t)
	reportsMock := mocks.NewMockReportRepository(ctrl)
	alertsMock := mocks.NewMockAlertRepository(ctrl)
	notifierMock := mocks.NewMockNotifier(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Silenciamos los logs en las pruebas

	service := NewAlertService(reportsMock, alertsMock, notifierMock, logger, 2)
	return service.(*alertService), reportsMock, alertsMock, notifierMock
}

func testRecipients(n int) []*models.AlertRecipient {
	recipients := make([]*models.AlertRecipient, 0, n)
	for i := 0; i < n; i++ {
		recipients = append(recipients, &models.AlertRecipient{
			ID:          uuid.New(),
			Nombre:      fmt.Sprintf("Destinatario %d", i+1),
			Canal:       models.CanalWhatsApp,
			Contacto:    fmt.Sprintf("57300000000%d", i),
			Activo:      true,
			Severidades: []models.Severity{models.SeveridadAlta},
		})
	}
	return recipients
}

func dispatchesFor(reporteID uuid.UUID, recipients []*models.AlertRecipient) []*models.AlertDispatch {
	dispatches := make([]*models.AlertDispatch, 0, len(recipients))
	for _, r := range recipients {
		dispatches = append(dispatches, &models.AlertDispatch{
			ID:             uuid.New(),
			ReporteID:      reporteID,
			DestinatarioID: r.ID,
			Canal:          r.Canal,
			Estado:         models.AlertaPendiente,
		})
	}
	return dispatches
}

func TestDistributeAlerts_Success(t *testing.T) {
	// Preparación
	service, reportsMock, alertsMock, notifierMock := newTestAlertService(t)
	ctx := context.Background()
	reporteID := uuid.New()
	report := &models.Report{
		ID:             reporteID,
		TipoEmergencia: models.TipoDeslizamiento,
		Severidad:      models.SeveridadAlta,
	}
	recipients := testRecipients(3)
	dispatches := dispatchesFor(reporteID, recipients)

	// Expectativas: un despacho por destinatario elegible, todos entregados
	reportsMock.EXPECT().GetByID(ctx, reporteID).Return(report, nil).Times(1)
	alertsMock.EXPECT().FindEligibleRecipients(ctx, report.Severidad, report.TipoEmergencia).
		Return(recipients, nil).Times(1)
	alertsMock.EXPECT().CreateDispatches(ctx, reporteID, recipients).Return(dispatches, nil).Times(1)
	notifierMock.EXPECT().Notify(gomock.Any(), gomock.Any(), report).Return(nil).Times(3)
	alertsMock.EXPECT().UpdateDispatchState(gomock.Any(), gomock.Any(), models.AlertaEnviada).
		Return(nil).Times(3)

	// Acción
	sent, err := service.DistributeAlerts(ctx, reporteID)

	// Verificaciones
	require.NoError(t, err)
	assert.Equal(t, 3, sent)
}

func TestDistributeAlerts_PartialDeliveryFailure(t *testing.T) {
	// Preparación
	service, reportsMock, alertsMock, notifierMock := newTestAlertService(t)
	ctx := context.Background()
	reporteID := uuid.New()
	report := &models.Report{
		ID:             reporteID,
		TipoEmergencia: models.TipoInundacion,
		Severidad:      models.SeveridadCritica,
	}
	recipients := testRecipients(2)
	dispatches := dispatchesFor(reporteID, recipients)
	failingRecipient := recipients[0].ID

	// Expectativas: un destinatario falla, el otro se entrega; cada despacho
	// termina en su propio estado
	reportsMock.EXPECT().GetByID(ctx, reporteID).Return(report, nil).Times(1)
	alertsMock.EXPECT().FindEligibleRecipients(ctx, report.Severidad, report.TipoEmergencia).
		Return(recipients, nil).Times(1)
	alertsMock.EXPECT().CreateDispatches(ctx, reporteID, recipients).Return(dispatches, nil).Times(1)
	notifierMock.EXPECT().Notify(gomock.Any(), gomock.Any(), report).
		DoAndReturn(func(_ context.Context, r *models.AlertRecipient, _ *models.Report) error {
			if r.ID == failingRecipient {
				return fmt.Errorf("whatsapp send failed")
			}
			return nil
		}).Times(2)
	alertsMock.EXPECT().UpdateDispatchState(gomock.Any(), dispatches[0].ID, models.AlertaFallida).
		Return(nil).Times(1)
	alertsMock.EXPECT().UpdateDispatchState(gomock.Any(), dispatches[1].ID, models.AlertaEnviada).
		Return(nil).Times(1)

	// Acción
	sent, err := service.DistributeAlerts(ctx, reporteID)

	// Verificaciones: el fallo de una entrega no bloquea la distribución
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
}

func TestDistributeAlerts_NoEligibleRecipients(t *testing.T) {
	// Preparación
	service, reportsMock, alertsMock, notifierMock := newTestAlertService(t)
	ctx := context.Background()
	reporteID := uuid.New()
	report := &models.Report{
		ID:             reporteID,
		TipoEmergencia: models.TipoGrieta,
		Severidad:      models.SeveridadBaja,
	}

	// Expectativas: sin elegibles no hay despachos ni notificaciones
	reportsMock.EXPECT().GetByID(ctx, reporteID).Return(report, nil).Times(1)
	alertsMock.EXPECT().FindEligibleRecipients(ctx, report.Severidad, report.TipoEmergencia).
		Return([]*models.AlertRecipient{}, nil).Times(1)
	alertsMock.EXPECT().CreateDispatches(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	notifierMock.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Acción
	sent, err := service.DistributeAlerts(ctx, reporteID)

	// Verificaciones
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestDistributeAlerts_ReportNotFound(t *testing.T) {
	// Preparación
	service, reportsMock, alertsMock, _ := newTestAlertService(t)
	ctx := context.Background()
	reporteID := uuid.New()

	// Expectativas
	reportsMock.EXPECT().GetByID(ctx, reporteID).Return(nil, fmt.Errorf("not found")).Times(1)
	alertsMock.EXPECT().FindEligibleRecipients(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Acción
	sent, err := service.DistributeAlerts(ctx, reporteID)

	// Verificaciones
	require.Error(t, err)
	assert.Equal(t, 0, sent)
	assert.ErrorContains(t, err, "could not load report for alerts")
}

func TestRecipientMatches(t *testing.T) {
	// Preparación: destinatario suscrito a severidad Alta y tipo Inundación
	recipient := &models.AlertRecipient{
		Activo:          true,
		Severidades:     []models.Severity{models.SeveridadAlta},
		TiposEmergencia: []models.EmergencyType{models.TipoInundacion},
	}

	// Verificaciones: la regla es OR entre severidad y tipo
	assert.True(t, recipient.Matches(models.SeveridadAlta, models.TipoGrieta))
	assert.True(t, recipient.Matches(models.SeveridadBaja, models.TipoInundacion))
	assert.False(t, recipient.Matches(models.SeveridadBaja, models.TipoGrieta))
}

func TestCreateRecipient_Success(t *testing.T) {
	// Preparación
	service, _, alertsMock, _ := newTestAlertService(t)
	ctx := context.Background()
	recipient := &models.AlertRecipient{
		Nombre:   "Sala de crisis",
		Canal:    models.CanalEmail,
		Contacto: "crisis@medellin.gov.co",
		Activo:   true,
	}

	// Expectativas
	alertsMock.EXPECT().CreateRecipient(ctx, recipient).
		DoAndReturn(func(_ context.Context, r *models.AlertRecipient) error {
			r.ID = uuid.New()
			return nil
		}).Times(1)

	// Acción
	err := service.CreateRecipient(ctx, recipient)

	// Verificaciones
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, recipient.ID)
}
