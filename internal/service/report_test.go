package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dagrd-medellin/emergency-pipeline/internal/models"
	"github.com/dagrd-medellin/emergency-pipeline/internal/service/mocks"
)

// newTestReportService - función auxiliar para crear el servicio de reportes con mocks
func newTestReportService(t *testing.T) (*reportService, *mocks.MockReportRepository, *mocks.MockInterventionRepository, *mocks.MockHistoryRepository) {
	ctrl := gomock.NewController(t)
	reportsMock := mocks.NewMockReportRepository(ctrl)
	interventionsMock := mocks.NewMockInterventionRepository(ctrl)
	historyMock := mocks.NewMockHistoryRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Silenciamos los logs en las pruebas

	service := NewReportService(reportsMock, interventionsMock, historyMock, logger)
	return service.(*reportService), reportsMock, interventionsMock, historyMock
}

func TestGetReport_Success_FromCache(t *testing.T) {
	// Preparación
	service, reportsMock, interventionsMock, _ := newTestReportService(t)
	ctx := context.Background()
	reporteID := uuid.New()
	cached := &models.Report{ID: reporteID, Estado: models.EstadoPendiente}

	// Expectativas: con acierto de caché no se consulta la base de datos
	reportsMock.EXPECT().GetReportFromCache(ctx, reporteID).Return(cached, nil).Times(1)
	reportsMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
	interventionsMock.EXPECT().ListByReport(ctx, reporteID).Return([]*models.Intervention{}, nil).Times(1)

	// Acción
	report, interventions, err := service.GetReport(ctx, reporteID)

	// Verificaciones
	require.NoError(t, err)
	assert.Equal(t, cached, report)
	assert.Empty(t, interventions)
}

func TestGetReport_Success_FromDB(t *testing.T) {
	// Preparación
	service, reportsMock, interventionsMock, _ := newTestReportService(t)
	ctx := context.Background()
	reporteID := uuid.New()
	stored := &models.Report{ID: reporteID, Estado: models.EstadoEnProceso}

	// Expectativas: fallo de caché → base de datos → escritura en caché
	reportsMock.EXPECT().GetReportFromCache(ctx, reporteID).Return(nil, nil).Times(1)
	reportsMock.EXPECT().GetByID(ctx, reporteID).Return(stored, nil).Times(1)
	reportsMock.EXPECT().SetReportCache(ctx, stored).Return(nil).Times(1)
	interventionsMock.EXPECT().ListByReport(ctx, reporteID).Return([]*models.Intervention{}, nil).Times(1)

	// Acción
	report, _, err := service.GetReport(ctx, reporteID)

	// Verificaciones
	require.NoError(t, err)
	assert.Equal(t, stored, report)
}

func TestUpdateReportStatus_Success(t *testing.T) {
	// Preparación
	service, reportsMock, _, _ := newTestReportService(t)
	ctx := context.Background()
	reporteID := uuid.New()
	existing := &models.Report{ID: reporteID, Estado: models.EstadoPendiente}

	// Expectativas
	reportsMock.EXPECT().GetByID(ctx, reporteID).Return(existing, nil).Times(1)
	reportsMock.EXPECT().UpdateStatus(ctx, reporteID, models.EstadoEnProceso).Return(nil).Times(1)
	reportsMock.EXPECT().InvalidateReportCache(ctx, reporteID).Return(nil).Times(1)

	// Acción
	err := service.UpdateReportStatus(ctx, reporteID, models.EstadoEnProceso)

	// Verificaciones
	require.NoError(t, err)
}

func TestUpdateReportStatus_RejectsBackwardTransition(t *testing.T) {
	// Preparación
	service, reportsMock, _, _ := newTestReportService(t)
	ctx := context.Background()
	reporteID := uuid.New()
	existing := &models.Report{ID: reporteID, Estado: models.EstadoResuelto}

	// Expectativas: el estado nunca retrocede, no hay reapertura
	reportsMock.EXPECT().GetByID(ctx, reporteID).Return(existing, nil).Times(1)
	reportsMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Acción
	err := service.UpdateReportStatus(ctx, reporteID, models.EstadoPendiente)

	// Verificaciones
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackwardTransition)
}

func TestUpdateReportStatus_RejectsSameState(t *testing.T) {
	// Preparación
	service, reportsMock, _, _ := newTestReportService(t)
	ctx := context.Background()
	reporteID := uuid.New()
	existing := &models.Report{ID: reporteID, Estado: models.EstadoEnProceso}

	// Expectativas
	reportsMock.EXPECT().GetByID(ctx, reporteID).Return(existing, nil).Times(1)
	reportsMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Acción
	err := service.UpdateReportStatus(ctx, reporteID, models.EstadoEnProceso)

	// Verificaciones
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackwardTransition)
}

func TestUpdateReportStatus_InvalidStatus(t *testing.T) {
	// Preparación
	service, reportsMock, _, _ := newTestReportService(t)
	ctx := context.Background()

	// Expectativas: el valor inválido se rechaza antes de consultar
	reportsMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	// Acción
	err := service.UpdateReportStatus(ctx, uuid.New(), models.ReportStatus("cerrado"))

	// Verificaciones
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCreateIntervention_MovesReportToEnProceso(t *testing.T) {
	// Preparación
	service, reportsMock, interventionsMock, _ := newTestReportService(t)
	ctx := context.Background()
	reporteID := uuid.New()
	report := &models.Report{ID: reporteID, Estado: models.EstadoPendiente}
	intervention := &models.Intervention{
		ReporteID: reporteID,
		Personal:  "Cuadrilla 4",
	}

	// Expectativas: crear la intervención arrastra el reporte a en_proceso
	reportsMock.EXPECT().GetByID(ctx, reporteID).Return(report, nil).Times(1)
	interventionsMock.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, i *models.Intervention) error {
			i.ID = 7
			return nil
		}).Times(1)
	reportsMock.EXPECT().UpdateStatus(ctx, reporteID, models.EstadoEnProceso).Return(nil).Times(1)
	reportsMock.EXPECT().InvalidateReportCache(ctx, reporteID).Return(nil).Times(1)

	// Acción
	err := service.CreateIntervention(ctx, intervention)

	// Verificaciones
	require.NoError(t, err)
	assert.Equal(t, int64(7), intervention.ID)
	assert.Equal(t, models.IntervencionPendiente, intervention.Estado)
	assert.False(t, intervention.FechaAsignacion.IsZero())
}

func TestCreateIntervention_ResolvedReportKeepsState(t *testing.T) {
	// Preparación
	service, reportsMock, interventionsMock, _ := newTestReportService(t)
	ctx := context.Background()
	reporteID := uuid.New()
	report := &models.Report{ID: reporteID, Estado: models.EstadoResuelto}
	intervention := &models.Intervention{ReporteID: reporteID, Personal: "Cuadrilla 1"}

	// Expectativas: un reporte resuelto no retrocede a en_proceso
	reportsMock.EXPECT().GetByID(ctx, reporteID).Return(report, nil).Times(1)
	interventionsMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	reportsMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Acción
	err := service.CreateIntervention(ctx, intervention)

	// Verificaciones
	require.NoError(t, err)
}

func TestCreateIntervention_ReportNotFound(t *testing.T) {
	// Preparación
	service, reportsMock, interventionsMock, _ := newTestReportService(t)
	ctx := context.Background()
	reporteID := uuid.New()

	// Expectativas
	reportsMock.EXPECT().GetByID(ctx, reporteID).Return(nil, fmt.Errorf("not found")).Times(1)
	interventionsMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Acción
	err := service.CreateIntervention(ctx, &models.Intervention{ReporteID: reporteID})

	// Verificaciones
	require.Error(t, err)
	assert.ErrorContains(t, err, "not found for intervention")
}

func TestUpdateIntervention_CompletedSetsFinalizacion(t *testing.T) {
	// Preparación
	service, _, interventionsMock, _ := newTestReportService(t)
	ctx := context.Background()
	existing := &models.Intervention{
		ID:              3,
		ReporteID:       uuid.New(),
		Estado:          models.IntervencionEnProceso,
		FechaAsignacion: time.Now().UTC(),
	}

	// Expectativas
	interventionsMock.EXPECT().GetByID(ctx, int64(3)).Return(existing, nil).Times(1)
	interventionsMock.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)

	// Acción
	updated, err := service.UpdateIntervention(ctx, 3, models.IntervencionCompletada, "obra terminada")

	// Verificaciones: completar fija la fecha de finalización
	require.NoError(t, err)
	assert.Equal(t, models.IntervencionCompletada, updated.Estado)
	require.NotNil(t, updated.FechaFinalizacion)
	assert.Equal(t, "obra terminada", updated.Notas)
}

func TestUpdateIntervention_RejectsBackwardTransition(t *testing.T) {
	// Preparación
	service, _, interventionsMock, _ := newTestReportService(t)
	ctx := context.Background()
	existing := &models.Intervention{
		ID:     4,
		Estado: models.IntervencionCompletada,
	}

	// Expectativas
	interventionsMock.EXPECT().GetByID(ctx, int64(4)).Return(existing, nil).Times(1)
	interventionsMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	// Acción
	updated, err := service.UpdateIntervention(ctx, 4, models.IntervencionPendiente, "")

	// Verificaciones
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, ErrBackwardTransition)
}

func TestGetStats_Success(t *testing.T) {
	// Preparación
	service, reportsMock, _, _ := newTestReportService(t)
	ctx := context.Background()
	expected := map[models.ReportStatus]int{
		models.EstadoPendiente: 4,
		models.EstadoResuelto:  2,
	}

	// Expectativas
	reportsMock.EXPECT().CountByStatus(ctx).Return(expected, nil).Times(1)

	// Acción
	stats, err := service.GetStats(ctx)

	// Verificaciones
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}

func TestListHistorico_NormalizesPagination(t *testing.T) {
	// Preparación
	service, _, _, historyMock := newTestReportService(t)
	ctx := context.Background()

	// Expectativas: página y tamaño fuera de rango caen en los valores por defecto
	historyMock.EXPECT().List(ctx, 1, 20).Return([]*models.HistoricalRecord{}, 0, nil).Times(1)

	// Acción
	_, _, err := service.ListHistorico(ctx, -3, 10000)

	// Verificaciones
	require.NoError(t, err)
}
