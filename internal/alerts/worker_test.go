package alerts

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

// newTestWorker - función auxiliar para crear el worker con el distribuidor simulado
func newTestWorker(t *testing.T) (*Worker, *MockDistributor) {
	ctrl := gomock.NewController(t)
	distributorMock := NewMockDistributor(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Silenciamos los logs en las pruebas

	return NewWorker(nil, logger, distributorMock), distributorMock
}

func TestProcessJob_Success(t *testing.T) {
	// Preparación
	worker, distributorMock := newTestWorker(t)
	ctx := context.Background()
	job := Job{ReporteID: uuid.New(), EncoladoEn: time.Now().UTC()}

	// Expectativas
	distributorMock.EXPECT().DistributeAlerts(ctx, job.ReporteID).Return(2, nil).Times(1)

	// Acción
	worker.processJob(ctx, job)
}

func TestProcessJob_DistributionFailureIsNotRetried(t *testing.T) {
	// Preparación
	worker, distributorMock := newTestWorker(t)
	ctx := context.Background()
	job := Job{ReporteID: uuid.New(), EncoladoEn: time.Now().UTC()}

	// Expectativas: el fallo se registra una sola vez, sin reintentos
	distributorMock.EXPECT().DistributeAlerts(ctx, job.ReporteID).
		Return(0, fmt.Errorf("recipients query failed")).Times(1)

	// Acción
	worker.processJob(ctx, job)
}
