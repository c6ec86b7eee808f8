package alerts

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Distributor ejecuta la distribución de alertas de un reporte.
// Declarada aquí para que el worker no dependa del paquete de servicios.
type Distributor interface {
	DistributeAlerts(ctx context.Context, reportID uuid.UUID) (int, error)
}

// Worker consume la cola de trabajos de alertas y dispara la distribución
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	distributor Distributor
	retryDelay  time.Duration
}

// NewWorker crea un nuevo Worker de alertas
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, distributor Distributor) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		distributor: distributor,
		retryDelay:  5 * time.Second,
	}
}

// Start lanza la goroutine que procesa la cola de alertas
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting alert worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping alert worker.")
				return
			default:
				// BRPop - extracción bloqueante del final de la lista; 0 = espera infinita
				result, err := w.redisClient.BRPop(ctx, 0, alertQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Contexto cancelado, no es un error de Redis
					}
					w.logger.WithError(err).Error("Failed to pop alert job from Redis")
					time.Sleep(w.retryDelay)
					continue
				}

				// result[0] es la clave, result[1] el valor
				var job Job
				if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal alert job from Redis")
					continue
				}

				w.processJob(ctx, job)
			}
		}
	}()
}

func (w *Worker) processJob(ctx context.Context, job Job) {
	log := w.logger.WithField("reporte_id", job.ReporteID)
	log.Debug("Processing alert job...")

	sent, err := w.distributor.DistributeAlerts(ctx, job.ReporteID)
	if err != nil {
		// El reporte ya está persistido; el fallo se registra y el trabajo no se reintenta
		log.WithError(err).Error("Alert distribution failed")
		return
	}
	log.WithField("alerts_sent", sent).Info("Alert job processed")
}
