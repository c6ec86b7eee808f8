// Package alerts contiene la cola de trabajos de distribución de alertas.
// El pipeline de ingesta publica un trabajo por reporte creado y un worker en
// segundo plano lo consume: un fallo en la distribución nunca afecta la
// creación del reporte.
package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const alertQueueKey = "alert_jobs"

// Job - trabajo de distribución de alertas para un reporte recién creado
type Job struct {
	ReporteID  uuid.UUID `json:"reporte_id"`
	EncoladoEn time.Time `json:"encolado_en"`
}

// JobPublisher - interfaz para encolar trabajos de distribución
type JobPublisher interface {
	Publish(ctx context.Context, job Job) error
}

// RedisJobPublisher - implementación de JobPublisher sobre una lista de Redis
type RedisJobPublisher struct {
	redisClient *redis.Client
}

// NewRedisJobPublisher crea un nuevo RedisJobPublisher
func NewRedisJobPublisher(client *redis.Client) *RedisJobPublisher {
	return &RedisJobPublisher{
		redisClient: client,
	}
}

// Publish encola el trabajo en la lista de Redis
func (p *RedisJobPublisher) Publish(ctx context.Context, job Job) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal alert job: %w", err)
	}

	// LPUSH agrega el trabajo al inicio de la lista (cola)
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert job to Redis: %w", err)
	}
	return nil
}
