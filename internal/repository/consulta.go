package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/dagrd-medellin/emergency-pipeline/internal/models"
	"github.com/dagrd-medellin/emergency-pipeline/internal/service"
)

type QueryRepository struct {
	db *pgxpool.Pool
}

func NewQueryRepository(db *pgxpool.Pool) service.QueryRepository {
	return &QueryRepository{db: db}
}

// SaveQuery registra la consulta respondida para auditoría posterior
func (r *QueryRepository) SaveQuery(ctx context.Context, record *models.QueryRecord) error {
	relacionados := make([]string, 0, len(record.ReportesRelacionados))
	for _, id := range record.ReportesRelacionados {
		relacionados = append(relacionados, id.String())
	}

	query := `
		INSERT INTO consultas_historicas (consulta, respuesta, reportes_relacionados, embedding)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		record.Consulta,
		record.Respuesta,
		relacionados,
		pgvector.NewVector(record.Embedding),
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save query record: %w", err)
	}
	return nil
}
