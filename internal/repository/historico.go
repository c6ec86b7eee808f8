package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dagrd-medellin/emergency-pipeline/internal/models"
	"github.com/dagrd-medellin/emergency-pipeline/internal/service"
)

type HistoryRepository struct {
	db *pgxpool.Pool
}

func NewHistoryRepository(db *pgxpool.Pool) service.HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create registra un punto histórico de riesgo
func (r *HistoryRepository) Create(ctx context.Context, record *models.HistoricalRecord) error {
	query := `
		INSERT INTO historico (direccion, barrio, comuna, latitud, longitud, prioridad, observaciones)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		record.Direccion,
		record.Barrio,
		record.Comuna,
		record.Latitud,
		record.Longitud,
		record.Prioridad,
		record.Observaciones,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create historical record: %w", err)
	}
	return nil
}

// GetByID devuelve un registro histórico por su identificador
func (r *HistoryRepository) GetByID(ctx context.Context, id int64) (*models.HistoricalRecord, error) {
	record := &models.HistoricalRecord{}
	query := `
		SELECT id, direccion, barrio, comuna, latitud, longitud, prioridad, observaciones, created_at
		FROM historico
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.Direccion,
		&record.Barrio,
		&record.Comuna,
		&record.Latitud,
		&record.Longitud,
		&record.Prioridad,
		&record.Observaciones,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("historical record with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get historical record by id: %w", err)
	}
	return record, nil
}

// List devuelve registros históricos paginados y el total
func (r *HistoryRepository) List(ctx context.Context, page, pageSize int) ([]*models.HistoricalRecord, int, error) {
	query := `
		SELECT id, direccion, barrio, comuna, latitud, longitud, prioridad, observaciones, created_at,
		       COUNT(*) OVER() AS total
		FROM historico
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list historical records: %w", err)
	}
	defer rows.Close()

	records := make([]*models.HistoricalRecord, 0)
	total := 0
	for rows.Next() {
		record := &models.HistoricalRecord{}
		err := rows.Scan(
			&record.ID,
			&record.Direccion,
			&record.Barrio,
			&record.Comuna,
			&record.Latitud,
			&record.Longitud,
			&record.Prioridad,
			&record.Observaciones,
			&record.CreatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan historical row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error historical iteration: %w", err)
	}
	return records, total, nil
}
