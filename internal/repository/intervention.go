package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dagrd-medellin/emergency-pipeline/internal/models"
	"github.com/dagrd-medellin/emergency-pipeline/internal/service"
)

type InterventionRepository struct {
	db *pgxpool.Pool
}

func NewInterventionRepository(db *pgxpool.Pool) service.InterventionRepository {
	return &InterventionRepository{db: db}
}

// Create crea una nueva intervención asociada a un reporte
func (r *InterventionRepository) Create(ctx context.Context, intervention *models.Intervention) error {
	query := `
		INSERT INTO intervenciones (reporte_id, personal, descripcion, estado, fecha_asignacion, notas)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		intervention.ReporteID,
		intervention.Personal,
		intervention.Descripcion,
		intervention.Estado,
		intervention.FechaAsignacion,
		intervention.Notas,
	).Scan(&intervention.ID)
	if err != nil {
		return fmt.Errorf("failed to create intervention: %w", err)
	}
	return nil
}

// GetByID devuelve una intervención por su identificador
func (r *InterventionRepository) GetByID(ctx context.Context, id int64) (*models.Intervention, error) {
	intervention := &models.Intervention{}
	query := `
		SELECT id, reporte_id, personal, descripcion, estado, fecha_asignacion, fecha_finalizacion, notas
		FROM intervenciones
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&intervention.ID,
		&intervention.ReporteID,
		&intervention.Personal,
		&intervention.Descripcion,
		&intervention.Estado,
		&intervention.FechaAsignacion,
		&intervention.FechaFinalizacion,
		&intervention.Notas,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("intervention with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get intervention by id: %w", err)
	}
	return intervention, nil
}

// Update persiste estado, fecha de finalización y notas de la intervención
func (r *InterventionRepository) Update(ctx context.Context, intervention *models.Intervention) error {
	query := `
		UPDATE intervenciones SET
			estado = $1,
			fecha_finalizacion = $2,
			notas = $3
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		intervention.Estado,
		intervention.FechaFinalizacion,
		intervention.Notas,
		intervention.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update intervention: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("intervention with id %d not found for update", intervention.ID)
	}
	return nil
}

// ListByReport devuelve las intervenciones de un reporte ordenadas por asignación
func (r *InterventionRepository) ListByReport(ctx context.Context, reporteID uuid.UUID) ([]*models.Intervention, error) {
	query := `
		SELECT id, reporte_id, personal, descripcion, estado, fecha_asignacion, fecha_finalizacion, notas
		FROM intervenciones
		WHERE reporte_id = $1
		ORDER BY fecha_asignacion DESC;
	`
	rows, err := r.db.Query(ctx, query, reporteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interventions: %w", err)
	}
	defer rows.Close()

	interventions := make([]*models.Intervention, 0)
	for rows.Next() {
		intervention := &models.Intervention{}
		err := rows.Scan(
			&intervention.ID,
			&intervention.ReporteID,
			&intervention.Personal,
			&intervention.Descripcion,
			&intervention.Estado,
			&intervention.FechaAsignacion,
			&intervention.FechaFinalizacion,
			&intervention.Notas,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan intervention row: %w", err)
		}
		interventions = append(interventions, intervention)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error intervention iteration: %w", err)
	}
	return interventions, nil
}
