package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"github.com/redis/go-redis/v9"

	"github.com/dagrd-medellin/emergency-pipeline/internal/models"
	"github.com/dagrd-medellin/emergency-pipeline/internal/service"
)

type ReportRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewReportRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ReportRepository {
	return &ReportRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const reportColumns = `
	id,
	telefono_reportante,
	audio_ref,
	transcripcion,
	confianza_transcripcion,
	tipo_emergencia,
	subtipo,
	ubicacion,
	latitud,
	longitud,
	municipio,
	severidad,
	infraestructura_afectada,
	impacto_estimado,
	acciones_inmediatas,
	estado,
	revision_manual,
	fecha_recepcion,
	created_at,
	updated_at`

// Create persiste el reporte completo en un único INSERT: transcripción,
// extracción y embedding entran juntos, nunca hay reporte parcial visible
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reportes (
			telefono_reportante, audio_ref, transcripcion, confianza_transcripcion,
			tipo_emergencia, subtipo, ubicacion, latitud, longitud, municipio,
			severidad, infraestructura_afectada, impacto_estimado, acciones_inmediatas,
			estado, revision_manual, embedding, fecha_recepcion
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.TelefonoReportante,
		report.AudioRef,
		report.Transcripcion,
		report.ConfianzaTranscripcion,
		report.TipoEmergencia,
		report.Subtipo,
		report.Ubicacion,
		report.Latitud,
		report.Longitud,
		report.Municipio,
		report.Severidad,
		report.InfraestructuraAfectada,
		report.ImpactoEstimado,
		report.AccionesInmediatas,
		report.Estado,
		report.RevisionManual,
		pgvector.NewVector(report.Embedding),
		report.FechaRecepcion,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

func scanReport(row pgx.Row) (*models.Report, error) {
	report := &models.Report{}
	err := row.Scan(
		&report.ID,
		&report.TelefonoReportante,
		&report.AudioRef,
		&report.Transcripcion,
		&report.ConfianzaTranscripcion,
		&report.TipoEmergencia,
		&report.Subtipo,
		&report.Ubicacion,
		&report.Latitud,
		&report.Longitud,
		&report.Municipio,
		&report.Severidad,
		&report.InfraestructuraAfectada,
		&report.ImpactoEstimado,
		&report.AccionesInmediatas,
		&report.Estado,
		&report.RevisionManual,
		&report.FechaRecepcion,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// GetByID devuelve un reporte por su UUID
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	query := fmt.Sprintf(`SELECT %s FROM reportes WHERE id = $1;`, reportColumns)
	report, err := scanReport(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return report, nil
}

// UpdateStatus actualiza el estado del reporte. La validación de avance
// estricto ocurre en la capa de servicio, que carga el estado actual primero.
func (r *ReportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, estado models.ReportStatus) error {
	query := `
		UPDATE reportes SET
			estado = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, estado, id)
	if err != nil {
		return fmt.Errorf("failed to update report status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report with id %s not found for status update", id)
	}
	return nil
}

// List devuelve reportes filtrados con paginación y el total de coincidencias
func (r *ReportRepository) List(ctx context.Context, filter models.ReportFilter) ([]*models.Report, int, error) {
	var conditions []string
	var args []any

	addCondition := func(cond string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Estado != "" {
		addCondition("estado = $%d", filter.Estado)
	}
	if filter.Severidad != "" {
		addCondition("severidad = $%d", filter.Severidad)
	}
	if filter.Tipo != "" {
		addCondition("tipo_emergencia = $%d", filter.Tipo)
	}
	if filter.Municipio != "" {
		addCondition("municipio = $%d", filter.Municipio)
	}
	if filter.FechaInicio != nil {
		addCondition("fecha_recepcion >= $%d", *filter.FechaInicio)
	}
	if filter.FechaFin != nil {
		addCondition("fecha_recepcion <= $%d", *filter.FechaFin)
	}
	if filter.Busqueda != "" {
		args = append(args, "%"+filter.Busqueda+"%")
		conditions = append(conditions, fmt.Sprintf("(transcripcion ILIKE $%d OR ubicacion ILIKE $%d)", len(args), len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM reportes
		%s
		ORDER BY fecha_recepcion DESC
		LIMIT $%d OFFSET $%d;
	`, reportColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.Report, 0)
	total := 0
	for rows.Next() {
		report := &models.Report{}
		err := rows.Scan(
			&report.ID,
			&report.TelefonoReportante,
			&report.AudioRef,
			&report.Transcripcion,
			&report.ConfianzaTranscripcion,
			&report.TipoEmergencia,
			&report.Subtipo,
			&report.Ubicacion,
			&report.Latitud,
			&report.Longitud,
			&report.Municipio,
			&report.Severidad,
			&report.InfraestructuraAfectada,
			&report.ImpactoEstimado,
			&report.AccionesInmediatas,
			&report.Estado,
			&report.RevisionManual,
			&report.FechaRecepcion,
			&report.CreatedAt,
			&report.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, total, nil
}

// SearchSimilar devuelve los k reportes más cercanos por similitud coseno,
// excluyendo los que quedan por debajo del umbral
func (r *ReportRepository) SearchSimilar(ctx context.Context, embedding []float32, k int, threshold float64) ([]*models.ReportMatch, error) {
	query := fmt.Sprintf(`
		SELECT %s, 1 - (embedding <=> $1) AS similarity
		FROM reportes
		WHERE 1 - (embedding <=> $1) >= $2
		ORDER BY embedding <=> $1
		LIMIT $3;
	`, reportColumns)

	rows, err := r.db.Query(ctx, query, pgvector.NewVector(embedding), threshold, k)
	if err != nil {
		return nil, fmt.Errorf("failed to search similar reports: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.ReportMatch, 0)
	for rows.Next() {
		report := &models.Report{}
		var similarity float64
		err := rows.Scan(
			&report.ID,
			&report.TelefonoReportante,
			&report.AudioRef,
			&report.Transcripcion,
			&report.ConfianzaTranscripcion,
			&report.TipoEmergencia,
			&report.Subtipo,
			&report.Ubicacion,
			&report.Latitud,
			&report.Longitud,
			&report.Municipio,
			&report.Severidad,
			&report.InfraestructuraAfectada,
			&report.ImpactoEstimado,
			&report.AccionesInmediatas,
			&report.Estado,
			&report.RevisionManual,
			&report.FechaRecepcion,
			&report.CreatedAt,
			&report.UpdatedAt,
			&similarity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan similarity row: %w", err)
		}
		matches = append(matches, &models.ReportMatch{Report: report, Similarity: similarity})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error similarity iteration: %w", err)
	}
	return matches, nil
}

// CountByStatus devuelve el conteo de reportes agrupado por estado
func (r *ReportRepository) CountByStatus(ctx context.Context) (map[models.ReportStatus]int, error) {
	query := `SELECT estado, COUNT(*) FROM reportes GROUP BY estado;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count reports by status: %w", err)
	}
	defer rows.Close()

	stats := make(map[models.ReportStatus]int)
	for rows.Next() {
		var estado models.ReportStatus
		var count int
		if err := rows.Scan(&estado, &count); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		stats[estado] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error stats iteration: %w", err)
	}
	return stats, nil
}

// GetReportFromCache intenta obtener el reporte desde Redis
func (r *ReportRepository) GetReportFromCache(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	key := fmt.Sprintf("reporte:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report from cache: %w", err)
	}

	report := &models.Report{}
	if err := json.Unmarshal(val, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report from cache: %w", err)
	}
	return report, nil
}

// SetReportCache guarda el reporte en Redis
func (r *ReportRepository) SetReportCache(ctx context.Context, report *models.Report) error {
	key := fmt.Sprintf("reporte:%s", report.ID.String())
	val, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report for cache: %w", err)
	}
	// TTL del caché: 5 minutos
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set report in cache: %w", err)
	}
	return nil
}

// InvalidateReportCache elimina el reporte del caché de Redis
func (r *ReportRepository) InvalidateReportCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("reporte:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate report cache: %w", err)
	}
	return nil
}
