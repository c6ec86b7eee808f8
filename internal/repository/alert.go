package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dagrd-medellin/emergency-pipeline/internal/models"
	"github.com/dagrd-medellin/emergency-pipeline/internal/service"
)

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

const recipientColumns = `id, nombre, canal, contacto, activo, severidades, tipos_emergencia, created_at`

func scanRecipient(row pgx.Row) (*models.AlertRecipient, error) {
	recipient := &models.AlertRecipient{}
	var severidades, tipos []string
	err := row.Scan(
		&recipient.ID,
		&recipient.Nombre,
		&recipient.Canal,
		&recipient.Contacto,
		&recipient.Activo,
		&severidades,
		&tipos,
		&recipient.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	for _, s := range severidades {
		recipient.Severidades = append(recipient.Severidades, models.Severity(s))
	}
	for _, t := range tipos {
		recipient.TiposEmergencia = append(recipient.TiposEmergencia, models.EmergencyType(t))
	}
	return recipient, nil
}

// FindEligibleRecipients aplica la regla de elegibilidad en SQL:
// activo Y (severidad suscrita O tipo suscrito)
func (r *AlertRepository) FindEligibleRecipients(ctx context.Context, severidad models.Severity, tipo models.EmergencyType) ([]*models.AlertRecipient, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM destinatarios_alertas
		WHERE activo = TRUE
		  AND ($1 = ANY(severidades) OR $2 = ANY(tipos_emergencia));
	`, recipientColumns)

	rows, err := r.db.Query(ctx, query, string(severidad), string(tipo))
	if err != nil {
		return nil, fmt.Errorf("failed to find eligible recipients: %w", err)
	}
	defer rows.Close()

	recipients := make([]*models.AlertRecipient, 0)
	for rows.Next() {
		recipient, err := scanRecipient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipient row: %w", err)
		}
		recipients = append(recipients, recipient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error recipient iteration: %w", err)
	}
	return recipients, nil
}

// CreateDispatches crea en bloque un despacho pendiente por destinatario
func (r *AlertRepository) CreateDispatches(ctx context.Context, reporteID uuid.UUID, recipients []*models.AlertRecipient) ([]*models.AlertDispatch, error) {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO alertas (reporte_id, destinatario_id, canal, estado, fecha_envio)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, fecha_envio;
	`
	for _, recipient := range recipients {
		batch.Queue(query, reporteID, recipient.ID, recipient.Canal, models.AlertaPendiente)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	dispatches := make([]*models.AlertDispatch, 0, len(recipients))
	for _, recipient := range recipients {
		dispatch := &models.AlertDispatch{
			ReporteID:      reporteID,
			DestinatarioID: recipient.ID,
			Canal:          recipient.Canal,
			Estado:         models.AlertaPendiente,
		}
		if err := results.QueryRow().Scan(&dispatch.ID, &dispatch.FechaEnvio); err != nil {
			return nil, fmt.Errorf("failed to create alert dispatch: %w", err)
		}
		dispatches = append(dispatches, dispatch)
	}
	return dispatches, nil
}

// UpdateDispatchState registra el resultado del intento de entrega;
// fecha_envio queda con la hora de la resolución, no la de la creación
func (r *AlertRepository) UpdateDispatchState(ctx context.Context, dispatchID uuid.UUID, estado models.DispatchState) error {
	query := `UPDATE alertas SET estado = $1, fecha_envio = NOW() WHERE id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, estado, dispatchID)
	if err != nil {
		return fmt.Errorf("failed to update dispatch state: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("dispatch with id %s not found for state update", dispatchID)
	}
	return nil
}

// ListDispatchesByReport devuelve los despachos de alerta de un reporte
func (r *AlertRepository) ListDispatchesByReport(ctx context.Context, reporteID uuid.UUID) ([]*models.AlertDispatch, error) {
	query := `
		SELECT id, reporte_id, destinatario_id, canal, estado, fecha_envio
		FROM alertas
		WHERE reporte_id = $1
		ORDER BY fecha_envio DESC;
	`
	rows, err := r.db.Query(ctx, query, reporteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatches: %w", err)
	}
	defer rows.Close()

	dispatches := make([]*models.AlertDispatch, 0)
	for rows.Next() {
		dispatch := &models.AlertDispatch{}
		err := rows.Scan(
			&dispatch.ID,
			&dispatch.ReporteID,
			&dispatch.DestinatarioID,
			&dispatch.Canal,
			&dispatch.Estado,
			&dispatch.FechaEnvio,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dispatch row: %w", err)
		}
		dispatches = append(dispatches, dispatch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error dispatch iteration: %w", err)
	}
	return dispatches, nil
}

// ListRecipients devuelve todos los destinatarios configurados
func (r *AlertRepository) ListRecipients(ctx context.Context) ([]*models.AlertRecipient, error) {
	query := fmt.Sprintf(`SELECT %s FROM destinatarios_alertas ORDER BY created_at DESC;`, recipientColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipients: %w", err)
	}
	defer rows.Close()

	recipients := make([]*models.AlertRecipient, 0)
	for rows.Next() {
		recipient, err := scanRecipient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipient row: %w", err)
		}
		recipients = append(recipients, recipient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error recipient iteration: %w", err)
	}
	return recipients, nil
}

// CreateRecipient registra un nuevo destinatario de alertas
func (r *AlertRepository) CreateRecipient(ctx context.Context, recipient *models.AlertRecipient) error {
	severidades := make([]string, 0, len(recipient.Severidades))
	for _, s := range recipient.Severidades {
		severidades = append(severidades, string(s))
	}
	tipos := make([]string, 0, len(recipient.TiposEmergencia))
	for _, t := range recipient.TiposEmergencia {
		tipos = append(tipos, string(t))
	}

	query := `
		INSERT INTO destinatarios_alertas (nombre, canal, contacto, activo, severidades, tipos_emergencia)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		recipient.Nombre,
		recipient.Canal,
		recipient.Contacto,
		recipient.Activo,
		severidades,
		tipos,
	).Scan(&recipient.ID, &recipient.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create recipient: %w", err)
	}
	return nil
}
