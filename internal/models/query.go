package models

import (
	"time"

	"github.com/google/uuid"
)

// QueryRecord - registro de auditoría de una consulta RAG
type QueryRecord struct {
	ID                   int64       `json:"id"`
	Consulta             string      `json:"consulta"`
	Respuesta            string      `json:"respuesta"`
	ReportesRelacionados []uuid.UUID `json:"reportes_relacionados"`
	Embedding            []float32   `json:"-"`
	CreatedAt            time.Time   `json:"created_at"`
}
