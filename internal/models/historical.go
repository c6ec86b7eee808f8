package models

import "time"

// HistoricalRecord - registro del histórico importado en bloque.
// Es un dataset preexistente, separado de los reportes del pipeline,
// pero consultable desde el mismo panel.
type HistoricalRecord struct {
	ID            int64     `json:"id"`
	Direccion     string    `json:"direccion"`
	Barrio        string    `json:"barrio,omitempty"`
	Comuna        string    `json:"comuna,omitempty"`
	Latitud       *float64  `json:"latitud,omitempty"`
	Longitud      *float64  `json:"longitud,omitempty"`
	Prioridad     string    `json:"prioridad,omitempty"`
	Observaciones string    `json:"observaciones,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
