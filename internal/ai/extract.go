package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Extraction - esquema fijo que el extractor debe poblar desde la transcripción
type Extraction struct {
	TipoEmergencia          string   `json:"tipo_emergencia"`
	Subtipo                 string   `json:"subtipo"`
	Ubicacion               string   `json:"ubicacion_texto"`
	Municipio               string   `json:"municipio"`
	Barrio                  string   `json:"barrio"`
	Latitud                 *float64 `json:"latitud"`
	Longitud                *float64 `json:"longitud"`
	Gravedad                string   `json:"gravedad"`
	InfraestructuraAfectada []string `json:"infraestructura_afectada"`
	ImpactoEstimado         string   `json:"impacto_estimado"`
	AccionesInmediatas      []string `json:"acciones_inmediatas"`
}

// Complete verifica que el extractor haya devuelto todos los campos obligatorios
func (e Extraction) Complete() bool {
	return strings.TrimSpace(e.TipoEmergencia) != "" &&
		strings.TrimSpace(e.Ubicacion) != "" &&
		strings.TrimSpace(e.Municipio) != "" &&
		strings.TrimSpace(e.Gravedad) != ""
}

const extractionSystemPrompt = `Eres un Analista de Emergencias del DAGRD Medellín. Analiza la transcripción de un reporte de emergencia de infraestructura y devuelve SOLO JSON estricto con las claves:
tipo_emergencia, subtipo, ubicacion_texto, municipio, barrio, latitud, longitud, gravedad, infraestructura_afectada, impacto_estimado, acciones_inmediatas.
Reglas:
- tipo_emergencia: "Deslizamiento" | "Inundación" | "Colapso Vial" | "Daño Estructural" | "Grieta" | "Otro"
- gravedad: "Baja" | "Media" | "Alta" | "Crítica"
- latitud y longitud: números o null si no se mencionan coordenadas
- infraestructura_afectada y acciones_inmediatas: arreglos de cadenas, [] si no aplica
- no inventes datos; usa únicamente la transcripción
IMPORTANTE: reconoce términos locales de Medellín como "loma", "ladera", "quebrada", comunas (Popular, Santa Cruz, etc.) y corregimientos (San Antonio de Prado, Altavista, etc.).`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	MaxTokens      int           `json:"max_tokens,omitempty"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ExtractEmergencyData obtiene el registro estructurado de emergencia a partir
// de la transcripción. Una extracción incompleta no es error aquí: el pipeline
// decide si persiste degradado.
func (c *Client) ExtractEmergencyData(ctx context.Context, transcript string) (Extraction, error) {
	if c.Offline() {
		return c.offlineExtraction(transcript), nil
	}

	req := chatRequest{
		Model: c.cfg.ExtractionModel,
		Messages: []chatMessage{
			{Role: "system", Content: extractionSystemPrompt},
			{Role: "user", Content: "Transcripción: " + transcript},
		},
		Temperature: 0.2,
		ResponseFormat: &struct {
			Type string `json:"type"`
		}{Type: "json_object"},
	}

	var resp chatResponse
	if err := c.postJSON(ctx, "/chat/completions", req, &resp); err != nil {
		return Extraction{}, fmt.Errorf("extraction request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Extraction{}, fmt.Errorf("extraction returned no choices")
	}

	var out Extraction
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &out); err != nil {
		return Extraction{}, fmt.Errorf("failed to decode extraction JSON: %w", err)
	}
	return out, nil
}
