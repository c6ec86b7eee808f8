package ai

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOfflineClient() *Client {
	// Sin clave el cliente opera en modo offline determinista
	return NewClient(Config{EmbeddingDimension: 1536})
}

func TestOffline_WithoutAPIKey(t *testing.T) {
	client := newOfflineClient()
	assert.True(t, client.Offline())

	client = NewClient(Config{APIKey: "sk-test"})
	assert.False(t, client.Offline())
}

func TestOfflineEmbedding_Deterministic(t *testing.T) {
	// Preparación
	client := newOfflineClient()
	ctx := context.Background()

	// Acción
	a, err := client.Embed(ctx, "deslizamiento en la comuna 13")
	require.NoError(t, err)
	b, err := client.Embed(ctx, "deslizamiento en la comuna 13")
	require.NoError(t, err)
	c, err := client.Embed(ctx, "inundación en el centro")
	require.NoError(t, err)

	// Verificaciones: texto idéntico produce vector idéntico, texto distinto no
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 1536)
}

func TestOfflineEmbedding_UnitNorm(t *testing.T) {
	// Preparación
	client := newOfflineClient()

	// Acción
	vec, err := client.Embed(context.Background(), "grieta en un puente de Altavista")
	require.NoError(t, err)

	// Verificaciones: vector normalizado L2, la similitud consigo mismo es 1.0
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-5)
}

func TestOfflineExtraction_IsIncomplete(t *testing.T) {
	// La extracción offline es incompleta a propósito: el pipeline debe
	// persistirla como degradada
	client := newOfflineClient()
	extraction, err := client.ExtractEmergencyData(context.Background(), "se cayó un muro")
	require.NoError(t, err)
	assert.False(t, extraction.Complete())
}

func TestOfflineTranscription_NeverEmpty(t *testing.T) {
	client := newOfflineClient()
	out, err := client.Transcribe(context.Background(), []byte("audio-bytes"))
	require.NoError(t, err)
	assert.NotEmpty(t, out.Text)
	assert.Zero(t, out.Confidence)
}

func TestOfflineAnswer(t *testing.T) {
	client := newOfflineClient()
	ctx := context.Background()

	// Sin contexto recuperado la respuesta lo dice explícitamente
	answer, err := client.GenerateAnswer(ctx, "¿qué pasó ayer?", "")
	require.NoError(t, err)
	assert.Contains(t, answer, "No se encontraron reportes")

	// Con contexto se informa el número de reportes encontrados
	answer, err = client.GenerateAnswer(ctx, "¿qué pasó ayer?", "[Reporte 1]\n---\n[Reporte 2]\n---")
	require.NoError(t, err)
	assert.Contains(t, answer, "2 reportes")
}

func TestExtractionComplete(t *testing.T) {
	complete := Extraction{
		TipoEmergencia: "Deslizamiento",
		Ubicacion:      "Calle 45",
		Municipio:      "Medellín",
		Gravedad:       "Alta",
	}
	assert.True(t, complete.Complete())

	// Cada campo obligatorio ausente invalida el esquema
	missing := complete
	missing.Municipio = "  "
	assert.False(t, missing.Complete())

	missing = complete
	missing.Gravedad = ""
	assert.False(t, missing.Complete())
}

func TestConfidenceFromSegments(t *testing.T) {
	// Sin segmentos se asume una confianza por defecto
	assert.Equal(t, 80.0, confidenceFromSegments(verboseTranscription{}))

	// avg_logprob 0 equivale a probabilidad 1.0 → confianza 100
	perfect := verboseTranscription{Segments: []struct {
		AvgLogprob float64 `json:"avg_logprob"`
	}{{AvgLogprob: 0}}}
	assert.InDelta(t, 100.0, confidenceFromSegments(perfect), 0.001)

	// avg_logprob muy negativo tiende a 0
	bad := verboseTranscription{Segments: []struct {
		AvgLogprob float64 `json:"avg_logprob"`
	}{{AvgLogprob: -10}}}
	assert.Less(t, confidenceFromSegments(bad), 1.0)
}
