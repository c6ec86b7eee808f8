package ai

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// Modo offline: sin clave de proveedor el servicio no puede transcribir ni
// extraer de verdad, pero debe seguir arrancando y respondiendo de forma
// determinista (útil también en desarrollo y pruebas).

func (c *Client) offlineTranscription(audio []byte) Transcription {
	sum := sha256.Sum256(audio)
	return Transcription{
		Text:       fmt.Sprintf("(modo offline) audio recibido sin proveedor de transcripción configurado [%x]", sum[:4]),
		Confidence: 0,
	}
}

// offlineExtraction devuelve una extracción incompleta a propósito: el
// pipeline la persiste como degradada con revision_manual activa.
func (c *Client) offlineExtraction(transcript string) Extraction {
	return Extraction{
		ImpactoEstimado:         "",
		InfraestructuraAfectada: []string{},
		AccionesInmediatas:      []string{},
	}
}

// offlineEmbedding genera un vector unitario determinista a partir del texto.
// Texto idéntico produce vector idéntico, así que la similitud coseno de un
// texto consigo mismo sigue siendo 1.0.
func (c *Client) offlineEmbedding(text string) []float32 {
	dim := c.cfg.EmbeddingDimension
	vec := make([]float32, dim)
	buf := sha256.Sum256([]byte(text))

	var norm float64
	for i := 0; i < dim; i++ {
		// Cada hash de 32 bytes aporta 8 valores de 4 bytes
		if i > 0 && i%8 == 0 {
			buf = sha256.Sum256(buf[:])
		}
		bits := binary.BigEndian.Uint32(buf[(i%8)*4:])
		v := float64(int32(bits)) / float64(math.MaxInt32)
		vec[i] = float32(v)
		norm += v * v
	}

	// Normalización L2
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] = float32(float64(vec[i]) / norm)
		}
	}
	return vec
}

func (c *Client) offlineAnswer(question, grounding string) string {
	if strings.TrimSpace(grounding) == "" {
		return "No se encontraron reportes relevantes en la base de datos para responder la consulta. (proveedor de IA no configurado)"
	}
	n := strings.Count(grounding, "[Reporte")
	return fmt.Sprintf("Se encontraron %d reportes relacionados con la consulta, pero el proveedor de IA no está configurado para generar un análisis detallado.", n)
}
