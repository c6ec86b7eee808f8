package ai

import (
	"context"
	"fmt"
)

const ragSystemPrompt = `Eres un Analista de Datos del DAGRD Medellín especializado en emergencias de infraestructura.

INSTRUCCIONES:
- Responde en español de forma clara y profesional
- Responde SOLO basándote en los reportes históricos proporcionados
- Menciona estadísticas específicas (cantidades, fechas, ubicaciones)
- Identifica patrones y tendencias cuando sea relevante
- Si no hay suficiente información, indícalo claramente
- Usa términos locales de Medellín (comunas, corregimientos, barrios)
- Proporciona recomendaciones cuando sea apropiado`

// GenerateAnswer genera la respuesta RAG fundamentada en el contexto dado.
// El prompt restringe al modelo a responder solo con los reportes provistos.
func (c *Client) GenerateAnswer(ctx context.Context, question, grounding string) (string, error) {
	if c.Offline() {
		return c.offlineAnswer(question, grounding), nil
	}

	if grounding == "" {
		grounding = "No se encontraron reportes relevantes en la base de datos."
	}

	req := chatRequest{
		Model: c.cfg.CompletionModel,
		Messages: []chatMessage{
			{Role: "system", Content: ragSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("Pregunta del usuario: %s\n\nReportes históricos relevantes encontrados:\n%s\n\nPor favor, responde la pregunta basándote en estos reportes históricos.", question, grounding)},
		},
		Temperature: 0.3,
		MaxTokens:   800,
	}

	var resp chatResponse
	if err := c.postJSON(ctx, "/chat/completions", req, &resp); err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("completion returned no answer")
	}
	return resp.Choices[0].Message.Content, nil
}
