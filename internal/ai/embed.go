package ai

import (
	"context"
	"fmt"
)

type embeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

// Embed genera el vector de embedding para el texto dado. El mismo modelo se
// usa en la ingesta y en las consultas: un desajuste de modelo degrada la
// calidad de la búsqueda sin fallar.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	if c.Offline() {
		return c.offlineEmbedding(text), nil
	}

	req := embeddingRequest{Model: c.cfg.EmbeddingModel, Input: text}
	var resp embeddingResponse
	if err := c.postJSON(ctx, "/embeddings", req, &resp); err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}
	return resp.Data[0].Embedding, nil
}
