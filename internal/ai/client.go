// Package ai implementa el cliente del proveedor de IA (API compatible con
// OpenAI): transcripción de audio, extracción estructurada, embeddings y
// generación de respuestas. Sin clave configurada opera en modo degradado
// determinista (ver offline.go).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Config configura el cliente del proveedor de IA
type Config struct {
	APIKey             string
	BaseURL            string
	TranscriptionModel string
	ExtractionModel    string
	EmbeddingModel     string
	CompletionModel    string
	EmbeddingDimension int
	Timeout            time.Duration
}

// Client - cliente HTTP hacia el proveedor de IA
type Client struct {
	cfg        Config
	httpClient *http.Client
	maxRetries int
}

// NewClient crea un nuevo cliente. No falla con clave vacía: en ese caso el
// cliente opera en modo offline para que el proceso arranque igual.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.TranscriptionModel == "" {
		cfg.TranscriptionModel = "whisper-1"
	}
	if cfg.ExtractionModel == "" {
		cfg.ExtractionModel = "gpt-4-turbo-preview"
	}
	if cfg.EmbeddingModel == "" {
		cfg.EmbeddingModel = "text-embedding-3-small"
	}
	if cfg.CompletionModel == "" {
		cfg.CompletionModel = cfg.ExtractionModel
	}
	if cfg.EmbeddingDimension <= 0 {
		cfg.EmbeddingDimension = 1536
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		maxRetries: 3,
	}
}

// Offline indica si el cliente opera sin proveedor configurado
func (c *Client) Offline() bool {
	return c.cfg.APIKey == ""
}

// postJSON envía un POST JSON con reintentos ante 429/5xx
func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request payload: %w", err)
	}

	url := c.cfg.BaseURL + path
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if attempt < c.maxRetries {
				sleepCtx(ctx, retryDelay(attempt))
				continue
			}
			return fmt.Errorf("request to %s failed: %w", path, lastErr)
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			delay := retryDelay(attempt)
			// Respetamos Retry-After si viene en la respuesta
			if ra := resp.Header.Get("Retry-After"); ra != "" {
				if secs, err := strconv.Atoi(ra); err == nil {
					delay = time.Duration(secs) * time.Second
				}
			}
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("provider returned %s", resp.Status)
			if attempt < c.maxRetries {
				sleepCtx(ctx, delay)
				continue
			}
			return fmt.Errorf("request to %s failed after retries: %w", path, lastErr)
		}

		payload, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}
		if resp.StatusCode >= 300 {
			return fmt.Errorf("request to %s failed: %s: %s", path, resp.Status, truncate(string(payload), 200))
		}
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
		return nil
	}
	return lastErr
}

func retryDelay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	base := 500 * time.Millisecond
	d := base << attempt
	if d > 8*time.Second {
		d = 8 * time.Second
	}
	return d
}

// sleepCtx espera respetando la cancelación del contexto
func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
