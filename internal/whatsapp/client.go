// Package whatsapp implementa el cliente mínimo de la Graph API de Meta:
// descarga de medios de mensajes entrantes y envío de mensajes de texto.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client - cliente HTTP hacia la Graph API
type Client struct {
	accessToken   string
	phoneNumberID string
	baseURL       string
	httpClient    *http.Client
}

// NewClient crea un nuevo cliente de WhatsApp. Un token vacío deja el cliente
// en modo no-op: la descarga falla con un error claro y el envío se omite.
func NewClient(accessToken, phoneNumberID, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://graph.facebook.com/v18.0"
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
		baseURL:       baseURL,
		httpClient:    &http.Client{Timeout: timeout},
	}
}

// Configured indica si hay token de acceso disponible
func (c *Client) Configured() bool {
	return c.accessToken != ""
}

// DownloadAudio descarga los bytes de un medio en dos pasos: primero resuelve
// la URL temporal del medio y luego descarga el binario.
func (c *Client) DownloadAudio(ctx context.Context, mediaID string) ([]byte, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("whatsapp access token is not configured")
	}

	mediaURL, err := c.lookupMediaURL(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create media download request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("media download failed: %s", resp.Status)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read media body: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("media %s returned empty body", mediaID)
	}
	return audio, nil
}

func (c *Client) lookupMediaURL(ctx context.Context, mediaID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", c.baseURL, mediaID), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create media lookup request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("media lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("media lookup failed: %s", resp.Status)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode media lookup response: %w", err)
	}
	if out.URL == "" {
		return "", fmt.Errorf("media %s has no downloadable url", mediaID)
	}
	return out.URL, nil
}

// SendTextMessage envía un mensaje de texto a un número. Sin token configurado
// no hace nada y devuelve nil para no romper flujos que lo usan como aviso.
func (c *Client) SendTextMessage(ctx context.Context, to, body string) error {
	if !c.Configured() {
		return nil
	}

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text":              map[string]string{"body": body},
	}
	buf, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID), bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("failed to create message request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("message send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("message send failed: %s", resp.Status)
	}
	return nil
}
