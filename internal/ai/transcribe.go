package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"strings"
)

// Transcription - texto transcrito y confianza estimada (0-100)
type Transcription struct {
	Text       string
	Confidence float64
}

type verboseTranscription struct {
	Text     string `json:"text"`
	Segments []struct {
		AvgLogprob float64 `json:"avg_logprob"`
	} `json:"segments"`
}

// Transcribe convierte audio crudo en texto usando el modelo de transcripción.
// Pide response_format=verbose_json para derivar la confianza de los
// avg_logprob por segmento.
func (c *Client) Transcribe(ctx context.Context, audio []byte) (Transcription, error) {
	if c.Offline() {
		return c.offlineTranscription(audio), nil
	}
	if len(audio) == 0 {
		return Transcription{}, fmt.Errorf("empty audio payload")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "audio.ogg")
	if err != nil {
		return Transcription{}, fmt.Errorf("failed to create multipart file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return Transcription{}, fmt.Errorf("failed to write audio payload: %w", err)
	}
	_ = w.WriteField("model", c.cfg.TranscriptionModel)
	_ = w.WriteField("language", "es")
	_ = w.WriteField("response_format", "verbose_json")
	if err := w.Close(); err != nil {
		return Transcription{}, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return Transcription{}, fmt.Errorf("failed to create transcription request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Transcription{}, fmt.Errorf("transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return Transcription{}, fmt.Errorf("failed to read transcription response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return Transcription{}, fmt.Errorf("transcription failed: %s: %s", resp.Status, truncate(string(payload), 200))
	}

	var out verboseTranscription
	if err := json.Unmarshal(payload, &out); err != nil {
		return Transcription{}, fmt.Errorf("failed to decode transcription response: %w", err)
	}

	text := strings.TrimSpace(out.Text)
	if text == "" {
		return Transcription{}, fmt.Errorf("transcription returned empty text")
	}

	return Transcription{Text: text, Confidence: confidenceFromSegments(out)}, nil
}

// confidenceFromSegments mapea el avg_logprob medio a una escala 0-100
func confidenceFromSegments(t verboseTranscription) float64 {
	if len(t.Segments) == 0 {
		return 80
	}
	sum := 0.0
	for _, s := range t.Segments {
		sum += s.AvgLogprob
	}
	mean := sum / float64(len(t.Segments))
	conf := math.Exp(mean) * 100
	if conf > 100 {
		conf = 100
	}
	if conf < 0 {
		conf = 0
	}
	return conf
}
