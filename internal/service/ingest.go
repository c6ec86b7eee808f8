package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dagrd-medellin/emergency-pipeline/internal/ai"
	"github.com/dagrd-medellin/emergency-pipeline/internal/alerts"
	"github.com/dagrd-medellin/emergency-pipeline/internal/models"
)

// AudioDownloader descarga los bytes de audio de un mensaje entrante
type AudioDownloader interface {
	DownloadAudio(ctx context.Context, mediaID string) ([]byte, error)
}

// Transcriber convierte audio en texto con un puntaje de confianza
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (ai.Transcription, error)
}

// EmergencyExtractor obtiene el registro estructurado de emergencia desde texto libre
type EmergencyExtractor interface {
	ExtractEmergencyData(ctx context.Context, transcript string) (ai.Extraction, error)
}

// Embedder convierte texto en un vector para búsqueda semántica
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// InboundAudioMessage - descriptor de un mensaje de voz entrante del webhook
type InboundAudioMessage struct {
	From      string
	MediaID   string
	Timestamp time.Time
}

// IngestionService - contrato del pipeline de ingesta de reportes
type IngestionService interface {
	ProcessAudioMessage(ctx context.Context, msg InboundAudioMessage) (*models.Report, error)
}

type ingestionService struct {
	reports    ReportRepository
	audio      AudioDownloader
	transcribe Transcriber
	extract    EmergencyExtractor
	embed      Embedder
	publisher  alerts.JobPublisher
	logger     *logrus.Logger
}

func NewIngestionService(
	reports ReportRepository,
	audio AudioDownloader,
	transcriber Transcriber,
	extractor EmergencyExtractor,
	embedder Embedder,
	publisher alerts.JobPublisher,
	logger *logrus.Logger,
) IngestionService {
	return &ingestionService{
		reports:    reports,
		audio:      audio,
		transcribe: transcriber,
		extract:    extractor,
		embed:      embedder,
		publisher:  publisher,
		logger:     logger,
	}
}

// ProcessAudioMessage ejecuta el pipeline completo para un mensaje de voz:
// descarga → transcripción → extracción → embedding → persistencia → alerta.
// Los pasos son estrictamente secuenciales; un fallo antes de la persistencia
// aborta sin dejar reporte parcial. La extracción incompleta NO aborta: se
// persiste degradada con revision_manual para no perder el reporte ciudadano.
func (s *ingestionService) ProcessAudioMessage(ctx context.Context, msg InboundAudioMessage) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "ingestion",
		"method":   "ProcessAudioMessage",
		"from":     msg.From,
		"media_id": msg.MediaID,
	})
	log.Info("Processing inbound audio message")

	// 1. Descarga del audio desde el proveedor de mensajería
	audio, err := s.audio.DownloadAudio(ctx, msg.MediaID)
	if err != nil {
		log.WithError(err).Error("Failed to download audio")
		return nil, fmt.Errorf("service: could not download audio: %w", err)
	}

	// 2. Transcripción; vacía o fallida aborta el pipeline
	transcription, err := s.transcribe.Transcribe(ctx, audio)
	if err != nil {
		log.WithError(err).Error("Failed to transcribe audio")
		return nil, fmt.Errorf("service: could not transcribe audio: %w", err)
	}
	if strings.TrimSpace(transcription.Text) == "" {
		log.Error("Transcription returned empty text")
		return nil, fmt.Errorf("service: transcription is empty")
	}

	// 3. Extracción estructurada; incompleta degrada en lugar de abortar
	report := &models.Report{
		TelefonoReportante:     msg.From,
		AudioRef:               msg.MediaID,
		Transcripcion:          transcription.Text,
		ConfianzaTranscripcion: transcription.Confidence,
		Estado:                 models.EstadoPendiente,
		FechaRecepcion:         msg.Timestamp,
	}

	extraction, err := s.extract.ExtractEmergencyData(ctx, transcription.Text)
	if err != nil || !extraction.Complete() {
		if err != nil {
			log.WithError(err).Warn("Extraction failed, persisting degraded report")
		} else {
			log.Warn("Extraction returned incomplete schema, persisting degraded report")
		}
		applyDegradedExtraction(report, extraction)
	} else {
		applyExtraction(report, extraction)
	}

	// 4. Embedding sobre la transcripción (no sobre el resumen extraído) para
	// que la búsqueda semántica coincida con las palabras del reportante
	embedding, err := s.embed.Embed(ctx, transcription.Text)
	if err != nil {
		log.WithError(err).Error("Failed to generate embedding")
		return nil, fmt.Errorf("service: could not generate embedding: %w", err)
	}
	report.Embedding = embedding

	// 5. Persistencia atómica: un solo INSERT con todos los campos
	if err := s.reports.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to persist report")
		return nil, fmt.Errorf("service: could not create report: %w", err)
	}
	log.WithField("reporte_id", report.ID).Info("Report created successfully")

	// 6. Distribución de alertas en segundo plano; su fallo no revierte el reporte
	job := alerts.Job{ReporteID: report.ID, EncoladoEn: time.Now().UTC()}
	if err := s.publisher.Publish(ctx, job); err != nil {
		log.WithError(err).Error("Failed to enqueue alert job, report is persisted anyway")
	}

	return report, nil
}

// applyExtraction vuelca una extracción completa sobre el reporte
func applyExtraction(r *models.Report, e ai.Extraction) {
	r.TipoEmergencia = models.ParseEmergencyType(e.TipoEmergencia)
	r.Subtipo = e.Subtipo
	r.Ubicacion = e.Ubicacion
	r.Municipio = e.Municipio
	r.Latitud = e.Latitud
	r.Longitud = e.Longitud
	r.Severidad = models.ParseSeverity(e.Gravedad)
	r.InfraestructuraAfectada = e.InfraestructuraAfectada
	r.ImpactoEstimado = e.ImpactoEstimado
	r.AccionesInmediatas = e.AccionesInmediatas
	if r.InfraestructuraAfectada == nil {
		r.InfraestructuraAfectada = []string{}
	}
	if r.AccionesInmediatas == nil {
		r.AccionesInmediatas = []string{}
	}
}

// applyDegradedExtraction rellena los campos obligatorios con valores por
// defecto conservando lo que el extractor sí haya devuelto
func applyDegradedExtraction(r *models.Report, e ai.Extraction) {
	applyExtraction(r, e)
	r.RevisionManual = true
	if strings.TrimSpace(e.TipoEmergencia) == "" {
		r.TipoEmergencia = models.TipoOtro
	}
	if strings.TrimSpace(e.Gravedad) == "" {
		r.Severidad = models.SeveridadMedia
	}
}
