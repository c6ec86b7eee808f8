package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dagrd-medellin/emergency-pipeline/internal/ai"
	alert_mocks "github.com/dagrd-medellin/emergency-pipeline/internal/alerts/mocks"
	"github.com/dagrd-medellin/emergency-pipeline/internal/models"
	"github.com/dagrd-medellin/emergency-pipeline/internal/service/mocks"
)

type ingestionMocks struct {
	reports    *mocks.MockReportRepository
	audio      *mocks.MockAudioDownloader
	transcribe *mocks.MockTranscriber
	extract    *mocks.MockEmergencyExtractor
	embed      *mocks.MockEmbedder
	publisher  *alert_mocks.MockJobPublisher
}

// newTestIngestionService - función auxiliar para crear el servicio con mocks
func newTestIngestionService(t *testing.T) (*ingestionService, ingestionMocks) {
	ctrl := gomock.NewController(t)
	m := ingestionMocks{
		reports:    mocks.NewMockReportRepository(ctrl),
		audio:      mocks.NewMockAudioDownloader(ctrl),
		transcribe: mocks.NewMockTranscriber(ctrl),
		extract:    mocks.NewMockEmergencyExtractor(ctrl),
		embed:      mocks.NewMockEmbedder(ctrl),
		publisher:  alert_mocks.NewMockJobPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Silenciamos los logs en las pruebas

	service := NewIngestionService(m.reports, m.audio, m.transcribe, m.extract, m.embed, m.publisher, logger)
	return service.(*ingestionService), m
}

func testInboundMessage() InboundAudioMessage {
	return InboundAudioMessage{
		From:      "573001234567",
		MediaID:   "media-abc",
		Timestamp: time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC),
	}
}

func completeExtraction() ai.Extraction {
	return ai.Extraction{
		TipoEmergencia:          "Deslizamiento",
		Subtipo:                 "Deslizamiento de tierra",
		Ubicacion:               "Calle 45 con Carrera 80, barrio Belencito",
		Municipio:               "Medellín",
		Gravedad:                "Alta",
		InfraestructuraAfectada: []string{"vivienda"},
		ImpactoEstimado:         "Dos viviendas en riesgo",
		AccionesInmediatas:      []string{"evacuación preventiva"},
	}
}

func TestProcessAudioMessage_Success(t *testing.T) {
	// Preparación
	service, m := newTestIngestionService(t)
	ctx := context.Background()
	msg := testInboundMessage()
	audio := []byte("ogg-audio-bytes")
	embedding := []float32{0.1, 0.2, 0.3}

	// Expectativas: los seis pasos del pipeline en orden
	m.audio.EXPECT().DownloadAudio(ctx, msg.MediaID).Return(audio, nil).Times(1)
	m.transcribe.EXPECT().Transcribe(ctx, audio).
		Return(ai.Transcription{Text: "Hay un deslizamiento en Belencito", Confidence: 87.5}, nil).Times(1)
	m.extract.EXPECT().ExtractEmergencyData(ctx, "Hay un deslizamiento en Belencito").
		Return(completeExtraction(), nil).Times(1)
	m.embed.EXPECT().Embed(ctx, "Hay un deslizamiento en Belencito").Return(embedding, nil).Times(1)
	m.reports.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Report) error {
			// Simulamos la asignación del ID por parte de la base de datos
			r.ID = uuid.New()
			return nil
		}).Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Acción
	report, err := service.ProcessAudioMessage(ctx, msg)

	// Verificaciones
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, msg.From, report.TelefonoReportante)
	assert.Equal(t, msg.MediaID, report.AudioRef)
	assert.Equal(t, models.TipoDeslizamiento, report.TipoEmergencia)
	assert.Equal(t, models.SeveridadAlta, report.Severidad)
	assert.Equal(t, models.EstadoPendiente, report.Estado)
	assert.Equal(t, embedding, report.Embedding)
	assert.False(t, report.RevisionManual)
	assert.InDelta(t, 87.5, report.ConfianzaTranscripcion, 0.001)
}

func TestProcessAudioMessage_DegradedExtraction_OnError(t *testing.T) {
	// Preparación
	service, m := newTestIngestionService(t)
	ctx := context.Background()
	msg := testInboundMessage()

	// Expectativas: el fallo del extractor NO aborta, el reporte se persiste degradado
	m.audio.EXPECT().DownloadAudio(ctx, msg.MediaID).Return([]byte("audio"), nil).Times(1)
	m.transcribe.EXPECT().Transcribe(ctx, gomock.Any()).
		Return(ai.Transcription{Text: "Se cayó un muro", Confidence: 70}, nil).Times(1)
	m.extract.EXPECT().ExtractEmergencyData(ctx, "Se cayó un muro").
		Return(ai.Extraction{}, fmt.Errorf("extraction request failed")).Times(1)
	m.embed.EXPECT().Embed(ctx, "Se cayó un muro").Return([]float32{0.5}, nil).Times(1)
	m.reports.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Acción
	report, err := service.ProcessAudioMessage(ctx, msg)

	// Verificaciones: valores por defecto y revisión manual activa
	require.NoError(t, err)
	assert.True(t, report.RevisionManual)
	assert.Equal(t, models.TipoOtro, report.TipoEmergencia)
	assert.Equal(t, models.SeveridadMedia, report.Severidad)
	assert.Equal(t, "Se cayó un muro", report.Transcripcion)
}

func TestProcessAudioMessage_DegradedExtraction_Incomplete(t *testing.T) {
	// Preparación
	service, m := newTestIngestionService(t)
	ctx := context.Background()
	msg := testInboundMessage()

	// El extractor devuelve tipo pero sin municipio ni gravedad
	incomplete := ai.Extraction{
		TipoEmergencia: "Inundación",
		Ubicacion:      "Quebrada La Iguaná",
	}

	// Expectativas
	m.audio.EXPECT().DownloadAudio(ctx, msg.MediaID).Return([]byte("audio"), nil).Times(1)
	m.transcribe.EXPECT().Transcribe(ctx, gomock.Any()).
		Return(ai.Transcription{Text: "La quebrada se desbordó", Confidence: 90}, nil).Times(1)
	m.extract.EXPECT().ExtractEmergencyData(ctx, gomock.Any()).Return(incomplete, nil).Times(1)
	m.embed.EXPECT().Embed(ctx, gomock.Any()).Return([]float32{0.5}, nil).Times(1)
	m.reports.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Acción
	report, err := service.ProcessAudioMessage(ctx, msg)

	// Verificaciones: se conserva lo extraído y se degrada el resto
	require.NoError(t, err)
	assert.True(t, report.RevisionManual)
	assert.Equal(t, models.TipoInundacion, report.TipoEmergencia)
	assert.Equal(t, "Quebrada La Iguaná", report.Ubicacion)
	assert.Equal(t, models.SeveridadMedia, report.Severidad)
}

func TestProcessAudioMessage_PublisherFailure_DoesNotFail(t *testing.T) {
	// Preparación
	service, m := newTestIngestionService(t)
	ctx := context.Background()
	msg := testInboundMessage()

	// Expectativas: el reporte ya quedó persistido, el fallo al encolar solo se registra
	m.audio.EXPECT().DownloadAudio(ctx, msg.MediaID).Return([]byte("audio"), nil).Times(1)
	m.transcribe.EXPECT().Transcribe(ctx, gomock.Any()).
		Return(ai.Transcription{Text: "Grieta en un puente", Confidence: 80}, nil).Times(1)
	m.extract.EXPECT().ExtractEmergencyData(ctx, gomock.Any()).Return(completeExtraction(), nil).Times(1)
	m.embed.EXPECT().Embed(ctx, gomock.Any()).Return([]float32{0.5}, nil).Times(1)
	m.reports.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(fmt.Errorf("redis down")).Times(1)

	// Acción
	report, err := service.ProcessAudioMessage(ctx, msg)

	// Verificaciones
	require.NoError(t, err)
	require.NotNil(t, report)
}

func TestProcessAudioMessage_EmptyTranscription(t *testing.T) {
	// Preparación
	service, m := newTestIngestionService(t)
	ctx := context.Background()
	msg := testInboundMessage()

	// Expectativas: la transcripción vacía aborta antes de extraer o persistir
	m.audio.EXPECT().DownloadAudio(ctx, msg.MediaID).Return([]byte("audio"), nil).Times(1)
	m.transcribe.EXPECT().Transcribe(ctx, gomock.Any()).
		Return(ai.Transcription{Text: "   "}, nil).Times(1)
	m.extract.EXPECT().ExtractEmergencyData(gomock.Any(), gomock.Any()).Times(0)
	m.reports.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Acción
	report, err := service.ProcessAudioMessage(ctx, msg)

	// Verificaciones
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorContains(t, err, "transcription is empty")
}

func TestProcessAudioMessage_DownloadError(t *testing.T) {
	// Preparación
	service, m := newTestIngestionService(t)
	ctx := context.Background()
	msg := testInboundMessage()

	// Expectativas
	m.audio.EXPECT().DownloadAudio(ctx, msg.MediaID).Return(nil, fmt.Errorf("media not found")).Times(1)
	m.transcribe.EXPECT().Transcribe(gomock.Any(), gomock.Any()).Times(0)
	m.reports.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Acción
	report, err := service.ProcessAudioMessage(ctx, msg)

	// Verificaciones
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorContains(t, err, "could not download audio")
}

func TestProcessAudioMessage_EmbeddingError(t *testing.T) {
	// Preparación
	service, m := newTestIngestionService(t)
	ctx := context.Background()
	msg := testInboundMessage()

	// Expectativas: sin embedding no hay persistencia, el INSERT es atómico
	m.audio.EXPECT().DownloadAudio(ctx, msg.MediaID).Return([]byte("audio"), nil).Times(1)
	m.transcribe.EXPECT().Transcribe(ctx, gomock.Any()).
		Return(ai.Transcription{Text: "Colapso en la vía", Confidence: 75}, nil).Times(1)
	m.extract.EXPECT().ExtractEmergencyData(ctx, gomock.Any()).Return(completeExtraction(), nil).Times(1)
	m.embed.EXPECT().Embed(ctx, gomock.Any()).Return(nil, fmt.Errorf("embedding request failed")).Times(1)
	m.reports.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Acción
	report, err := service.ProcessAudioMessage(ctx, msg)

	// Verificaciones
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorContains(t, err, "could not generate embedding")
}
