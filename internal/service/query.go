package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dagrd-medellin/emergency-pipeline/internal/models"
)

// AnswerGenerator genera la respuesta final fundamentada en el contexto recuperado
type AnswerGenerator interface {
	GenerateAnswer(ctx context.Context, question, grounding string) (string, error)
}

// QueryRepository persiste el historial de consultas para auditoría
type QueryRepository interface {
	SaveQuery(ctx context.Context, record *models.QueryRecord) error
}

// QueryResult - respuesta del motor RAG. Sources siempre es un subconjunto de
// los IDs de RelatedReports: el motor nunca inventa fuentes.
type QueryResult struct {
	Answer         string
	RelatedReports []*models.ReportMatch
	Sources        []uuid.UUID
}

// QueryService - contrato del motor de consultas RAG
type QueryService interface {
	Answer(ctx context.Context, question string) (*QueryResult, error)
}

type queryService struct {
	reports   ReportRepository
	queries   QueryRepository
	embed     Embedder
	generate  AnswerGenerator
	logger    *logrus.Logger
	topK      int
	threshold float64
}

func NewQueryService(reports ReportRepository, queries QueryRepository, embedder Embedder, generator AnswerGenerator, logger *logrus.Logger, topK int, threshold float64) QueryService {
	if topK < 1 {
		topK = 5
	}
	return &queryService{
		reports:   reports,
		queries:   queries,
		embed:     embedder,
		generate:  generator,
		logger:    logger,
		topK:      topK,
		threshold: threshold,
	}
}

// Answer responde una pregunta en lenguaje natural sobre el archivo de reportes:
// embedding de la pregunta → búsqueda por similitud → respuesta fundamentada →
// registro de auditoría. Una recuperación vacía no es error: se responde
// indicando explícitamente que no hay datos.
func (s *queryService) Answer(ctx context.Context, question string) (*QueryResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "query",
		"method":  "Answer",
	})
	log.Info("Processing RAG query")

	// La pregunta se embebe con el mismo modelo que los reportes en la ingesta
	embedding, err := s.embed.Embed(ctx, question)
	if err != nil {
		log.WithError(err).Error("Failed to embed query")
		return nil, fmt.Errorf("service: could not embed query: %w", err)
	}

	// Solo entran reportes por encima del umbral; nunca se rellena con menos relevantes
	matches, err := s.reports.SearchSimilar(ctx, embedding, s.topK, s.threshold)
	if err != nil {
		log.WithError(err).Error("Similarity search failed")
		return nil, fmt.Errorf("service: similarity search failed: %w", err)
	}
	log.WithField("matches", len(matches)).Info("Similarity search completed")

	answer, err := s.generate.GenerateAnswer(ctx, question, buildGroundingContext(matches))
	if err != nil {
		log.WithError(err).Error("Failed to generate answer")
		return nil, fmt.Errorf("service: could not generate answer: %w", err)
	}

	sources := make([]uuid.UUID, 0, len(matches))
	for _, m := range matches {
		sources = append(sources, m.Report.ID)
	}

	// Registro de auditoría; su fallo no invalida la respuesta ya generada
	record := &models.QueryRecord{
		Consulta:             question,
		Respuesta:            answer,
		ReportesRelacionados: sources,
		Embedding:            embedding,
	}
	if err := s.queries.SaveQuery(ctx, record); err != nil {
		log.WithError(err).Error("Failed to save query audit record")
	}

	return &QueryResult{
		Answer:         answer,
		RelatedReports: matches,
		Sources:        sources,
	}, nil
}

// buildGroundingContext arma el contexto textual que fundamenta la respuesta
func buildGroundingContext(matches []*models.ReportMatch) string {
	if len(matches) == 0 {
		return ""
	}
	var b strings.Builder
	for i, m := range matches {
		r := m.Report
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(fmt.Sprintf("[Reporte %d]\n", i+1))
		b.WriteString(fmt.Sprintf("ID: %s\n", r.ID))
		b.WriteString(fmt.Sprintf("Fecha: %s\n", r.FechaRecepcion.Format("2006-01-02")))
		b.WriteString(fmt.Sprintf("Tipo: %s\n", r.TipoEmergencia))
		b.WriteString(fmt.Sprintf("Ubicación: %s, %s\n", r.Ubicacion, r.Municipio))
		b.WriteString(fmt.Sprintf("Severidad: %s\n", r.Severidad))
		b.WriteString(fmt.Sprintf("Transcripción: %s\n", excerpt(r.Transcripcion, 400)))
		b.WriteString("---")
	}
	return b.String()
}

// excerpt recorta el texto a n runas para no inflar el prompt
func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
