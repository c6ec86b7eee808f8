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

	"github.com/dagrd-medellin/emergency-pipeline/internal/models"
	"github.com/dagrd-medellin/emergency-pipeline/internal/service/mocks"
)

// newTestQueryService - función auxiliar para crear el motor RAG con mocks
func newTestQueryService(t *testing.T) (*queryService, *mocks.MockReportRepository, *mocks.MockQueryRepository, *mocks.MockEmbedder, *mocks.MockAnswerGenerator) {
	ctrl := gomock.NewController(t)
	reportsMock := mocks.NewMockReportRepository(ctrl)
	queriesMock := mocks.NewMockQueryRepository(ctrl)
	embedderMock := mocks.NewMockEmbedder(ctrl)
	generatorMock := mocks.NewMockAnswerGenerator(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Silenciamos los logs en las pruebas

	service := NewQueryService(reportsMock, queriesMock, embedderMock, generatorMock, logger, 5, 0.7)
	return service.(*queryService), reportsMock, queriesMock, embedderMock, generatorMock
}

func testMatches(n int) []*models.ReportMatch {
	matches := make([]*models.ReportMatch, 0, n)
	for i := 0; i < n; i++ {
		matches = append(matches, &models.ReportMatch{
			Report: &models.Report{
				ID:             uuid.New(),
				TipoEmergencia: models.TipoDeslizamiento,
				Severidad:      models.SeveridadAlta,
				Ubicacion:      "Comuna 13",
				Municipio:      "Medellín",
				Transcripcion:  fmt.Sprintf("Reporte de prueba %d", i+1),
				FechaRecepcion: time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
			},
			Similarity: 0.9 - float64(i)*0.05,
		})
	}
	return matches
}

func TestAnswer_Success(t *testing.T) {
	// Preparación
	service, reportsMock, queriesMock, embedderMock, generatorMock := newTestQueryService(t)
	ctx := context.Background()
	question := "¿Cuántos deslizamientos hubo en la Comuna 13?"
	embedding := []float32{0.1, 0.2}
	matches := testMatches(2)

	// Expectativas: embedding → búsqueda → respuesta → auditoría
	embedderMock.EXPECT().Embed(ctx, question).Return(embedding, nil).Times(1)
	reportsMock.EXPECT().SearchSimilar(ctx, embedding, 5, 0.7).Return(matches, nil).Times(1)
	generatorMock.EXPECT().GenerateAnswer(ctx, question, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, grounding string) (string, error) {
			// El contexto de fundamentación contiene los reportes recuperados
			assert.Contains(t, grounding, "[Reporte 1]")
			assert.Contains(t, grounding, "[Reporte 2]")
			return "Se registraron dos deslizamientos en la Comuna 13.", nil
		}).Times(1)
	queriesMock.EXPECT().SaveQuery(ctx, gomock.Any()).
		Do(func(_ context.Context, record *models.QueryRecord) {
			assert.Equal(t, question, record.Consulta)
			assert.Len(t, record.ReportesRelacionados, 2)
		}).Return(nil).Times(1)

	// Acción
	result, err := service.Answer(ctx, question)

	// Verificaciones: las fuentes son exactamente los IDs de los reportes recuperados
	require.NoError(t, err)
	assert.Equal(t, "Se registraron dos deslizamientos en la Comuna 13.", result.Answer)
	assert.Len(t, result.RelatedReports, 2)
	require.Len(t, result.Sources, 2)
	assert.Equal(t, matches[0].Report.ID, result.Sources[0])
	assert.Equal(t, matches[1].Report.ID, result.Sources[1])
}

func TestAnswer_EmptyRetrieval(t *testing.T) {
	// Preparación
	service, reportsMock, queriesMock, embedderMock, generatorMock := newTestQueryService(t)
	ctx := context.Background()
	question := "¿Hubo terremotos ayer?"

	// Expectativas: sin coincidencias la respuesta se genera con contexto vacío
	embedderMock.EXPECT().Embed(ctx, question).Return([]float32{0.3}, nil).Times(1)
	reportsMock.EXPECT().SearchSimilar(ctx, gomock.Any(), 5, 0.7).
		Return([]*models.ReportMatch{}, nil).Times(1)
	generatorMock.EXPECT().GenerateAnswer(ctx, question, "").
		Return("No se encontraron reportes relevantes en la base de datos.", nil).Times(1)
	queriesMock.EXPECT().SaveQuery(ctx, gomock.Any()).Return(nil).Times(1)

	// Acción
	result, err := service.Answer(ctx, question)

	// Verificaciones: la recuperación vacía no es error
	require.NoError(t, err)
	assert.Empty(t, result.RelatedReports)
	assert.Empty(t, result.Sources)
	assert.Contains(t, result.Answer, "No se encontraron reportes")
}

func TestAnswer_AuditFailure_DoesNotFail(t *testing.T) {
	// Preparación
	service, reportsMock, queriesMock, embedderMock, generatorMock := newTestQueryService(t)
	ctx := context.Background()
	question := "¿Qué pasó en Altavista?"
	matches := testMatches(1)

	// Expectativas: la respuesta ya generada no se invalida por el fallo de auditoría
	embedderMock.EXPECT().Embed(ctx, question).Return([]float32{0.2}, nil).Times(1)
	reportsMock.EXPECT().SearchSimilar(ctx, gomock.Any(), 5, 0.7).Return(matches, nil).Times(1)
	generatorMock.EXPECT().GenerateAnswer(ctx, question, gomock.Any()).
		Return("Hubo un deslizamiento.", nil).Times(1)
	queriesMock.EXPECT().SaveQuery(ctx, gomock.Any()).
		Return(fmt.Errorf("insert failed")).Times(1)

	// Acción
	result, err := service.Answer(ctx, question)

	// Verificaciones
	require.NoError(t, err)
	assert.Equal(t, "Hubo un deslizamiento.", result.Answer)
}

func TestAnswer_EmbeddingError(t *testing.T) {
	// Preparación
	service, reportsMock, _, embedderMock, _ := newTestQueryService(t)
	ctx := context.Background()

	// Expectativas
	embedderMock.EXPECT().Embed(ctx, gomock.Any()).
		Return(nil, fmt.Errorf("provider unavailable")).Times(1)
	reportsMock.EXPECT().SearchSimilar(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Acción
	result, err := service.Answer(ctx, "pregunta")

	// Verificaciones
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "could not embed query")
}

func TestBuildGroundingContext_Empty(t *testing.T) {
	assert.Equal(t, "", buildGroundingContext(nil))
}

func TestExcerpt_TruncatesLongText(t *testing.T) {
	long := make([]rune, 500)
	for i := range long {
		long[i] = 'a'
	}
	out := excerpt(string(long), 400)
	assert.Len(t, []rune(out), 401) // 400 runas más la elipsis
	assert.Equal(t, "corto", excerpt("corto", 400))
}
