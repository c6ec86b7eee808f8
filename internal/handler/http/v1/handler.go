package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dagrd-medellin/emergency-pipeline/internal/config"
	"github.com/dagrd-medellin/emergency-pipeline/internal/models"
	"github.com/dagrd-medellin/emergency-pipeline/internal/service"
)

type Handler struct {
	ingestionService service.IngestionService
	reportService    service.ReportService
	alertService     service.AlertService
	queryService     service.QueryService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(
	ingestionService service.IngestionService,
	reportService service.ReportService,
	alertService service.AlertService,
	queryService service.QueryService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		ingestionService: ingestionService,
		reportService:    reportService,
		alertService:     alertService,
		queryService:     queryService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Ask the emergency archive
// @Description Answer a natural-language question grounded on similar emergency reports. Requires API key.
// @Tags Queries
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param query body QueryRequest true "RAG query request"
// @Success 200 {object} QueryResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /consultas/rag [post]
func (h *Handler) ragQuery(c *gin.Context) {
	var input QueryRequest
	log := h.logger.WithField("method", "ragQuery")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.queryService.Answer(c.Request.Context(), input.Query)
	if err != nil {
		log.WithError(err).Error("Failed to answer query in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, QueryResponse{
		Answer:         result.Answer,
		RelatedReports: MatchesToRelatedResponses(result.RelatedReports),
		Sources:        result.Sources,
	})
}

// @Summary Distribute alerts for a report
// @Description Compute eligible recipients for a report and dispatch alerts to them. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body DistributeAlertsRequest true "Alert distribution request"
// @Success 200 {object} DistributeAlertsResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alertas/distribuir [post]
func (h *Handler) distributeAlerts(c *gin.Context) {
	var input DistributeAlertsRequest
	log := h.logger.WithField("method", "distributeAlerts")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reporteID, err := uuid.Parse(input.ReporteID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}

	sent, err := h.alertService.DistributeAlerts(c.Request.Context(), reporteID)
	if err != nil {
		log.WithError(err).Error("Failed to distribute alerts in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, DistributeAlertsResponse{Success: true, AlertsSent: sent})
}

// @Summary Get a list of emergency reports
// @Description Get a filtered, paginated list of emergency reports. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Param estado query string false "Filter by report status"
// @Param severidad query string false "Filter by severity"
// @Param tipo query string false "Filter by emergency type"
// @Param municipio query string false "Filter by municipality"
// @Param busqueda query string false "Free-text search over transcription and location"
// @Param fechaInicio query string false "Reception date lower bound (RFC3339)"
// @Param fechaFin query string false "Reception date upper bound (RFC3339)"
// @Success 200 {object} ReportListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reportes [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	filter := models.ReportFilter{
		Estado:    models.ReportStatus(c.Query("estado")),
		Severidad: models.Severity(c.Query("severidad")),
		Tipo:      models.EmergencyType(c.Query("tipo")),
		Municipio: c.Query("municipio"),
		Busqueda:  c.Query("busqueda"),
		Page:      page,
		PageSize:  pageSize,
	}
	if v := c.Query("fechaInicio"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.FechaInicio = &t
		}
	}
	if v := c.Query("fechaFin"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.FechaFin = &t
		}
	}

	reports, total, err := h.reportService.ListReports(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ReportListResponse{
		Data:     ModelsToReportResponses(reports),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

// @Summary Get report by ID
// @Description Get a single emergency report with its interventions. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {object} ReportDetailResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reportes/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "getReport").WithField("id", id)

	report, interventions, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}

	c.JSON(http.StatusOK, ReportDetailResponse{
		Report:         ModelToReportResponse(report),
		Intervenciones: ModelsToInterventionResponses(interventions),
	})
}

// @Summary Advance report status
// @Description Advance the status of a report. Transitions only move forward, a report never reopens. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Param request body UpdateReportStatusRequest true "Status update request"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Backward or invalid status transition"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reportes/{id}/estado [patch]
func (h *Handler) updateReportStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "updateReportStatus").WithField("id", id)

	var input UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.reportService.UpdateReportStatus(c.Request.Context(), id, models.ReportStatus(input.Estado)); err != nil {
		if errors.Is(err, service.ErrBackwardTransition) || errors.Is(err, service.ErrInvalidStatus) {
			log.WithError(err).Warn("Rejected status transition")
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to update report status in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	report, _, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to reload report after status update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Get report statistics
// @Description Get the count of reports grouped by status. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reportes/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.reportService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := StatsResponse{
		Pendiente: stats[models.EstadoPendiente],
		EnProceso: stats[models.EstadoEnProceso],
		Resuelto:  stats[models.EstadoResuelto],
	}
	resp.Total = resp.Pendiente + resp.EnProceso + resp.Resuelto
	c.JSON(http.StatusOK, resp)
}

// @Summary Create an intervention
// @Description Create an intervention for a report. The parent report moves to en_proceso if still pending. Requires API key.
// @Tags Interventions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param intervention body CreateInterventionRequest true "Intervention creation request"
// @Success 201 {object} InterventionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /intervenciones [post]
func (h *Handler) createIntervention(c *gin.Context) {
	var input CreateInterventionRequest
	log := h.logger.WithField("method", "createIntervention")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reporteID, err := uuid.Parse(input.ReporteID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}

	intervention := &models.Intervention{
		ReporteID:   reporteID,
		Personal:    input.Personal,
		Descripcion: input.Descripcion,
		Notas:       input.Notas,
	}
	if err := h.reportService.CreateIntervention(c.Request.Context(), intervention); err != nil {
		log.WithError(err).Error("Failed to create intervention in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToInterventionResponse(intervention))
}

// @Summary Advance intervention status
// @Description Advance the status of an intervention. Completing it sets the finalization date. Requires API key.
// @Tags Interventions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Intervention ID"
// @Param request body UpdateInterventionRequest true "Intervention update request"
// @Success 200 {object} InterventionResponse
// @Failure 400 {object} map[string]string "Invalid intervention ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Backward or invalid status transition"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /intervenciones/{id} [patch]
func (h *Handler) updateIntervention(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid intervention ID"})
		return
	}
	log := h.logger.WithField("method", "updateIntervention").WithField("id", id)

	var input UpdateInterventionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intervention, err := h.reportService.UpdateIntervention(c.Request.Context(), id, models.InterventionStatus(input.Estado), input.Notas)
	if err != nil {
		if errors.Is(err, service.ErrBackwardTransition) || errors.Is(err, service.ErrInvalidStatus) {
			log.WithError(err).Warn("Rejected intervention transition")
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to update intervention in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToInterventionResponse(intervention))
}

// @Summary Get alert recipients
// @Description Get all configured alert recipients. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} RecipientResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /destinatarios [get]
func (h *Handler) listRecipients(c *gin.Context) {
	log := h.logger.WithField("method", "listRecipients")

	recipients, err := h.alertService.ListRecipients(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list recipients from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToRecipientResponses(recipients))
}

// @Summary Register an alert recipient
// @Description Register a new alert recipient with its severity and type subscriptions. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param recipient body CreateRecipientRequest true "Recipient creation request"
// @Success 201 {object} RecipientResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /destinatarios [post]
func (h *Handler) createRecipient(c *gin.Context) {
	var input CreateRecipientRequest
	log := h.logger.WithField("method", "createRecipient")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipient := DTOToRecipientModel(input)
	if err := h.alertService.CreateRecipient(c.Request.Context(), recipient); err != nil {
		log.WithError(err).Error("Failed to create recipient in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToRecipientResponse(recipient))
}

// @Summary Get alert dispatches for a report
// @Description Get all alert dispatches created for a report. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {array} DispatchResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reportes/{id}/alertas [get]
func (h *Handler) listDispatches(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "listDispatches").WithField("id", id)

	dispatches, err := h.alertService.ListDispatchesByReport(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to list dispatches from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToDispatchResponses(dispatches))
}

// @Summary Get historical risk records
// @Description Get a paginated list of imported historical risk points. Requires API key.
// @Tags History
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} HistoricoListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /historico [get]
func (h *Handler) listHistorico(c *gin.Context) {
	log := h.logger.WithField("method", "listHistorico")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	records, total, err := h.reportService.ListHistorico(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list historical records from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, HistoricoListResponse{
		Data:     ModelsToHistoricoResponses(records),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// @Summary Get historical record by ID
// @Description Get a single historical risk record. Requires API key.
// @Tags History
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Historical record ID"
// @Success 200 {object} HistoricoResponse
// @Failure 400 {object} map[string]string "Invalid record ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Record not found"
// @Router /historico/{id} [get]
func (h *Handler) getHistorico(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record ID"})
		return
	}
	log := h.logger.WithField("method", "getHistorico").WithField("id", id)

	record, err := h.reportService.GetHistorico(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get historical record from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToHistoricoResponse(record))
}

// @Summary Register a historical risk record
// @Description Register an imported historical risk point. Requires API key.
// @Tags History
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param record body CreateHistoricoRequest true "Historical record creation request"
// @Success 201 {object} HistoricoResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /historico [post]
func (h *Handler) createHistorico(c *gin.Context) {
	var input CreateHistoricoRequest
	log := h.logger.WithField("method", "createHistorico")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := DTOToHistoricoModel(input)
	if err := h.reportService.CreateHistorico(c.Request.Context(), record); err != nil {
		log.WithError(err).Error("Failed to create historical record in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToHistoricoResponse(record))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
