package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cfuentesp/moodlog/backend/internal/analytics"
	"github.com/cfuentesp/moodlog/backend/internal/apierror"
	"github.com/cfuentesp/moodlog/backend/internal/logger"
	"github.com/cfuentesp/moodlog/backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetSummary handles GET /api/v1/analytics/summary
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	summary, err := h.analyticsService.GetSummary(c.Request.Context())
	if err != nil {
		writeAnalyticsError(c, requestID, "computing analytics summary", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// writeAnalyticsError maps engine errors onto problem responses. Entries that
// fail engine validation are a 400, not a 500.
func writeAnalyticsError(c *gin.Context, requestID, action string, err error) {
	if errors.Is(err, analytics.ErrInvalidEntry) {
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID,
			err.Error(), "Stored entries failed validation"))
		return
	}
	logger.Ctx(c.Request.Context()).Error(action, logger.Err(err))
	apierror.WriteProblem(c, apierror.NewInternalError(requestID))
}

// GetWeeklyPattern handles GET /api/v1/analytics/weekly
func (h *AnalyticsHandler) GetWeeklyPattern(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	start, ok := parseDateQuery(c, requestID, "start")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, requestID, "end")
	if !ok {
		return
	}

	weekly, err := h.analyticsService.GetWeeklyPattern(c.Request.Context(), start, end)
	if err != nil {
		writeAnalyticsError(c, requestID, "computing weekly pattern", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"weekly": weekly})
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter. It writes a
// problem response and returns ok=false when the value is present but malformed.
func parseDateQuery(c *gin.Context, requestID, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID,
			name+" must be formatted as YYYY-MM-DD", "Invalid "+name+" parameter"))
		return nil, false
	}
	return &t, true
}

// GetTrend handles GET /api/v1/analytics/trend
func (h *AnalyticsHandler) GetTrend(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	months, err := strconv.Atoi(c.DefaultQuery("months", "12"))
	if err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID,
			"months must be an integer", "Invalid months parameter"))
		return
	}

	trend, err := h.analyticsService.GetMonthlyTrend(c.Request.Context(), months)
	if err != nil {
		writeAnalyticsError(c, requestID, "computing monthly trend", err)
		return
	}

	c.JSON(http.StatusOK, trend)
}

// GetDayDetail handles GET /api/v1/analytics/day/:date
func (h *AnalyticsHandler) GetDayDetail(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID,
			"date must be formatted as YYYY-MM-DD", "Invalid date"))
		return
	}

	detail, err := h.analyticsService.GetDayDetail(c.Request.Context(), date)
	if err != nil {
		writeAnalyticsError(c, requestID, "computing day detail", err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
