package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cfuentesp/moodlog/backend/internal/apierror"
	"github.com/cfuentesp/moodlog/backend/internal/service"
)

type InsightsHandler struct {
	analyticsService service.AnalyticsService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(analyticsService service.AnalyticsService) *InsightsHandler {
	return &InsightsHandler{analyticsService: analyticsService}
}

// GetInsights handles GET /api/v1/insights
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	summary, err := h.analyticsService.GetSummary(c.Request.Context())
	if err != nil {
		writeAnalyticsError(c, requestID, "generating insights", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"insights":     summary.Insights,
		"top_triggers": summary.TopTriggers,
		"generated_at": summary.GeneratedAt,
	})
}
