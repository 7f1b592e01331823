package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cfuentesp/moodlog/backend/internal/apierror"
	"github.com/cfuentesp/moodlog/backend/internal/logger"
	"github.com/cfuentesp/moodlog/backend/internal/service"
)

type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export handles GET /api/v1/export?format=json|csv
func (h *ExportHandler) Export(c *gin.Context) {
	requestID := apierror.GetRequestID(c)
	ctx := c.Request.Context()

	switch format := c.DefaultQuery("format", "json"); format {
	case "json":
		entries, err := h.exportService.ExportJSON(ctx)
		if err != nil {
			logger.Ctx(ctx).Error("exporting entries", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewInternalError(requestID))
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"exported_at": time.Now().UTC(),
			"count":       len(entries),
			"entries":     entries,
		})
	case "csv":
		filename := "moodlog-export-" + time.Now().UTC().Format("2006-01-02") + ".csv"
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Status(http.StatusOK)
		if err := h.exportService.ExportCSV(ctx, c.Writer); err != nil {
			// Headers are already out; all we can do is log.
			logger.Ctx(ctx).Error("streaming csv export", logger.Err(err))
		}
	default:
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID,
			"format must be json or csv", "Unsupported export format"))
	}
}
