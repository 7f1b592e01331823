package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cfuentesp/moodlog/backend/internal/apierror"
	"github.com/cfuentesp/moodlog/backend/internal/logger"
	"github.com/cfuentesp/moodlog/backend/internal/models"
	"github.com/cfuentesp/moodlog/backend/internal/repository"
	"github.com/cfuentesp/moodlog/backend/internal/service"
)

type MoodHandler struct {
	moodService service.MoodService
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodService service.MoodService) *MoodHandler {
	return &MoodHandler{moodService: moodService}
}

// CreateMood handles POST /api/v1/moods
func (h *MoodHandler) CreateMood(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	var req models.CreateMoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return
	}

	entry, err := h.moodService.CreateEntry(c.Request.Context(), &req)
	if err != nil {
		writeMoodError(c, requestID, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetMoods handles GET /api/v1/moods
func (h *MoodHandler) GetMoods(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	from, ok := parseDateQuery(c, requestID, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, requestID, "to")
	if !ok {
		return
	}
	if from != nil || to != nil {
		lo := time.Time{}
		if from != nil {
			lo = *from
		}
		hi := time.Now().UTC()
		if to != nil {
			hi = *to
		}
		entries, err := h.moodService.ListEntriesByRange(c.Request.Context(), lo, hi)
		if err != nil {
			logger.Ctx(c.Request.Context()).Error("listing mood entries by range", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewInternalError(requestID))
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": entries, "total": len(entries)})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.moodService.ListEntries(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("listing mood entries", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetMood handles GET /api/v1/moods/:id
func (h *MoodHandler) GetMood(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidUUIDError(requestID, "id", id))
		return
	}

	entry, err := h.moodService.GetEntry(c.Request.Context(), id)
	if err != nil {
		writeMoodError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateMood handles PUT and PATCH /api/v1/moods/:id. Both methods apply
// partial update semantics; omitted fields are left untouched.
func (h *MoodHandler) UpdateMood(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidUUIDError(requestID, "id", id))
		return
	}

	var req models.UpdateMoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return
	}

	entry, err := h.moodService.UpdateEntry(c.Request.Context(), id, &req)
	if err != nil {
		writeMoodError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteMood handles DELETE /api/v1/moods/:id
func (h *MoodHandler) DeleteMood(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidUUIDError(requestID, "id", id))
		return
	}

	if err := h.moodService.DeleteEntry(c.Request.Context(), id); err != nil {
		writeMoodError(c, requestID, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// GetTags handles GET /api/v1/moods/tags
func (h *MoodHandler) GetTags(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	counts, err := h.moodService.ListTags(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("listing tags", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": counts})
}

// writeMoodError maps service and repository errors onto problem responses.
func writeMoodError(c *gin.Context, requestID string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Mood entry", c.Param("id")))
	case errors.Is(err, service.ErrMoodRequired):
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "value", Message: "a mood value or label is required", Code: "required"},
		}))
	case errors.Is(err, service.ErrValueOutOfRange):
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "value", Message: err.Error(), Code: "out_of_range"},
		}))
	case errors.Is(err, service.ErrUnknownLabel):
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "label", Message: err.Error(), Code: "unknown_label"},
		}))
	case errors.Is(err, service.ErrLabelValueMismatch):
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "label", Message: err.Error(), Code: "label_value_mismatch"},
		}))
	case errors.Is(err, service.ErrFutureTimestamp):
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "occurred_at", Message: err.Error(), Code: "future_timestamp"},
		}))
	default:
		logger.Ctx(c.Request.Context()).Error("mood request failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}
