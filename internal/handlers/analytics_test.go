package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cfuentesp/moodlog/backend/internal/analytics"
	"github.com/cfuentesp/moodlog/backend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubAnalyticsService fails every operation with a fixed error.
type stubAnalyticsService struct {
	err error
}

func (s *stubAnalyticsService) GetSummary(ctx context.Context) (*models.AnalyticsSummary, error) {
	return nil, s.err
}

func (s *stubAnalyticsService) GetWeeklyPattern(ctx context.Context, start, end *time.Time) ([]models.WeekdayStat, error) {
	return nil, s.err
}

func (s *stubAnalyticsService) GetMonthlyTrend(ctx context.Context, months int) (*models.MonthlyTrend, error) {
	return nil, s.err
}

func (s *stubAnalyticsService) GetDayDetail(ctx context.Context, date time.Time) (*models.DayDetail, error) {
	return nil, s.err
}

func (s *stubAnalyticsService) GetInsights(ctx context.Context) ([]models.Insight, error) {
	return nil, s.err
}

func TestAnalyticsHandlerInvalidEntriesReturn400(t *testing.T) {
	svc := &stubAnalyticsService{
		err: fmt.Errorf("%w: entry 0: value 9 outside scale 1..7", analytics.ErrInvalidEntry),
	}
	h := NewAnalyticsHandler(svc)

	router := gin.New()
	router.GET("/analytics/weekly", h.GetWeeklyPattern)
	router.GET("/analytics/summary", h.GetSummary)

	for _, path := range []string{"/analytics/weekly", "/analytics/summary"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400 for invalid stored entries, got %d", path, w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/problem+json") {
			t.Errorf("%s: expected problem+json response, got %q", path, ct)
		}
	}
}

func TestAnalyticsHandlerUnknownErrorsReturn500(t *testing.T) {
	h := NewAnalyticsHandler(&stubAnalyticsService{err: errors.New("boom")})

	router := gin.New()
	router.GET("/analytics/summary", h.GetSummary)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/analytics/summary", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 for unexpected errors, got %d", w.Code)
	}
}
