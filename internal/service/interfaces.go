package service

import (
	"context"
	"io"
	"time"

	"github.com/cfuentesp/moodlog/backend/internal/models"
)

// MoodService defines the interface for mood entry business logic
type MoodService interface {
	CreateEntry(ctx context.Context, req *models.CreateMoodEntryRequest) (*models.MoodEntry, error)
	GetEntry(ctx context.Context, id string) (*models.MoodEntry, error)
	ListEntries(ctx context.Context, limit, offset int) (*models.MoodEntryList, error)
	ListEntriesByRange(ctx context.Context, start, end time.Time) ([]models.MoodEntry, error)
	UpdateEntry(ctx context.Context, id string, req *models.UpdateMoodEntryRequest) (*models.MoodEntry, error)
	DeleteEntry(ctx context.Context, id string) error
	ListTags(ctx context.Context) ([]models.TagCount, error)
}

// AnalyticsService defines the interface for analytics business logic
type AnalyticsService interface {
	GetSummary(ctx context.Context) (*models.AnalyticsSummary, error)
	GetWeeklyPattern(ctx context.Context, start, end *time.Time) ([]models.WeekdayStat, error)
	GetMonthlyTrend(ctx context.Context, months int) (*models.MonthlyTrend, error)
	GetDayDetail(ctx context.Context, date time.Time) (*models.DayDetail, error)
	GetInsights(ctx context.Context) ([]models.Insight, error)
}

// ExportService defines the interface for data export
type ExportService interface {
	ExportJSON(ctx context.Context) ([]models.MoodEntry, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}
