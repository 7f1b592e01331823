package service

import (
	"context"
	"time"

	"github.com/cfuentesp/moodlog/backend/internal/analytics"
	"github.com/cfuentesp/moodlog/backend/internal/models"
	"github.com/cfuentesp/moodlog/backend/internal/repository"
)

type analyticsService struct {
	moodRepo repository.MoodRepository
	scale    models.Scale
	now      func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(moodRepo repository.MoodRepository, scale models.Scale) AnalyticsService {
	return &analyticsService{
		moodRepo: moodRepo,
		scale:    scale,
		now:      time.Now,
	}
}

func (s *analyticsService) GetSummary(ctx context.Context) (*models.AnalyticsSummary, error) {
	entries, err := s.moodRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.Summarize(entries, s.scale, s.now())
}

func (s *analyticsService) GetWeeklyPattern(ctx context.Context, start, end *time.Time) ([]models.WeekdayStat, error) {
	var (
		entries []models.MoodEntry
		err     error
	)
	if start != nil || end != nil {
		// Either bound may be open; end is an inclusive calendar day.
		lo := time.Time{}
		if start != nil {
			lo = *start
		}
		hi := s.now().AddDate(0, 0, 1)
		if end != nil {
			hi = end.AddDate(0, 0, 1)
		}
		entries, err = s.moodRepo.GetByDateRange(ctx, lo, hi)
	} else {
		entries, err = s.moodRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	if err := analytics.ValidateEntries(entries, s.scale); err != nil {
		return nil, err
	}
	return analytics.WeeklyPattern(entries), nil
}

func (s *analyticsService) GetMonthlyTrend(ctx context.Context, months int) (*models.MonthlyTrend, error) {
	if months <= 0 || months > 60 {
		months = analytics.TrailingMonths
	}

	entries, err := s.moodRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := analytics.ValidateEntries(entries, s.scale); err != nil {
		return nil, err
	}
	trend := analytics.MonthlyTrend(entries, s.now(), months)
	return &trend, nil
}

func (s *analyticsService) GetDayDetail(ctx context.Context, date time.Time) (*models.DayDetail, error) {
	entries, err := s.moodRepo.GetByDay(ctx, date)
	if err != nil {
		return nil, err
	}
	detail := analytics.DayDetail(entries, date)
	return &detail, nil
}

func (s *analyticsService) GetInsights(ctx context.Context) ([]models.Insight, error) {
	summary, err := s.GetSummary(ctx)
	if err != nil {
		return nil, err
	}
	return summary.Insights, nil
}
