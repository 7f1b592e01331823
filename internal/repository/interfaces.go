package repository

import (
	"context"
	"time"

	"github.com/cfuentesp/moodlog/backend/internal/models"
)

// MoodRepository defines the interface for mood entry data access
type MoodRepository interface {
	Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
	GetByID(ctx context.Context, id string) (*models.MoodEntry, error)
	List(ctx context.Context, limit, offset int) ([]models.MoodEntry, int64, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]models.MoodEntry, error)
	GetByDay(ctx context.Context, day time.Time) ([]models.MoodEntry, error)
	GetAll(ctx context.Context) ([]models.MoodEntry, error)
	Update(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
	Delete(ctx context.Context, id string) error
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	CountByTag(ctx context.Context) ([]models.TagCount, error)
}
