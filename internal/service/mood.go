package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cfuentesp/moodlog/backend/internal/models"
	"github.com/cfuentesp/moodlog/backend/internal/repository"
)

// MaxFutureSkew is the tolerance for client clock drift on occurred_at.
const MaxFutureSkew = time.Minute

type moodService struct {
	moodRepo repository.MoodRepository
	tagRepo  repository.TagRepository
	scale    models.Scale
	now      func() time.Time
}

// NewMoodService creates a new mood service
func NewMoodService(moodRepo repository.MoodRepository, tagRepo repository.TagRepository, scale models.Scale) MoodService {
	return &moodService{
		moodRepo: moodRepo,
		tagRepo:  tagRepo,
		scale:    scale,
		now:      time.Now,
	}
}

func (s *moodService) CreateEntry(ctx context.Context, req *models.CreateMoodEntryRequest) (*models.MoodEntry, error) {
	value, label, err := s.resolveMood(req.Value, req.Label)
	if err != nil {
		return nil, err
	}

	if err := s.checkTimestamp(req.OccurredAt); err != nil {
		return nil, err
	}

	entry := &models.MoodEntry{
		ID:         uuid.New().String(),
		Value:      value,
		Label:      label,
		OccurredAt: req.OccurredAt.UTC(),
		Tags:       req.Tags,
		Note:       req.Note,
	}

	return s.moodRepo.Create(ctx, entry)
}

func (s *moodService) GetEntry(ctx context.Context, id string) (*models.MoodEntry, error) {
	return s.moodRepo.GetByID(ctx, id)
}

func (s *moodService) ListEntries(ctx context.Context, limit, offset int) (*models.MoodEntryList, error) {
	// Set default pagination limits
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	entries, total, err := s.moodRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return &models.MoodEntryList{
		Entries: entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

func (s *moodService) ListEntriesByRange(ctx context.Context, start, end time.Time) ([]models.MoodEntry, error) {
	// end is an inclusive calendar day
	return s.moodRepo.GetByDateRange(ctx, start, end.AddDate(0, 0, 1))
}

func (s *moodService) UpdateEntry(ctx context.Context, id string, req *models.UpdateMoodEntryRequest) (*models.MoodEntry, error) {
	existing, err := s.moodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case req.Value != nil && req.Label != nil:
		value, label, err := s.resolveMood(*req.Value, *req.Label)
		if err != nil {
			return nil, err
		}
		existing.Value, existing.Label = value, label
	case req.Value != nil:
		if !s.scale.Contains(*req.Value) {
			return nil, fmt.Errorf("%w: %d not in %d..%d", ErrValueOutOfRange, *req.Value, s.scale.Min, s.scale.Max)
		}
		existing.Value = *req.Value
		existing.Label = models.LabelForValue(*req.Value)
	case req.Label != nil:
		value, label, err := s.resolveMood(0, *req.Label)
		if err != nil {
			return nil, err
		}
		existing.Value, existing.Label = value, label
	}

	if req.OccurredAt != nil {
		if err := s.checkTimestamp(*req.OccurredAt); err != nil {
			return nil, err
		}
		existing.OccurredAt = req.OccurredAt.UTC()
	}
	if req.Tags != nil {
		existing.Tags = req.Tags
	}
	if req.Note.Set {
		existing.Note = req.Note.ToPtr()
	}

	return s.moodRepo.Update(ctx, existing)
}

func (s *moodService) DeleteEntry(ctx context.Context, id string) error {
	return s.moodRepo.Delete(ctx, id)
}

func (s *moodService) ListTags(ctx context.Context) ([]models.TagCount, error) {
	return s.tagRepo.CountByTag(ctx)
}

// resolveMood reconciles a value and a textual label into a single validated
// pair. Either may be zero-valued; when both are given they must agree.
func (s *moodService) resolveMood(value int, label string) (int, string, error) {
	label = strings.ToLower(strings.TrimSpace(label))

	if label != "" {
		labelValue, err := models.ValueForLabel(label)
		if err != nil {
			return 0, "", fmt.Errorf("%w: %q", ErrUnknownLabel, label)
		}
		if value != 0 && value != labelValue {
			return 0, "", fmt.Errorf("%w: %q maps to %d, got %d", ErrLabelValueMismatch, label, labelValue, value)
		}
		if !s.scale.Contains(labelValue) {
			return 0, "", fmt.Errorf("%w: %q maps to %d, not in %d..%d", ErrValueOutOfRange, label, labelValue, s.scale.Min, s.scale.Max)
		}
		return labelValue, label, nil
	}

	if value == 0 {
		return 0, "", ErrMoodRequired
	}
	if !s.scale.Contains(value) {
		return 0, "", fmt.Errorf("%w: %d not in %d..%d", ErrValueOutOfRange, value, s.scale.Min, s.scale.Max)
	}
	return value, models.LabelForValue(value), nil
}

func (s *moodService) checkTimestamp(ts time.Time) error {
	if ts.After(s.now().Add(MaxFutureSkew)) {
		return fmt.Errorf("%w: %s", ErrFutureTimestamp, ts.Format(time.RFC3339))
	}
	return nil
}
