package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cfuentesp/moodlog/backend/internal/models"
	"github.com/cfuentesp/moodlog/backend/internal/repository"
)

type exportService struct {
	moodRepo repository.MoodRepository
}

// NewExportService creates a new export service
func NewExportService(moodRepo repository.MoodRepository) ExportService {
	return &exportService{moodRepo: moodRepo}
}

func (s *exportService) ExportJSON(ctx context.Context) ([]models.MoodEntry, error) {
	return s.moodRepo.GetAll(ctx)
}

// csvHeader is the fixed column order for CSV exports.
var csvHeader = []string{"id", "value", "label", "occurred_at", "tags", "note", "created_at", "updated_at"}

func (s *exportService) ExportCSV(ctx context.Context, w io.Writer) error {
	entries, err := s.moodRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, e := range entries {
		note := ""
		if e.Note != nil {
			note = *e.Note
		}
		record := []string{
			e.ID,
			strconv.Itoa(e.Value),
			e.Label,
			e.OccurredAt.UTC().Format(time.RFC3339),
			strings.Join(e.Tags, ";"),
			note,
			e.CreatedAt.UTC().Format(time.RFC3339),
			e.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
