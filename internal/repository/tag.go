package repository

import (
	"context"
	"fmt"

	"github.com/cfuentesp/moodlog/backend/internal/database"
	"github.com/cfuentesp/moodlog/backend/internal/models"
)

type tagRepository struct {
	db *database.DB
}

// NewTagRepository creates a new tag repository backed by sqlite
func NewTagRepository(db *database.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) CountByTag(ctx context.Context) ([]models.TagCount, error) {
	rows, err := r.db.Conn().QueryContext(ctx,
		`SELECT tag, COUNT(*) AS uses FROM entry_tags
		GROUP BY tag ORDER BY uses DESC, tag ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to count tags: %w", err)
	}
	defer rows.Close()

	counts := []models.TagCount{}
	for rows.Next() {
		var tc models.TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan tag count: %w", err)
		}
		counts = append(counts, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tag counts: %w", err)
	}
	return counts, nil
}
