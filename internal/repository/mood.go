package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cfuentesp/moodlog/backend/internal/database"
	"github.com/cfuentesp/moodlog/backend/internal/models"
)

// timeLayout is how timestamps are stored in sqlite. The fractional part is
// fixed-width so lexicographic ordering equals chronological ordering; a
// trimming layout like RFC3339Nano would sort "00:00:00.5Z" before
// "00:00:00Z" in TEXT comparisons.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type moodRepository struct {
	db *database.DB
}

// NewMoodRepository creates a new mood repository backed by sqlite
func NewMoodRepository(db *database.DB) MoodRepository {
	return &moodRepository{db: db}
}

const moodColumns = "id, value, label, occurred_at, note, created_at, updated_at"

func (r *moodRepository) Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	tx, err := r.db.Conn().BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO mood_entries (id, value, label, occurred_at, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Value, entry.Label,
		entry.OccurredAt.UTC().Format(timeLayout), entry.Note,
		now.Format(timeLayout), now.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}

	if err := insertTags(ctx, tx, entry.ID, entry.Tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	entry.Tags = normalizeTags(entry.Tags)
	return entry, nil
}

func (r *moodRepository) GetByID(ctx context.Context, id string) (*models.MoodEntry, error) {
	row := r.db.Conn().QueryRowContext(ctx,
		"SELECT "+moodColumns+" FROM mood_entries WHERE id = ?", id)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entry: %w", err)
	}

	if err := r.attachTags(ctx, []*models.MoodEntry{entry}); err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *moodRepository) List(ctx context.Context, limit, offset int) ([]models.MoodEntry, int64, error) {
	var total int64
	if err := r.db.Conn().QueryRowContext(ctx, "SELECT COUNT(*) FROM mood_entries").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count mood entries: %w", err)
	}

	rows, err := r.db.Conn().QueryContext(ctx,
		"SELECT "+moodColumns+" FROM mood_entries ORDER BY occurred_at DESC LIMIT ? OFFSET ?",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list mood entries: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, 0, err
	}
	if err := r.attachTagsSlice(ctx, entries); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *moodRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.MoodEntry, error) {
	rows, err := r.db.Conn().QueryContext(ctx,
		"SELECT "+moodColumns+" FROM mood_entries WHERE occurred_at >= ? AND occurred_at < ? ORDER BY occurred_at ASC",
		start.UTC().Format(timeLayout), end.UTC().Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query date range: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachTagsSlice(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *moodRepository) GetByDay(ctx context.Context, day time.Time) ([]models.MoodEntry, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return r.GetByDateRange(ctx, start, start.AddDate(0, 0, 1))
}

func (r *moodRepository) GetAll(ctx context.Context) ([]models.MoodEntry, error) {
	rows, err := r.db.Conn().QueryContext(ctx,
		"SELECT "+moodColumns+" FROM mood_entries ORDER BY occurred_at ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query mood entries: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachTagsSlice(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *moodRepository) Update(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	entry.UpdatedAt = time.Now().UTC()

	tx, err := r.db.Conn().BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE mood_entries SET value = ?, label = ?, occurred_at = ?, note = ?, updated_at = ?
		WHERE id = ?`,
		entry.Value, entry.Label, entry.OccurredAt.UTC().Format(timeLayout),
		entry.Note, entry.UpdatedAt.Format(timeLayout), entry.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update mood entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM entry_tags WHERE entry_id = ?", entry.ID); err != nil {
		return nil, fmt.Errorf("failed to clear tags: %w", err)
	}
	if err := insertTags(ctx, tx, entry.ID, entry.Tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	entry.Tags = normalizeTags(entry.Tags)
	return entry, nil
}

func (r *moodRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Conn().ExecContext(ctx, "DELETE FROM mood_entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete mood entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// insertTags writes the deduplicated, trimmed tag set for one entry.
func insertTags(ctx context.Context, tx *sql.Tx, entryID string, tags []string) error {
	for _, tag := range normalizeTags(tags) {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO entry_tags (entry_id, tag) VALUES (?, ?)", entryID, tag); err != nil {
			return fmt.Errorf("failed to insert tag %q: %w", tag, err)
		}
	}
	return nil
}

// normalizeTags trims whitespace, drops empties and deduplicates while
// preserving first-seen order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// attachTags populates Tags for the given entries with a single query.
func (r *moodRepository) attachTags(ctx context.Context, entries []*models.MoodEntry) error {
	if len(entries) == 0 {
		return nil
	}

	byID := make(map[string]*models.MoodEntry, len(entries))
	placeholders := make([]string, 0, len(entries))
	args := make([]any, 0, len(entries))
	for _, e := range entries {
		e.Tags = []string{}
		byID[e.ID] = e
		placeholders = append(placeholders, "?")
		args = append(args, e.ID)
	}

	rows, err := r.db.Conn().QueryContext(ctx,
		"SELECT entry_id, tag FROM entry_tags WHERE entry_id IN ("+strings.Join(placeholders, ",")+") ORDER BY tag ASC",
		args...)
	if err != nil {
		return fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entryID, tag string
		if err := rows.Scan(&entryID, &tag); err != nil {
			return fmt.Errorf("failed to scan tag: %w", err)
		}
		if e, ok := byID[entryID]; ok {
			e.Tags = append(e.Tags, tag)
		}
	}
	return rows.Err()
}

func (r *moodRepository) attachTagsSlice(ctx context.Context, entries []models.MoodEntry) error {
	ptrs := make([]*models.MoodEntry, len(entries))
	for i := range entries {
		ptrs[i] = &entries[i]
	}
	return r.attachTags(ctx, ptrs)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*models.MoodEntry, error) {
	var (
		entry      models.MoodEntry
		note       sql.NullString
		occurredAt string
		createdAt  string
		updatedAt  string
	)
	if err := row.Scan(&entry.ID, &entry.Value, &entry.Label, &occurredAt, &note, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if entry.OccurredAt, err = parseStoredTime(occurredAt); err != nil {
		return nil, err
	}
	if entry.CreatedAt, err = parseStoredTime(createdAt); err != nil {
		return nil, err
	}
	if entry.UpdatedAt, err = parseStoredTime(updatedAt); err != nil {
		return nil, err
	}
	if note.Valid {
		entry.Note = &note.String
	}
	return &entry, nil
}

func scanEntries(rows *sql.Rows) ([]models.MoodEntry, error) {
	entries := []models.MoodEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mood entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mood entries: %w", err)
	}
	return entries, nil
}

// parseStoredTime reads a timestamp column. Rows written by this package use
// RFC 3339 with any fractional width; the schema default datetime('now') uses
// sqlite's space-separated format, so both are accepted.
func parseStoredTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}
