package analytics

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/cfuentesp/moodlog/backend/internal/models"
)

// entryAt builds a mood entry at a given "2006-01-02" date (with optional
// "15:04" time) for test fixtures.
func entryAt(t *testing.T, day string, value int, tags ...string) models.MoodEntry {
	t.Helper()

	layout := "2006-01-02"
	if strings.Contains(day, " ") {
		layout = "2006-01-02 15:04"
	}
	ts, err := time.Parse(layout, day)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", day, err)
	}

	return models.MoodEntry{
		ID:         day,
		Value:      value,
		Label:      models.LabelForValue(value),
		OccurredAt: ts,
		Tags:       tags,
	}
}

// consecutiveDays builds one entry per day for n days starting at start.
func consecutiveDays(t *testing.T, start string, n, value int) []models.MoodEntry {
	t.Helper()

	first, err := time.Parse("2006-01-02", start)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", start, err)
	}

	entries := make([]models.MoodEntry, 0, n)
	for i := 0; i < n; i++ {
		day := first.AddDate(0, 0, i).Format("2006-01-02")
		entries = append(entries, entryAt(t, day, value))
	}
	return entries
}

func TestValidateEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.MoodEntry
		wantErr bool
	}{
		{name: "empty", entries: nil, wantErr: false},
		{name: "valid", entries: []models.MoodEntry{entryAt(t, "2025-03-01", 5)}, wantErr: false},
		{name: "value too high", entries: []models.MoodEntry{{Value: 8, OccurredAt: time.Now()}}, wantErr: true},
		{name: "value zero", entries: []models.MoodEntry{{Value: 0, OccurredAt: time.Now()}}, wantErr: true},
		{name: "missing timestamp", entries: []models.MoodEntry{{Value: 4}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntries(tt.entries, models.DefaultScale)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEntries() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSummarize_EmptyInput(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	summary, err := Summarize(nil, models.DefaultScale, now)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if summary.Streaks.Current != 0 || summary.Streaks.Best != 0 {
		t.Errorf("streaks = %+v, want 0/0", summary.Streaks)
	}
	for _, stat := range summary.Weekly {
		if stat.Average != nil {
			t.Errorf("weekday %s average = %v, want nil", stat.Weekday, *stat.Average)
		}
		if stat.Count != 0 {
			t.Errorf("weekday %s count = %d, want 0", stat.Weekday, stat.Count)
		}
	}
	if len(summary.MonthlyTrend.Points) != 0 {
		t.Errorf("monthly trend points = %d, want 0", len(summary.MonthlyTrend.Points))
	}
	if summary.MonthlyTrend.Direction != models.DirectionStable {
		t.Errorf("trend direction = %s, want stable", summary.MonthlyTrend.Direction)
	}
	if len(summary.TagCorrelations) != 0 {
		t.Errorf("tag correlations = %d, want 0", len(summary.TagCorrelations))
	}
	if len(summary.Insights) != 1 {
		t.Fatalf("insights = %d, want exactly 1", len(summary.Insights))
	}
	if summary.Insights[0].Category != models.InsightCategoryProgress {
		t.Errorf("insight category = %s, want progress", summary.Insights[0].Category)
	}
}

func TestSummarize_RejectsOutOfRangeValue(t *testing.T) {
	entries := []models.MoodEntry{{Value: 11, OccurredAt: time.Now()}}

	_, err := Summarize(entries, models.DefaultScale, time.Now())
	if err == nil {
		t.Fatal("Summarize() expected validation error")
	}
}

func TestSummarize_Idempotent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []models.MoodEntry{
		entryAt(t, "2025-06-10", 6, "exercise"),
		entryAt(t, "2025-06-11", 3, "work stress"),
		entryAt(t, "2025-06-12", 7, "exercise"),
		entryAt(t, "2025-06-13", 5),
		entryAt(t, "2025-06-14", 6, "friends"),
	}

	first, err := Summarize(entries, models.DefaultScale, now)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	second, err := Summarize(entries, models.DefaultScale, now)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("summaries differ:\n%s\n%s", a, b)
	}
}

func TestSummarize_InputOrderIndependent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []models.MoodEntry{
		entryAt(t, "2025-06-10", 6),
		entryAt(t, "2025-06-11", 3),
		entryAt(t, "2025-06-12", 7),
		entryAt(t, "2025-06-13", 5),
		entryAt(t, "2025-06-14", 6),
	}
	reversed := make([]models.MoodEntry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}

	first, err := Summarize(entries, models.DefaultScale, now)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	second, err := Summarize(reversed, models.DefaultScale, now)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("summaries differ by input order:\n%s\n%s", a, b)
	}
}

func TestSummarize_DoesNotMutateInput(t *testing.T) {
	entries := []models.MoodEntry{
		entryAt(t, "2025-06-12", 7),
		entryAt(t, "2025-06-10", 6),
		entryAt(t, "2025-06-11", 3),
	}
	firstID := entries[0].ID

	if _, err := Summarize(entries, models.DefaultScale, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if entries[0].ID != firstID {
		t.Error("Summarize reordered the caller's slice")
	}
}

func TestComputeVolatility(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   models.StabilityRating
	}{
		{name: "single entry", values: []int{5}, want: models.StabilityUnknown},
		{name: "flat", values: []int{5, 5, 5, 5}, want: models.StabilityVeryStable},
		{name: "wild", values: []int{1, 7, 1, 7, 1, 7}, want: models.StabilityHighlyVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]models.MoodEntry, len(tt.values))
			for i, v := range tt.values {
				entries[i] = entryAt(t, time.Date(2025, 1, 1+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), v)
			}
			got := computeVolatility(entries)
			if got.Rating != tt.want {
				t.Errorf("rating = %s, want %s (score %v)", got.Rating, tt.want, got.Score)
			}
		})
	}
}

func TestComputeAverages_GoodAndBadDays(t *testing.T) {
	entries := []models.MoodEntry{
		entryAt(t, "2025-05-01", 7), // good day
		entryAt(t, "2025-05-02", 2), // bad day
		entryAt(t, "2025-05-03", 4), // neither
	}

	avgs := computeAverages(dailySummaries(entries), models.DefaultScale)
	if avgs.Overall != 4.33 {
		t.Errorf("overall = %v, want 4.33", avgs.Overall)
	}
	if avgs.GoodDays != 7 {
		t.Errorf("good days = %v, want 7", avgs.GoodDays)
	}
	if avgs.BadDays != 2 {
		t.Errorf("bad days = %v, want 2", avgs.BadDays)
	}
}
