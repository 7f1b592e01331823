package analytics

import (
	"testing"

	"github.com/cfuentesp/moodlog/backend/internal/models"
)

func fptr(v float64) *float64 { return &v }

func TestInsights_SparseDataGetsKeepTracking(t *testing.T) {
	summary := &models.AnalyticsSummary{TotalEntries: 4}

	insights := Insights(summary)
	if len(insights) != 1 {
		t.Fatalf("got %d insights, want exactly 1", len(insights))
	}
	if insights[0].Category != models.InsightCategoryProgress {
		t.Errorf("category = %s, want progress", insights[0].Category)
	}
}

func TestInsights_Stability(t *testing.T) {
	tests := []struct {
		name   string
		rating models.StabilityRating
		want   int
	}{
		{name: "very stable", rating: models.StabilityVeryStable, want: 1},
		{name: "moderate says nothing", rating: models.StabilityModerate, want: 0},
		{name: "highly variable", rating: models.StabilityHighlyVariable, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := &models.AnalyticsSummary{
				TotalEntries: 20,
				Volatility:   models.Volatility{Rating: tt.rating},
			}
			var count int
			for _, in := range Insights(summary) {
				if in.Category == models.InsightCategoryStability {
					count++
				}
			}
			if count != tt.want {
				t.Errorf("stability insights = %d, want %d", count, tt.want)
			}
		})
	}
}

func TestInsights_WeekdayPattern(t *testing.T) {
	weekly := []models.WeekdayStat{
		{Weekday: "Monday", Average: fptr(3.0), Count: 4},
		{Weekday: "Tuesday", Average: fptr(4.0), Count: 4},
		{Weekday: "Wednesday", Count: 0},
		{Weekday: "Thursday", Average: fptr(4.2), Count: 4},
		{Weekday: "Friday", Average: fptr(5.5), Count: 4},
		{Weekday: "Saturday", Average: fptr(5.0), Count: 4},
		{Weekday: "Sunday", Average: fptr(4.8), Count: 4},
	}
	summary := &models.AnalyticsSummary{TotalEntries: 24, Weekly: weekly}

	var pattern *models.Insight
	insights := Insights(summary)
	for i := range insights {
		if insights[i].Category == models.InsightCategoryPattern {
			pattern = &insights[i]
		}
	}
	if pattern == nil {
		t.Fatal("expected a pattern insight for a 2.5 point weekday spread")
	}
	if pattern.Title != "Fridays are your best days" {
		t.Errorf("title = %q", pattern.Title)
	}
}

func TestInsights_WeekdayPatternBelowThresholdSilent(t *testing.T) {
	weekly := []models.WeekdayStat{
		{Weekday: "Monday", Average: fptr(4.0), Count: 4},
		{Weekday: "Tuesday", Average: fptr(4.5), Count: 4},
	}
	summary := &models.AnalyticsSummary{TotalEntries: 8, Weekly: weekly}

	for _, in := range Insights(summary) {
		if in.Category == models.InsightCategoryPattern {
			t.Errorf("unexpected pattern insight for a 0.5 spread: %+v", in)
		}
	}
}

func TestInsights_Triggers(t *testing.T) {
	summary := &models.AnalyticsSummary{
		TotalEntries: 15,
		TopTriggers: []models.TagCorrelation{
			{Tag: "exercise", Frequency: 5, AverageValue: 6.2, Baseline: 4.8, Impact: models.ImpactPositive},
			{Tag: "overtime", Frequency: 4, AverageValue: 3.1, Baseline: 4.8, Impact: models.ImpactNegative},
			{Tag: "coffee", Frequency: 4, AverageValue: 4.9, Baseline: 4.8, Impact: models.ImpactNeutral},
		},
	}

	var triggers []models.Insight
	for _, in := range Insights(summary) {
		if in.Category == models.InsightCategoryTrigger {
			triggers = append(triggers, in)
		}
	}
	if len(triggers) != 2 {
		t.Fatalf("got %d trigger insights, want 2 (top positive and top negative)", len(triggers))
	}
	if triggers[0].Title != `"exercise" lifts your mood` {
		t.Errorf("positive title = %q", triggers[0].Title)
	}
	if triggers[1].Title != `Watch out for "overtime"` {
		t.Errorf("negative title = %q", triggers[1].Title)
	}
}

func TestInsights_Streak(t *testing.T) {
	summary := &models.AnalyticsSummary{
		TotalEntries: 12,
		Streaks:      models.StreakSummary{Current: 6, Best: 6},
	}

	var streak *models.Insight
	insights := Insights(summary)
	for i := range insights {
		if insights[i].Category == models.InsightCategoryStreak {
			streak = &insights[i]
		}
	}
	if streak == nil {
		t.Fatal("expected a streak insight for a 6 day run")
	}
	if streak.Message != "You have felt good for 6 days in a row. That is your best streak yet." {
		t.Errorf("message = %q", streak.Message)
	}

	// A short run stays quiet.
	summary.Streaks = models.StreakSummary{Current: 2, Best: 9}
	for _, in := range Insights(summary) {
		if in.Category == models.InsightCategoryStreak {
			t.Errorf("unexpected streak insight for a 2 day run")
		}
	}
}

func TestInsights_NeverExceedsCap(t *testing.T) {
	summary := &models.AnalyticsSummary{
		TotalEntries: 50,
		Volatility:   models.Volatility{Rating: models.StabilityVeryStable},
		Streaks:      models.StreakSummary{Current: 4, Best: 8},
		Weekly: []models.WeekdayStat{
			{Weekday: "Monday", Average: fptr(2.0), Count: 5},
			{Weekday: "Friday", Average: fptr(6.0), Count: 5},
		},
		TopTriggers: []models.TagCorrelation{
			{Tag: "a", Impact: models.ImpactPositive, AverageValue: 6, Baseline: 4},
			{Tag: "b", Impact: models.ImpactNegative, AverageValue: 2, Baseline: 4},
		},
	}

	insights := Insights(summary)
	if len(insights) == 0 || len(insights) > MaxInsights {
		t.Errorf("got %d insights, want 1..%d", len(insights), MaxInsights)
	}
}
