// Package analytics computes mood analytics over an in-memory window of
// entries: good-mood streaks, weekly and monthly patterns, tag correlations,
// and short categorical insights. All functions are pure; the caller supplies
// the entries and a reference time, and two calls with identical input
// produce identical output.
package analytics

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/cfuentesp/moodlog/backend/internal/models"
)

const (
	// TrendSlopeThreshold is the minimum |slope| of the fitted monthly line
	// for the trend to count as improving or declining.
	TrendSlopeThreshold = 0.1

	// ImpactMargin is how far a tag's average must sit from the baseline
	// before it counts as a positive or negative trigger.
	ImpactMargin = 0.5

	// MinTagSamples is the minimum occurrences before a tag correlation is
	// considered trustworthy. Below this the tag is flagged low-confidence
	// and kept out of the top-triggers list.
	MinTagSamples = 3

	// MinEntriesForInsights is the minimum entries before insights beyond
	// the generic keep-tracking prompt are generated.
	MinEntriesForInsights = 5

	// TrailingMonths is the default monthly trend window.
	TrailingMonths = 12

	// TopTriggerLimit caps the headline top-triggers list.
	TopTriggerLimit = 5

	// MaxInsights caps the number of generated insights.
	MaxInsights = 10

	// MinStreakForInsight is the shortest current streak worth announcing.
	MinStreakForInsight = 3

	// WeekdayGapThreshold is the best-vs-worst weekday spread that counts
	// as a real weekly pattern.
	WeekdayGapThreshold = 1.5
)

// ErrInvalidEntry is wrapped by all validation failures so callers can map
// them to a client error.
var ErrInvalidEntry = errors.New("invalid mood entry")

// ValidateEntries rejects malformed input before any computation runs.
/// Values outside the scale and zero timestamps are errors, never clamped:
// silently coercing them would corrupt streaks and averages unnoticed.
func ValidateEntries(entries []models.MoodEntry, scale models.Scale) error {
	for i, e := range entries {
		if !scale.Contains(e.Value) {
			return fmt.Errorf("%w: entry %d: value %d outside scale %d..%d",
				ErrInvalidEntry, i, e.Value, scale.Min, scale.Max)
		}
		if e.OccurredAt.IsZero() {
			return fmt.Errorf("%w: entry %d: missing timestamp", ErrInvalidEntry, i)
		}
	}
	return nil
}

// Summarize runs the full analysis over the given entries. The entries are
// expected to be timezone-normalized already; now anchors the monthly trend
// window and the generated-at stamp. Input is never mutated.
func Summarize(entries []models.MoodEntry, scale models.Scale, now time.Time) (*models.AnalyticsSummary, error) {
	if err := ValidateEntries(entries, scale); err != nil {
		return nil, err
	}

	sorted := sortedByTime(entries)
	days := dailySummaries(sorted)
	correlations := TagCorrelations(sorted, scale)
	streaks := streaksFromDays(days, scale)
	weekly := WeeklyPattern(sorted)
	trend := MonthlyTrend(sorted, now, TrailingMonths)
	volatility := computeVolatility(sorted)

	summary := &models.AnalyticsSummary{
		TotalEntries:    len(sorted),
		TrackedDays:     len(days),
		Streaks:         streaks,
		Averages:        computeAverages(days, scale),
		Volatility:      volatility,
		Weekly:          weekly,
		MonthlyTrend:    trend,
		TagCorrelations: correlations,
		TopTriggers:     TopTriggers(correlations, TopTriggerLimit),
		GeneratedAt:     now,
	}
	summary.Insights = Insights(summary)

	return summary, nil
}

// sortedByTime returns a copy of entries ordered by occurrence time, with
// ID as tiebreaker so the output is stable for same-instant entries.
func sortedByTime(entries []models.MoodEntry) []models.MoodEntry {
	sorted := make([]models.MoodEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].OccurredAt.Equal(sorted[j].OccurredAt) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].OccurredAt.Before(sorted[j].OccurredAt)
	})
	return sorted
}

// computeAverages computes the headline averages over day means, matching
// the day reduction used for streaks.
func computeAverages(days []daySummary, scale models.Scale) models.Averages {
	if len(days) == 0 {
		return models.Averages{}
	}

	good := float64(scale.GoodThreshold())
	bad := scale.Midpoint() - 1

	var sum, goodSum, badSum float64
	var goodN, badN int
	for _, d := range days {
		sum += d.mean
		if d.mean >= good {
			goodSum += d.mean
			goodN++
		} else if d.mean <= bad {
			badSum += d.mean
			badN++
		}
	}

	avgs := models.Averages{Overall: round2(sum / float64(len(days)))}
	if goodN > 0 {
		avgs.GoodDays = round2(goodSum / float64(goodN))
	}
	if badN > 0 {
		avgs.BadDays = round2(badSum / float64(badN))
	}
	return avgs
}

// computeVolatility measures the spread of raw entry values.
func computeVolatility(entries []models.MoodEntry) models.Volatility {
	if len(entries) < 2 {
		return models.Volatility{Rating: models.StabilityUnknown}
	}

	var sum float64
	for _, e := range entries {
		sum += float64(e.Value)
	}
	mean := sum / float64(len(entries))

	var ss float64
	for _, e := range entries {
		d := float64(e.Value) - mean
		ss += d * d
	}
	// Sample standard deviation.
	sd := math.Sqrt(ss / float64(len(entries)-1))

	rating := models.StabilityHighlyVariable
	switch {
	case sd < 0.5:
		rating = models.StabilityVeryStable
	case sd < 1.0:
		rating = models.StabilityStable
	case sd < 1.5:
		rating = models.StabilityModerate
	case sd < 2.0:
		rating = models.StabilityVariable
	}

	return models.Volatility{Score: round2(sd), Rating: rating}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
