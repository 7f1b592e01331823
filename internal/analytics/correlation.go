package analytics

import (
	"math"
	"sort"

	"github.com/cfuentesp/moodlog/backend/internal/models"
)

// TagCorrelations computes, for every tag in the window, its occurrence
// count and the average mood of entries carrying it, compared against the
// overall baseline average. A tag only counts as a positive or negative
// trigger when its average sits more than ImpactMargin from the baseline.
// Tags seen fewer than MinTagSamples times are flagged low-confidence:
// single-sample averages are noise, not signal.
func TagCorrelations(entries []models.MoodEntry, scale models.Scale) []models.TagCorrelation {
	if len(entries) == 0 {
		return nil
	}

	var total float64
	tagSums := make(map[string]float64)
	tagCounts := make(map[string]int)
	for _, e := range entries {
		total += float64(e.Value)
		seen := make(map[string]bool, len(e.Tags))
		for _, tag := range e.Tags {
			// Tags form a set per entry; a duplicate must not double-count.
			if seen[tag] {
				continue
			}
			seen[tag] = true
			tagSums[tag] += float64(e.Value)
			tagCounts[tag]++
		}
	}

	baseline := total / float64(len(entries))

	correlations := make([]models.TagCorrelation, 0, len(tagCounts))
	for tag, count := range tagCounts {
		avg := tagSums[tag] / float64(count)

		impact := models.ImpactNeutral
		switch {
		case avg-baseline > ImpactMargin:
			impact = models.ImpactPositive
		case baseline-avg > ImpactMargin:
			impact = models.ImpactNegative
		}

		correlations = append(correlations, models.TagCorrelation{
			Tag:           tag,
			Frequency:     count,
			AverageValue:  round2(avg),
			Baseline:      round2(baseline),
			Impact:        impact,
			LowConfidence: count < MinTagSamples,
		})
	}

	sort.Slice(correlations, func(i, j int) bool {
		a, b := correlations[i], correlations[j]
		if a.Frequency != b.Frequency {
			return a.Frequency > b.Frequency
		}
		da := math.Abs(a.AverageValue - a.Baseline)
		db := math.Abs(b.AverageValue - b.Baseline)
		if da != db {
			return da > db
		}
		return a.Tag < b.Tag
	})

	return correlations
}

// TopTriggers returns the headline trigger list: the first n correlations
// with enough samples to trust. Input must already be sorted, as
// TagCorrelations returns it.
func TopTriggers(correlations []models.TagCorrelation, n int) []models.TagCorrelation {
	top := make([]models.TagCorrelation, 0, n)
	for _, c := range correlations {
		if c.LowConfidence {
			continue
		}
		top = append(top, c)
		if len(top) == n {
			break
		}
	}
	return top
}
