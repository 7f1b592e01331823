package analytics

import (
	"math"
	"time"

	"github.com/cfuentesp/moodlog/backend/internal/models"
)

// MonthlyTrend aggregates entries into calendar-month averages over the
// trailing window ending at now's month and fits an ordinary least-squares
// line over the non-empty months to classify the direction. Months without
// data stay in the display series as nil points but are omitted from the
// regression input. With fewer than two non-empty months the slope is zero
// and the direction stable; sparse data is a normal case, not an error.
func MonthlyTrend(entries []models.MoodEntry, now time.Time, months int) models.MonthlyTrend {
	if months <= 0 {
		months = TrailingMonths
	}

	trend := models.MonthlyTrend{Direction: models.DirectionStable}
	if len(entries) == 0 {
		return trend
	}

	var sums = make(map[string]float64)
	var counts = make(map[string]int)
	for _, e := range entries {
		key := e.OccurredAt.Format("2006-01")
		sums[key] += float64(e.Value)
		counts[key]++
	}

	// Walk the window oldest-first so month index order is chronological.
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	var xs, ys []float64
	for i := months - 1; i >= 0; i-- {
		month := end.AddDate(0, -i, 0)
		key := month.Format("2006-01")
		point := models.MonthPoint{Month: key}
		if n := counts[key]; n > 0 {
			avg := round1(sums[key] / float64(n))
			point.Average = &avg
			xs = append(xs, float64(len(xs)))
			ys = append(ys, avg)
		}
		trend.Points = append(trend.Points, point)
	}

	trend.SampleSize = len(xs)
	if len(xs) < 2 {
		return trend
	}

	trend.Slope, trend.Intercept = olsFit(xs, ys)
	trend.Correlation = pearson(xs, ys)

	switch {
	case trend.Slope >= TrendSlopeThreshold:
		trend.Direction = models.DirectionImproving
	case trend.Slope <= -TrendSlopeThreshold:
		trend.Direction = models.DirectionDeclining
	}
	return trend
}

// olsFit computes the closed-form least-squares slope and intercept:
// slope = cov(x,y)/var(x), intercept = mean(y) - slope*mean(x).
// Requires len(xs) == len(ys) >= 2.
func olsFit(xs, ys []float64) (slope, intercept float64) {
	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var cov, varX float64
	for i := range xs {
		dx := xs[i] - meanX
		cov += dx * (ys[i] - meanY)
		varX += dx * dx
	}
	if varX == 0 {
		return 0, meanY
	}

	slope = cov / varX
	intercept = meanY - slope*meanX
	return slope, intercept
}

// pearson computes the Pearson correlation coefficient of two equal-length
// series. Zero variance in either series yields 0.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var num, denomX, denomY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		num += dx * dy
		denomX += dx * dx
		denomY += dy * dy
	}
	if denomX == 0 || denomY == 0 {
		return 0
	}
	return num / math.Sqrt(denomX*denomY)
}
