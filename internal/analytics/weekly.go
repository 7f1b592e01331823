package analytics

import (
	"time"

	"github.com/cfuentesp/moodlog/backend/internal/models"
)

// weekdayOrder lists weekdays Monday-first, matching the journal's week.
var weekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// WeeklyPattern buckets entries by weekday and returns the per-weekday mean
// and entry count, Monday through Sunday. Weekdays without data report a nil
// average, never a fabricated zero, so charts can render a gap. The result
// depends only on the set of entries, not their order.
func WeeklyPattern(entries []models.MoodEntry) []models.WeekdayStat {
	var sums [7]float64
	var counts [7]int
	for _, e := range entries {
		wd := e.OccurredAt.Weekday()
		sums[wd] += float64(e.Value)
		counts[wd]++
	}

	stats := make([]models.WeekdayStat, 0, len(weekdayOrder))
	for _, wd := range weekdayOrder {
		stat := models.WeekdayStat{Weekday: wd.String(), Count: counts[wd]}
		if counts[wd] > 0 {
			avg := round2(sums[wd] / float64(counts[wd]))
			stat.Average = &avg
		}
		stats = append(stats, stat)
	}
	return stats
}

// DayDetail returns the entries for one calendar day as chart-ready points,
// ordered by time of day.
func DayDetail(entries []models.MoodEntry, date time.Time) models.DayDetail {
	day := dayOf(date)
	detail := models.DayDetail{Date: day.Format("2006-01-02")}

	var sum float64
	for _, e := range sortedByTime(entries) {
		if !dayOf(e.OccurredAt).Equal(day) {
			continue
		}
		detail.Points = append(detail.Points, models.DayPoint{
			Time:  e.OccurredAt.Format("15:04"),
			Hour:  float64(e.OccurredAt.Hour()) + float64(e.OccurredAt.Minute())/60,
			Value: e.Value,
			Label: models.LabelForValue(e.Value),
			Note:  e.Note,
		})
		sum += float64(e.Value)
	}

	if n := len(detail.Points); n > 0 {
		avg := round2(sum / float64(n))
		detail.Average = &avg
	}
	return detail
}
