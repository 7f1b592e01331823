package analytics

import (
	"sort"
	"time"

	"github.com/cfuentesp/moodlog/backend/internal/models"
)

// daySummary is the per-calendar-day reduction of mood entries. Multiple
// entries on one day are reduced to their arithmetic mean; this is the one
// day-value used by streaks and the headline averages.
type daySummary struct {
	date  time.Time // UTC midnight of the calendar day
	mean  float64
	count int
}

// dayOf normalizes a timestamp to its calendar day. The surrounding system
// guarantees timestamps arrive in one consistent local calendar, so the
// wall-clock date is the day.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dailySummaries reduces entries to one summary per calendar day, ordered by
// date ascending.
func dailySummaries(entries []models.MoodEntry) []daySummary {
	sums := make(map[time.Time]*daySummary)
	for _, e := range entries {
		day := dayOf(e.OccurredAt)
		s, ok := sums[day]
		if !ok {
			s = &daySummary{date: day}
			sums[day] = s
		}
		s.mean += float64(e.Value)
		s.count++
	}

	days := make([]daySummary, 0, len(sums))
	for _, s := range sums {
		s.mean /= float64(s.count)
		days = append(days, *s)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].date.Before(days[j].date) })
	return days
}

// Streaks computes the current and best consecutive-day runs of good mood
// days. A day qualifies when its day-mean meets the scale's good threshold;
// any missing calendar day or non-qualifying day breaks a run. The current
// streak is the run ending at the most recent day with data.
func Streaks(entries []models.MoodEntry, scale models.Scale) models.StreakSummary {
	return streaksFromDays(dailySummaries(entries), scale)
}

func streaksFromDays(days []daySummary, scale models.Scale) models.StreakSummary {
	if len(days) == 0 {
		return models.StreakSummary{}
	}

	good := float64(scale.GoodThreshold())

	best := 0
	run := 0
	var prev time.Time
	for _, d := range days {
		if d.mean < good {
			run = 0
		} else if run > 0 && d.date.Equal(prev.AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = d.date
	}

	// run now holds the streak ending at the latest day with data.
	return models.StreakSummary{Current: run, Best: best}
}
