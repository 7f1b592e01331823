package analytics

import (
	"fmt"

	"github.com/cfuentesp/moodlog/backend/internal/models"
)

// Insights turns the numeric summary into a small set of categorical
// messages for the presentation layer. The mapping is deterministic: the
// same summary always yields the same insights in the same order. With
// fewer than MinEntriesForInsights entries it returns exactly one generic
// keep-tracking prompt instead of statistical claims a handful of data
// points cannot support.
func Insights(summary *models.AnalyticsSummary) []models.Insight {
	if summary.TotalEntries < MinEntriesForInsights {
		return []models.Insight{{
			Category: models.InsightCategoryProgress,
			Title:    "Keep tracking",
			Message:  "Log your mood for a few more days to unlock patterns, trends and trigger insights.",
			Priority: models.PriorityMedium,
		}}
	}

	insights := make([]models.Insight, 0, MaxInsights)
	insights = appendStabilityInsight(insights, summary.Volatility)
	insights = appendWeekdayInsight(insights, summary.Weekly)
	insights = appendTriggerInsights(insights, summary.TopTriggers)
	insights = appendStreakInsight(insights, summary.Streaks)

	if len(insights) > MaxInsights {
		insights = insights[:MaxInsights]
	}
	return insights
}

func appendStabilityInsight(insights []models.Insight, v models.Volatility) []models.Insight {
	switch v.Rating {
	case models.StabilityVeryStable:
		return append(insights, models.Insight{
			Category: models.InsightCategoryStability,
			Title:    "Steady mood",
			Message:  "Your mood has been very consistent lately. Whatever routine you have, it is working.",
			Priority: models.PriorityHigh,
		})
	case models.StabilityVariable, models.StabilityHighlyVariable:
		return append(insights, models.Insight{
			Category: models.InsightCategoryStability,
			Title:    "Mood swings detected",
			Message:  "Your mood varies quite a bit day to day. Tagging entries more consistently can help surface what drives the swings.",
			Priority: models.PriorityMedium,
		})
	}
	return insights
}

func appendWeekdayInsight(insights []models.Insight, weekly []models.WeekdayStat) []models.Insight {
	var best, worst *models.WeekdayStat
	for i := range weekly {
		stat := &weekly[i]
		if stat.Average == nil {
			continue
		}
		if best == nil || *stat.Average > *best.Average {
			best = stat
		}
		if worst == nil || *stat.Average < *worst.Average {
			worst = stat
		}
	}

	if best == nil || worst == nil || best == worst {
		return insights
	}
	if *best.Average-*worst.Average < WeekdayGapThreshold {
		return insights
	}

	return append(insights, models.Insight{
		Category: models.InsightCategoryPattern,
		Title:    fmt.Sprintf("%ss are your best days", best.Weekday),
		Message: fmt.Sprintf("You average %.1f on %ss but only %.1f on %ss.",
			*best.Average, best.Weekday, *worst.Average, worst.Weekday),
		Priority: models.PriorityMedium,
	})
}

func appendTriggerInsights(insights []models.Insight, triggers []models.TagCorrelation) []models.Insight {
	var topPositive, topNegative *models.TagCorrelation
	for i := range triggers {
		t := &triggers[i]
		if t.Impact == models.ImpactPositive && topPositive == nil {
			topPositive = t
		}
		if t.Impact == models.ImpactNegative && topNegative == nil {
			topNegative = t
		}
	}

	if topPositive != nil {
		insights = append(insights, models.Insight{
			Category: models.InsightCategoryTrigger,
			Title:    fmt.Sprintf("%q lifts your mood", topPositive.Tag),
			Message: fmt.Sprintf("Entries tagged %q average %.1f against your overall %.1f.",
				topPositive.Tag, topPositive.AverageValue, topPositive.Baseline),
			Priority: models.PriorityHigh,
		})
	}
	if topNegative != nil {
		insights = append(insights, models.Insight{
			Category: models.InsightCategoryTrigger,
			Title:    fmt.Sprintf("Watch out for %q", topNegative.Tag),
			Message: fmt.Sprintf("Entries tagged %q average %.1f, below your overall %.1f.",
				topNegative.Tag, topNegative.AverageValue, topNegative.Baseline),
			Priority: models.PriorityHigh,
		})
	}
	return insights
}

func appendStreakInsight(insights []models.Insight, streaks models.StreakSummary) []models.Insight {
	if streaks.Current < MinStreakForInsight {
		return insights
	}

	message := fmt.Sprintf("You have felt good for %d days in a row.", streaks.Current)
	if streaks.Current >= streaks.Best {
		message += " That is your best streak yet."
	}

	return append(insights, models.Insight{
		Category: models.InsightCategoryStreak,
		Title:    "Good mood streak",
		Message:  message,
		Priority: models.PriorityHigh,
	})
}
