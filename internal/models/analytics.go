package models

import "time"

// Direction represents the direction of the monthly mood trend.
type Direction string

const (
	DirectionImproving Direction = "improving"
	DirectionStable    Direction = "stable"
	DirectionDeclining Direction = "declining"
)

// Impact represents how a tag relates to the baseline mood average.
type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
	ImpactNeutral  Impact = "neutral"
)

// InsightCategory represents the category of a generated insight.
type InsightCategory string

const (
	InsightCategoryStability InsightCategory = "stability"
	InsightCategoryPattern   InsightCategory = "pattern"
	InsightCategoryTrigger   InsightCategory = "trigger"
	InsightCategoryStreak    InsightCategory = "streak"
	InsightCategoryProgress  InsightCategory = "progress"
)

// InsightPriority represents how prominently an insight should be shown.
type InsightPriority string

const (
	PriorityHigh   InsightPriority = "high"
	PriorityMedium InsightPriority = "medium"
	PriorityLow    InsightPriority = "low"
)

// StabilityRating classifies mood volatility over the analysis window.
type StabilityRating string

const (
	StabilityVeryStable     StabilityRating = "very_stable"
	StabilityStable         StabilityRating = "stable"
	StabilityModerate       StabilityRating = "moderate"
	StabilityVariable       StabilityRating = "variable"
	StabilityHighlyVariable StabilityRating = "highly_variable"
	StabilityUnknown        StabilityRating = "unknown"
)

// WeekdayStat holds the average mood for one weekday. Average is nil when
// Count is zero so the presentation layer renders a gap, never a fake 0.
type WeekdayStat struct {
	Weekday string   `json:"weekday"`
	Average *float64 `json:"average"`
	Count   int      `json:"count"`
}

// MonthPoint is one month in the trend display series. Average is nil for
// months with no entries.
type MonthPoint struct {
	Month   string   `json:"month"` // "2006-01"
	Average *float64 `json:"average"`
}

// MonthlyTrend is the monthly average series with a fitted OLS line.
type MonthlyTrend struct {
	Points      []MonthPoint `json:"points"`
	Slope       float64      `json:"slope"`
	Intercept   float64      `json:"intercept"`
	Correlation float64      `json:"correlation"` // Pearson r of the fit
	Direction   Direction    `json:"direction"`
	SampleSize  int          `json:"sample_size"` // months with data
}

// TagCorrelation compares the average mood of entries carrying a tag
// against the overall baseline.
type TagCorrelation struct {
	Tag           string  `json:"tag"`
	Frequency     int     `json:"frequency"`
	AverageValue  float64 `json:"average_value"`
	Baseline      float64 `json:"baseline"`
	Impact        Impact  `json:"impact"`
	LowConfidence bool    `json:"low_confidence"`
}

// Insight is a short categorical message derived from the numeric results.
type Insight struct {
	Category InsightCategory `json:"category"`
	Title    string          `json:"title"`
	Message  string          `json:"message"`
	Priority InsightPriority `json:"priority"`
}

// StreakSummary holds the current and best good-mood streaks.
type StreakSummary struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// Averages holds the headline averages from the analysis window.
type Averages struct {
	Overall  float64 `json:"overall"`
	GoodDays float64 `json:"good_days"`
	BadDays  float64 `json:"bad_days"`
}

// Volatility describes how much mood values vary in the window.
type Volatility struct {
	Score  float64         `json:"score"` // standard deviation of values
	Rating StabilityRating `json:"rating"`
}

// AnalyticsSummary is the full analytics result for one computation.
// It is built fresh per request and never persisted.
type AnalyticsSummary struct {
	TotalEntries    int              `json:"total_entries"`
	TrackedDays     int              `json:"tracked_days"`
	Streaks         StreakSummary    `json:"streaks"`
	Averages        Averages         `json:"averages"`
	Volatility      Volatility       `json:"volatility"`
	Weekly          []WeekdayStat    `json:"weekly"`
	MonthlyTrend    MonthlyTrend     `json:"monthly_trend"`
	TagCorrelations []TagCorrelation `json:"tag_correlations"`
	TopTriggers     []TagCorrelation `json:"top_triggers"`
	Insights        []Insight        `json:"insights"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

// DayPoint is a single entry positioned within one calendar day,
// chart-ready for the day detail view.
type DayPoint struct {
	Time  string  `json:"time"` // "15:04"
	Hour  float64 `json:"hour"` // hour with decimal minutes, for x positioning
	Value int     `json:"value"`
	Label string  `json:"label"`
	Note  *string `json:"note,omitempty"`
}

// DayDetail holds all entries for a single calendar day.
type DayDetail struct {
	Date    string     `json:"date"` // "2006-01-02"
	Points  []DayPoint `json:"points"`
	Average *float64   `json:"average"`
}
