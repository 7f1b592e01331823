package models

import "fmt"

// Scale describes the ordinal mood scale entries are recorded on.
// Higher values mean a better mood.
type Scale struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DefaultScale is the 7-point scale used by the current schema.
var DefaultScale = Scale{Min: 1, Max: 7}

// LegacyScale is the 5-point scale from the earlier schema variant.
var LegacyScale = Scale{Min: 1, Max: 5}

// moodLabels maps textual mood labels to values on the 7-point scale.
// The mapping is bijective; labels are stored lowercase.
var moodLabels = map[string]int{
	"very bad":      1,
	"bad":           2,
	"slightly bad":  3,
	"neutral":       4,
	"slightly well": 5,
	"well":          6,
	"very well":     7,
}

// moodLabelsByValue is the inverse of moodLabels.
var moodLabelsByValue = map[int]string{
	1: "very bad",
	2: "bad",
	3: "slightly bad",
	4: "neutral",
	5: "slightly well",
	6: "well",
	7: "very well",
}

// GoodThreshold returns the minimum value that counts as a "good" mood day:
// strictly above the scale midpoint (5 on the 1-7 scale, 4 on 1-5).
func (s Scale) GoodThreshold() int {
	return (s.Min+s.Max)/2 + 1
}

// Contains reports whether v is a valid value on the scale.
func (s Scale) Contains(v int) bool {
	return v >= s.Min && v <= s.Max
}

// Midpoint returns the neutral center of the scale.
func (s Scale) Midpoint() float64 {
	return float64(s.Min+s.Max) / 2
}

// LabelForValue returns the textual label for a mood value on the 7-point
// scale, or an empty string if the value has no label.
func LabelForValue(v int) string {
	return moodLabelsByValue[v]
}

// ValueForLabel returns the mood value for a textual label.
func ValueForLabel(label string) (int, error) {
	v, ok := moodLabels[label]
	if !ok {
		return 0, fmt.Errorf("unknown mood label %q", label)
	}
	return v, nil
}
