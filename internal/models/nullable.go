package models

import "encoding/json"

// NullableString distinguishes the three states a JSON string field can be in:
// absent (Set=false), present as null (Set=true, Valid=false), or present
// with a value (Set=true, Valid=true). Standard unmarshaling into *string
// collapses the first two, which matters for updates: "note": null clears
// the note, while an absent field leaves it alone.
type NullableString struct {
	Value string
	Valid bool // true if Value is not null
	Set   bool // true if the field was present in JSON
}

// UnmarshalJSON implements custom JSON unmarshaling for NullableString.
func (ns *NullableString) UnmarshalJSON(data []byte) error {
	ns.Set = true

	if string(data) == "null" {
		ns.Valid = false
		ns.Value = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	ns.Value = s
	ns.Valid = true
	return nil
}

// MarshalJSON implements custom JSON marshaling for NullableString.
func (ns NullableString) MarshalJSON() ([]byte, error) {
	if !ns.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(ns.Value)
}

// ToPtr returns nil if the value is null, otherwise a pointer to it.
func (ns NullableString) ToPtr() *string {
	if !ns.Valid {
		return nil
	}
	return &ns.Value
}
