package model

import (
	"encoding/json"
	"time"
)

// NullTime represents a point in time that may be absent.
// It is encoded as JSON null if it is not valid.
type NullTime struct {
	Time  time.Time
	Valid bool
}

// NewNullTime creates a valid NullTime
func NewNullTime(t time.Time) NullTime {
	return NullTime{Time: t, Valid: true}
}

// MarshalJSON implements the json.Marshaler interface
func (nt NullTime) MarshalJSON() ([]byte, error) {
	if !nt.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(nt.Time)
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (nt *NullTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		nt.Time = time.Time{}
		nt.Valid = false
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	nt.Time = t
	nt.Valid = true
	return nil
}
