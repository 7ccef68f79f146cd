// Package domain holds DTOs for timeline http and service contracts
package domain

import "encoding/json"

// Dates travel as YYYY-MM-DD strings, midnight UTC implied

// TimeRange defines an inclusive day window for queries
type TimeRange struct {
	From string `json:"from" validate:"required,datetime=2006-01-02" example:"2021-01-01"`
	To   string `json:"to" validate:"required,datetime=2006-01-02" example:"2021-01-31"`
}

// Entry is one dated count in a timeline
type Entry struct {
	Count     int64  `json:"count" example:"42"`
	Timestamp string `json:"timestamp" example:"2021-01-01T00:00:00Z"`
}

// Timeline is the envelope returned by the count endpoints
type Timeline struct {
	About      string  `json:"about" example:"Hourly needsdiagnosis issues count"`
	DateFormat string  `json:"date_format" example:"w3c"`
	Timeline   []Entry `json:"timeline"`
}

// CategoryInput selects a category timeline over a window
type CategoryInput struct {
	Category string    `json:"category" validate:"required" example:"needsdiagnosis"`
	Range    TimeRange `json:"range"`
}

// WeeklyInput selects the weekly totals over a window
type WeeklyInput struct {
	Range TimeRange `json:"range"`
}

// SliceRange is a day window that is deliberately not validated at bind
// time: unparseable dates slice to an empty timeline instead of erroring
type SliceRange struct {
	From string `json:"from" example:"2021-01-01"`
	To   string `json:"to" example:"2021-01-31"`
}

// SliceInput carries a precomputed timeline envelope to cut down to a window.
// Envelope stays raw so fields we do not model pass through untouched
type SliceInput struct {
	Range    SliceRange      `json:"range"`
	Envelope json.RawMessage `json:"envelope" validate:"required"`
}
