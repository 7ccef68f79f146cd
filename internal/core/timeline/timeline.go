// Package timeline holds the pure date-range and slicing logic behind the
// issue-count dashboard. Everything here is stateless and safe for
// concurrent use; storage and HTTP concerns live elsewhere
package timeline

import (
	"encoding/json"
	"time"

	perr "github.com/gr00nd/webcompat-metrics-server/internal/platform/errors"
)

// DayFormat is the only accepted calendar date form, midnight UTC implied
const DayFormat = "2006-01-02"

// Entry is one dated count as it travels on the wire
type Entry struct {
	Count     int64  `json:"count"`
	Timestamp string `json:"timestamp"`
}

// ExpandDays returns every calendar date between fromDate and toDate,
// inclusive at both ends and ordered descending from the later date.
// The arguments are symmetric: a reversed pair walks the same window.
// Returns nil when either input does not parse as a DayFormat date
func ExpandDays(fromDate, toDate string) []string {
	start, err := time.Parse(DayFormat, fromDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(DayFormat, toDate)
	if err != nil {
		return nil
	}

	if start.Equal(end) {
		// keep the caller's original string form
		return []string{fromDate}
	}

	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		end, days = start, -days
	}

	out := make([]string, 0, days+1)
	for n := 0; n <= days; n++ {
		out = append(out, end.AddDate(0, 0, -n).Format(DayFormat))
	}
	return out
}

// NormalizeRange converts an inclusive day pair into a half-open window:
// the returned end is toDate plus one day so timestamps carrying a
// time-of-day on the final day still fall inside [start, end).
// Inputs are not reordered; a reversed pair comes back reversed.
// ok is false when either input does not parse
func NormalizeRange(fromDate, toDate string) (start, end string, ok bool) {
	from, err := time.Parse(DayFormat, fromDate)
	if err != nil {
		return "", "", false
	}
	to, err := time.Parse(DayFormat, toDate)
	if err != nil {
		return "", "", false
	}
	return from.Format(DayFormat), to.AddDate(0, 0, 1).Format(DayFormat), true
}

// Slice keeps the entries whose timestamp falls on one of the wanted days.
// The day is the first ten characters of the timestamp, so any ISO-8601
// form with or without a time component matches. The filter is stable:
// output is a subsequence of input and no entry is mutated
func Slice(entries []Entry, wantedDays []string) []Entry {
	wanted := make(map[string]struct{}, len(wantedDays))
	for _, d := range wantedDays {
		wanted[d] = struct{}{}
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if len(e.Timestamp) < len(DayFormat) {
			continue
		}
		if _, ok := wanted[e.Timestamp[:len(DayFormat)]]; ok {
			out = append(out, e)
		}
	}
	return out
}

// SliceJSON rewrites the timeline field of a JSON envelope to only the
// entries between fromDate and toDate. All other top-level fields pass
// through untouched. When the dates do not parse the wanted set is empty
// and the sliced timeline is empty too; that mirrors the dashboard's
// historical contract and is deliberate, not an error
func SliceJSON(envelope []byte, fromDate, toDate string) ([]byte, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(envelope, &doc); err != nil {
		return nil, perr.JSONErrf("invalid timeline envelope: %v", err)
	}

	raw, ok := doc["timeline"]
	if !ok {
		return nil, perr.JSONErrf("envelope has no timeline field")
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, perr.JSONErrf("invalid timeline entries: %v", err)
	}

	sliced, err := json.Marshal(Slice(entries, ExpandDays(fromDate, toDate)))
	if err != nil {
		return nil, perr.JSONErrf("encode sliced timeline: %v", err)
	}
	doc["timeline"] = sliced

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, perr.JSONErrf("encode envelope: %v", err)
	}
	return out, nil
}
