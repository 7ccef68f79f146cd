package timeline

import "time"

// categories is the closed whitelist of issue triage states the dashboard
// reports on. New states need a schema change, so a literal list is fine
var categories = map[string]struct{}{
	"needsdiagnosis": {},
	"needstriage":    {},
	"needscontact":   {},
	"contactready":   {},
	"sitewait":       {},
}

// Categories returns the whitelist in a stable order for docs and errors
func Categories() []string {
	return []string{"needsdiagnosis", "needstriage", "needscontact", "contactready", "sitewait"}
}

// ValidCategory reports whether category is on the whitelist
func ValidCategory(category string) bool {
	_, ok := categories[category]
	return ok
}

// ValidArgs reports whether args carries a from and a to value that both
// parse as DayFormat dates. An empty or nil map is invalid
func ValidArgs(args map[string]string) bool {
	if len(args) == 0 {
		return false
	}
	from, okFrom := args["from"]
	to, okTo := args["to"]
	if !okFrom || !okTo {
		return false
	}
	if _, err := time.Parse(DayFormat, from); err != nil {
		return false
	}
	if _, err := time.Parse(DayFormat, to); err != nil {
		return false
	}
	return true
}
