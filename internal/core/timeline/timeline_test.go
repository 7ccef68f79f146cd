package timeline

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestExpandDays_SameDay(t *testing.T) {
	t.Parallel()

	got := ExpandDays("2021-01-01", "2021-01-01")
	if !reflect.DeepEqual(got, []string{"2021-01-01"}) {
		t.Fatalf("same day = %v, want single element", got)
	}
}

func TestExpandDays_DescendingInclusive(t *testing.T) {
	t.Parallel()

	want := []string{"2021-01-03", "2021-01-02", "2021-01-01"}
	got := ExpandDays("2021-01-01", "2021-01-03")
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExpandDays = %v, want %v", got, want)
	}
}

func TestExpandDays_SymmetricUnderSwap(t *testing.T) {
	t.Parallel()

	fwd := ExpandDays("2021-01-01", "2021-01-03")
	rev := ExpandDays("2021-01-03", "2021-01-01")
	if !reflect.DeepEqual(fwd, rev) {
		t.Fatalf("swap changed result: %v vs %v", fwd, rev)
	}
}

func TestExpandDays_MonthBoundary(t *testing.T) {
	t.Parallel()

	want := []string{"2021-03-02", "2021-03-01", "2021-02-28", "2021-02-27"}
	got := ExpandDays("2021-02-27", "2021-03-02")
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("month boundary = %v, want %v", got, want)
	}
}

func TestExpandDays_BadInput(t *testing.T) {
	t.Parallel()

	cases := [][2]string{
		{"bad-date", "2021-01-01"},
		{"2021-01-01", "bad-date"},
		{"", ""},
		{"2021/01/01", "2021-01-02"},
		{"2021-1-1", "2021-01-02"},
	}
	for _, c := range cases {
		if got := ExpandDays(c[0], c[1]); got != nil {
			t.Fatalf("ExpandDays(%q, %q) = %v, want nil", c[0], c[1], got)
		}
	}
}

func TestExpandDays_LengthInvariant(t *testing.T) {
	t.Parallel()

	// |end - start| + 1 entries over a week
	got := ExpandDays("2021-01-01", "2021-01-07")
	if len(got) != 7 {
		t.Fatalf("length = %d, want 7", len(got))
	}
}

func TestNormalizeRange(t *testing.T) {
	t.Parallel()

	start, end, ok := NormalizeRange("2021-01-01", "2021-01-05")
	if !ok {
		t.Fatalf("NormalizeRange not ok")
	}
	if start != "2021-01-01" || end != "2021-01-06" {
		t.Fatalf("got (%q, %q), want (2021-01-01, 2021-01-06)", start, end)
	}
}

func TestNormalizeRange_YearBoundary(t *testing.T) {
	t.Parallel()

	_, end, ok := NormalizeRange("2020-12-01", "2020-12-31")
	if !ok || end != "2021-01-01" {
		t.Fatalf("end = %q ok = %v, want 2021-01-01 true", end, ok)
	}
}

func TestNormalizeRange_ReversedPassesThrough(t *testing.T) {
	t.Parallel()

	// inputs are not reordered, callers own ordering
	start, end, ok := NormalizeRange("2021-02-01", "2021-01-01")
	if !ok {
		t.Fatalf("NormalizeRange not ok")
	}
	if start != "2021-02-01" || end != "2021-01-02" {
		t.Fatalf("got (%q, %q), want literal (from, to+1)", start, end)
	}
}

func TestNormalizeRange_BadInput(t *testing.T) {
	t.Parallel()

	if _, _, ok := NormalizeRange("nope", "2021-01-01"); ok {
		t.Fatalf("bad from accepted")
	}
	if _, _, ok := NormalizeRange("2021-01-01", "nope"); ok {
		t.Fatalf("bad to accepted")
	}
}

func TestSlice_FilterAndOrder(t *testing.T) {
	t.Parallel()

	in := []Entry{
		{Count: 1, Timestamp: "2021-01-01T00:00:00Z"},
		{Count: 2, Timestamp: "2021-01-02T06:30:00Z"},
		{Count: 3, Timestamp: "2021-01-03T12:00:00Z"},
		{Count: 4, Timestamp: "2021-01-02T23:59:59Z"},
	}
	got := Slice(in, []string{"2021-01-02"})

	want := []Entry{
		{Count: 2, Timestamp: "2021-01-02T06:30:00Z"},
		{Count: 4, Timestamp: "2021-01-02T23:59:59Z"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Slice = %v, want %v", got, want)
	}
}

func TestSlice_OutputIsSubsequence(t *testing.T) {
	t.Parallel()

	in := []Entry{
		{Count: 1, Timestamp: "2021-01-01T00:00:00Z"},
		{Count: 2, Timestamp: "2021-01-02T00:00:00Z"},
		{Count: 3, Timestamp: "2021-01-01T05:00:00Z"},
	}
	got := Slice(in, []string{"2021-01-01", "2021-01-02"})

	if len(got) > len(in) {
		t.Fatalf("output longer than input")
	}
	// every kept entry keeps its relative input position
	last := -1
	for _, g := range got {
		found := -1
		for i, e := range in {
			if i > last && e == g {
				found = i
				break
			}
		}
		if found < 0 {
			t.Fatalf("entry %v out of order or missing from input", g)
		}
		last = found
	}
}

func TestSlice_EmptyWanted(t *testing.T) {
	t.Parallel()

	in := []Entry{{Count: 1, Timestamp: "2021-01-01T00:00:00Z"}}
	if got := Slice(in, nil); len(got) != 0 {
		t.Fatalf("nil wanted kept %v", got)
	}
}

func TestSlice_ShortTimestampSkipped(t *testing.T) {
	t.Parallel()

	in := []Entry{{Count: 1, Timestamp: "2021"}}
	if got := Slice(in, []string{"2021-01-01"}); len(got) != 0 {
		t.Fatalf("short timestamp kept %v", got)
	}
}

func TestSliceJSON_RoundTripFullRange(t *testing.T) {
	t.Parallel()

	envelope := []byte(`{
		"about": "Hourly needsdiagnosis issues count",
		"date_format": "w3c",
		"timeline": [
			{"count": 10, "timestamp": "2021-01-01T00:00:00Z"},
			{"count": 12, "timestamp": "2021-01-02T00:00:00Z"},
			{"count": 9, "timestamp": "2021-01-03T00:00:00Z"}
		]
	}`)

	out, err := SliceJSON(envelope, "2021-01-01", "2021-01-03")
	if err != nil {
		t.Fatalf("SliceJSON: %v", err)
	}

	var doc struct {
		About      string  `json:"about"`
		DateFormat string  `json:"date_format"`
		Timeline   []Entry `json:"timeline"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("decode output: %v", err)
	}

	if doc.About != "Hourly needsdiagnosis issues count" || doc.DateFormat != "w3c" {
		t.Fatalf("envelope fields not preserved: %+v", doc)
	}
	want := []Entry{
		{Count: 10, Timestamp: "2021-01-01T00:00:00Z"},
		{Count: 12, Timestamp: "2021-01-02T00:00:00Z"},
		{Count: 9, Timestamp: "2021-01-03T00:00:00Z"},
	}
	if !reflect.DeepEqual(doc.Timeline, want) {
		t.Fatalf("full range changed timeline: %v", doc.Timeline)
	}
}

func TestSliceJSON_Window(t *testing.T) {
	t.Parallel()

	envelope := []byte(`{"timeline":[
		{"count": 1, "timestamp": "2021-01-01T00:00:00Z"},
		{"count": 2, "timestamp": "2021-01-02T00:00:00Z"},
		{"count": 3, "timestamp": "2021-01-05T00:00:00Z"}
	]}`)

	out, err := SliceJSON(envelope, "2021-01-02", "2021-01-03")
	if err != nil {
		t.Fatalf("SliceJSON: %v", err)
	}
	var doc struct {
		Timeline []Entry `json:"timeline"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(doc.Timeline) != 1 || doc.Timeline[0].Count != 2 {
		t.Fatalf("window slice = %v, want only count 2", doc.Timeline)
	}
}

func TestSliceJSON_BadDatesEmptyTimeline(t *testing.T) {
	t.Parallel()

	envelope := []byte(`{"about":"x","timeline":[{"count":1,"timestamp":"2021-01-01T00:00:00Z"}]}`)

	out, err := SliceJSON(envelope, "not-a-date", "2021-01-01")
	if err != nil {
		t.Fatalf("bad dates should not error: %v", err)
	}
	var doc struct {
		About    string  `json:"about"`
		Timeline []Entry `json:"timeline"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(doc.Timeline) != 0 {
		t.Fatalf("bad dates kept %v, want empty timeline", doc.Timeline)
	}
	if doc.About != "x" {
		t.Fatalf("opaque field lost: %+v", doc)
	}
}

func TestSliceJSON_MalformedEnvelope(t *testing.T) {
	t.Parallel()

	if _, err := SliceJSON([]byte(`{`), "2021-01-01", "2021-01-02"); err == nil {
		t.Fatalf("malformed envelope accepted")
	}
	if _, err := SliceJSON([]byte(`{"about":"x"}`), "2021-01-01", "2021-01-02"); err == nil {
		t.Fatalf("envelope without timeline accepted")
	}
	if _, err := SliceJSON([]byte(`{"timeline":"nope"}`), "2021-01-01", "2021-01-02"); err == nil {
		t.Fatalf("non array timeline accepted")
	}
}
