package timeline

import "testing"

func TestValidCategory(t *testing.T) {
	t.Parallel()

	for _, c := range Categories() {
		if !ValidCategory(c) {
			t.Fatalf("whitelisted %q rejected", c)
		}
	}
	for _, c := range []string{"unknown", "", "SITEWAIT", "sitewait "} {
		if ValidCategory(c) {
			t.Fatalf("%q accepted", c)
		}
	}
}

func TestValidArgs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args map[string]string
		want bool
	}{
		{"valid", map[string]string{"from": "2021-01-01", "to": "2021-01-02"}, true},
		{"empty", map[string]string{}, false},
		{"nil", nil, false},
		{"missing to", map[string]string{"from": "2021-01-01"}, false},
		{"missing from", map[string]string{"to": "2021-01-01"}, false},
		{"bad from", map[string]string{"from": "x", "to": "2021-01-02"}, false},
		{"bad to", map[string]string{"from": "2021-01-01", "to": "x"}, false},
		{"extra keys ok", map[string]string{"from": "2021-01-01", "to": "2021-01-02", "tz": "utc"}, true},
	}
	for _, c := range cases {
		if got := ValidArgs(c.args); got != c.want {
			t.Fatalf("%s: ValidArgs = %v, want %v", c.name, got, c.want)
		}
	}
}
