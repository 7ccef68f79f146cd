package strings

import (
	"testing"

	"github.com/gr00nd/webcompat-metrics-server/internal/platform/testkit"
)

func TestMustString(t *testing.T) {
	t.Parallel()

	if got := MustString("x", "name"); got != "x" {
		t.Fatalf("MustString = %q", got)
	}
	testkit.MustPanic(t, func() { MustString("  ", "name") })
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"timeline":   "/timeline",
		"/timeline":  "/timeline",
		"/timeline/": "/timeline",
		" /meta ":    "/meta",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	testkit.MustPanic(t, func() { MustPrefix("  ") })
	testkit.MustPanic(t, func() { MustPrefix("/") })
}

func TestEmptyToNil(t *testing.T) {
	t.Parallel()

	if got := EmptyToNil(" \t"); got != "" {
		t.Fatalf("EmptyToNil = %q", got)
	}
	if got := EmptyToNil("v"); got != "v" {
		t.Fatalf("EmptyToNil = %q", got)
	}
}
