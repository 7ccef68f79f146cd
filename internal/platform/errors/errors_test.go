package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestCodeMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%d) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestWrapAndRoot(t *testing.T) {
	t.Parallel()

	cause := stderrs.New("low level")
	err := Wrap(cause, ErrorCodeDB, "query failed")

	if Root(err) != cause {
		t.Fatalf("Root = %v", Root(err))
	}
	if !IsCode(err, ErrorCodeDB) {
		t.Fatalf("CodeOf = %d", CodeOf(err))
	}
	if err.Error() != "query failed: low level" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestWireFrom(t *testing.T) {
	t.Parallel()

	w := WireFrom(Validationf("bad %s", "range"))
	if w.Code != ErrorCodeValidation || w.Message != "bad range" {
		t.Fatalf("Wire = %+v", w)
	}

	plain := WireFrom(stderrs.New("plain"))
	if plain.Code != ErrorCodeUnknown || plain.Message != "plain" {
		t.Fatalf("plain Wire = %+v", plain)
	}
}

func TestWithField(t *testing.T) {
	t.Parallel()

	err := WithField(Validationf("must be a date"), "from")
	e, ok := As(err)
	if !ok || e.Field() != "from" {
		t.Fatalf("field = %+v", err)
	}

	// non platform errors pass through untouched
	plain := stderrs.New("x")
	if WithField(plain, "f") != plain {
		t.Fatalf("WithField wrapped a foreign error")
	}
}

func TestHTTPStatusOfForeignError(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(stderrs.New("x")); got != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus = %d", got)
	}
}

func TestHTTP(t *testing.T) {
	t.Parallel()

	status, wire := HTTP(NotFoundf("no such milestone"))
	if status != http.StatusNotFound || wire.Code != ErrorCodeNotFound {
		t.Fatalf("HTTP = %d %+v", status, wire)
	}
	if status, _ := HTTP(nil); status != http.StatusOK {
		t.Fatalf("HTTP(nil) = %d", status)
	}
}
