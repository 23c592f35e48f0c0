package bind

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "almanacco/internal/platform/errors"
	kit "almanacco/internal/platform/testkit"
)

type payload struct {
	Name string `json:"name" validate:"required"`
	Age  int    `json:"age" validate:"gte=0"`
}

func TestParseJSON_OK(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"ada","age":3}`))
	got, err := ParseJSON[payload](r)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got.Name != "ada" || got.Age != 3 {
		t.Fatalf("got = %+v", got)
	}
}

func TestParseJSON_UnknownFieldsTolerated(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"ada","extra":true}`))
	if _, err := ParseJSON[payload](r); err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
}

func TestParseJSON_EmptyBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(""))
	_, err := ParseJSON[payload](r)
	kit.MustErrCode(t, err, perr.ErrorCodeJSON)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))
	_, err := ParseJSON[payload](r)
	kit.MustErrCode(t, err, perr.ErrorCodeJSON)
}

func TestParseJSON_TrailingData(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"ada"}{"name":"bob"}`))
	_, err := ParseJSON[payload](r)
	kit.MustErrCode(t, err, perr.ErrorCodeJSON)
}

func TestParseJSON_ValidationFailureNamesJSONField(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"age":3}`))
	_, err := ParseJSON[payload](r)
	kit.MustErrCode(t, err, perr.ErrorCodeValidation)

	e, ok := perr.As(err)
	if !ok {
		t.Fatalf("not a project error: %v", err)
	}
	if e.Field() != "name" {
		t.Fatalf("field = %q", e.Field())
	}
}
