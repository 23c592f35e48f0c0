package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	perr "almanacco/internal/platform/errors"
)

func TestHandle_SuccessBodyIsRaw(t *testing.T) {
	h := Handle(func(*stdhttp.Request) Response {
		return OK(map[string]string{"version": "1.0"})
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/", nil))

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body: %v", err)
	}
	// no envelope around the payload
	if body["version"] != "1.0" || len(body) != 1 {
		t.Fatalf("body = %v", body)
	}
}

func TestHandle_ErrorBodyIsWire(t *testing.T) {
	h := Handle(func(*stdhttp.Request) Response {
		return Error(perr.JSONErrf("bad body"))
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/", nil))

	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var wire struct {
		Code  perr.ErrorCode `json:"code"`
		Error string         `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &wire); err != nil {
		t.Fatalf("body: %v", err)
	}
	if wire.Code != perr.ErrorCodeJSON || wire.Error != "bad body" {
		t.Fatalf("wire = %+v", wire)
	}
}

func TestHandle_NoContent(t *testing.T) {
	h := Handle(func(*stdhttp.Request) Response { return NoContent() })

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != stdhttp.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("status = %d body = %q", rec.Code, rec.Body.String())
	}
}
