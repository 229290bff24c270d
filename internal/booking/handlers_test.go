package booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Submit rejects invalid input before touching the store, so these paths are
// exercised without a database behind the handler.
func doSubmit(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := Handlers{}
	req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Submit(rr, req)
	return rr
}

func TestSubmit_MissingFieldsIsOneCombinedError(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"name":"Ada"}`,
		`{"name":"Ada","phone":"9463733229","service":"PPF","date":"2099-01-01"}`,
	}
	for _, body := range bodies {
		rr := doSubmit(t, body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", body, rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "all fields are required") {
			t.Fatalf("expected combined required-fields error, got %s", rr.Body.String())
		}
	}
}

func TestSubmit_InvalidPhone(t *testing.T) {
	rr := doSubmit(t, `{"name":"Ada","phone":"123-456","service":"PPF","date":"2099-01-01","time":"10:00"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "10 digits") {
		t.Fatalf("expected phone error, got %s", rr.Body.String())
	}
}

func TestSubmit_UnknownServiceNamesOffendingValue(t *testing.T) {
	rr := doSubmit(t, `{"name":"Ada","phone":"9463733229","service":["PPF","Oil Change"],"date":"2099-01-01","time":"10:00"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Oil Change") {
		t.Fatalf("expected offending value in error, got %s", rr.Body.String())
	}
}

func TestSubmit_DateOutsideWindow(t *testing.T) {
	for _, date := range []string{"2000-01-01", "2999-01-01", "abc", "2025/13/40"} {
		rr := doSubmit(t, `{"name":"Ada","phone":"9463733229","service":"PPF","date":"`+date+`","time":"10:00"}`)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for date %q, got %d", date, rr.Code)
		}
	}
}

func TestBookingID_Malformed(t *testing.T) {
	h := Handlers{}
	for _, id := range []string{"abc", "0", "-3", "1.5", ""} {
		req := httptest.NewRequest(http.MethodGet, "/api/booking/x", nil)
		req = withURLParam(req, "id", id)
		rr := httptest.NewRecorder()
		h.Get(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for id %q, got %d", id, rr.Code)
		}
	}
}
