package respond

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	w := httptest.NewRecorder()
	Text(w, http.StatusCreated, "Contact saved successfully")

	if w.Code != http.StatusCreated {
		t.Errorf("code = %d, want %d", w.Code, http.StatusCreated)
	}
	if got := w.Header().Get("Content-Type"); got != "text/plain; charset=utf-8" {
		t.Errorf("Content-Type = %q", got)
	}
	if w.Body.String() != "Contact saved successfully" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestContentRange(t *testing.T) {
	tests := []struct {
		name  string
		unit  string
		total int
		want  string
	}{
		{name: "several records", unit: "contacts", total: 3, want: "contacts 0-2/3"},
		{name: "single record", unit: "news", total: 1, want: "news 0-0/1"},
		{name: "empty window", unit: "contacts", total: 0, want: "contacts 0-0/0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ContentRange(w, tt.unit, tt.total)
			if got := w.Header().Get("Content-Range"); got != tt.want {
				t.Errorf("Content-Range = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSafeError_InternalDetailHidden(t *testing.T) {
	w := httptest.NewRecorder()
	SafeError(w, http.StatusInternalServerError, errors.New("mongodb://app:hunter2@db:27017 connection refused"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "hunter2") || strings.Contains(body, "mongodb") {
		t.Errorf("internal detail leaked to client: %q", body)
	}
	if !strings.Contains(body, "internal server error") {
		t.Errorf("body = %q, want generic message", body)
	}
}

func TestSafeError_ValidationPassedThrough(t *testing.T) {
	w := httptest.NewRecorder()
	SafeError(w, http.StatusBadRequest, errors.New("too many images: at most 5 per request"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "too many images") {
		t.Errorf("body = %q, want validation message passed through", w.Body.String())
	}
}

func TestSafeError_500NeverSafe(t *testing.T) {
	// 500番台は安全な文言を含んでいても握りつぶす
	w := httptest.NewRecorder()
	SafeError(w, http.StatusInternalServerError, errors.New("record not found in primary shard"))

	if !strings.Contains(w.Body.String(), "internal server error") {
		t.Errorf("body = %q, want generic message for 5xx", w.Body.String())
	}
}

func TestSafeError_NilError(t *testing.T) {
	w := httptest.NewRecorder()
	SafeError(w, http.StatusInternalServerError, nil)

	if w.Body.Len() != 0 {
		t.Errorf("body = %q, want nothing written for nil error", w.Body.String())
	}
}
