package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connection_monitor/internal/models"
	"connection_monitor/internal/service"
)

func TestLogsHandler_ListAndValidation(t *testing.T) {
	auth := &mockAuth{parseID: 99}
	now := time.Now().UTC().Truncate(time.Second)
	events := []models.ConnectionEvent{
		{EventID: "e1", OccurredAt: now, Type: models.EventDrop, Description: "Connection dropped at: 10:00:00 on 2024-06-09"},
		{EventID: "e2", OccurredAt: now.Add(45 * time.Second), Type: models.EventRestore, Description: "Connection restored at: 10:00:45 on 2024-06-09. Outage duration: 45 seconds"},
	}
	logs := &mockEventLog{resp: events}
	s := &service.Service{
		Authorization: auth,
		EventLog:      logs,
	}
	r := newTestRouter(s)

	// Invalid 'from' → 400
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/logs/?from=notatime", nil)
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid 'from', got %d", w.Code)
	}

	// Valid range and type (lowercase type should be normalized to upper in service call)
	w = httptest.NewRecorder()
	q := "/api/v1/logs/?from=" + now.Format(time.RFC3339) + "&to=" + now.Add(time.Minute).Format(time.RFC3339) + "&type=restore"
	req = httptest.NewRequest(http.MethodGet, q, nil)
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("logs status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count  int                      `json:"count"`
		Events []models.ConnectionEvent `json:"events"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 2 || len(out.Events) != 2 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if logs.lastType != models.EventRestore {
		t.Fatalf("expected lastType RESTORE, got %q", logs.lastType)
	}
}

func TestLogsHandler_DateOnlyToIsEndOfDayInclusive(t *testing.T) {
	auth := &mockAuth{parseID: 99}
	logs := &mockEventLog{}
	s := &service.Service{
		Authorization: auth,
		EventLog:      logs,
	}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/logs/?from=2024-06-09&to=2024-06-09", nil)
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("logs status=%d, body=%s", w.Code, w.Body.String())
	}

	wantFrom := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	if !logs.lastFrom.Equal(wantFrom) {
		t.Fatalf("from: got %v, want %v", logs.lastFrom, wantFrom)
	}
	wantTo := wantFrom.Add(24*time.Hour - time.Nanosecond)
	if !logs.lastTo.Equal(wantTo) {
		t.Fatalf("to: got %v, want %v", logs.lastTo, wantTo)
	}
}

func TestLogsHandler_InvertedRangeRejected(t *testing.T) {
	auth := &mockAuth{parseID: 99}
	logs := &mockEventLog{}
	s := &service.Service{
		Authorization: auth,
		EventLog:      logs,
	}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/logs/?from=2024-06-10&to=2024-06-09", nil)
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for inverted range, got %d (body=%s)", w.Code, w.Body.String())
	}
}
