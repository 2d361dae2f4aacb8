package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nadji40/dolab/internal/di"
	"github.com/nadji40/dolab/internal/gateway"
	"github.com/nadji40/dolab/internal/repository"
	"github.com/nadji40/dolab/internal/store"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestRouter(successRate float64) (*gin.Engine, *repository.MemoryKV) {
	gin.SetMode(gin.TestMode)

	kv := repository.NewMemoryKV()
	gw := gateway.NewMockGateway().WithSeed(1)
	gw.SuccessRate = successRate

	s := store.New(kv, gw, gw, store.Config{}, nil).WithClock(func() time.Time {
		return time.Date(2024, 12, 5, 10, 0, 0, 0, time.UTC)
	})

	container := &di.Container{
		KV:      kv,
		Gateway: gw,
		Store:   s,
		Version: "test",
	}
	return NewRouter(container, zap.NewNop()), kv
}

func doRequest(router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, *envelope) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	json.Unmarshal(w.Body.Bytes(), &env)
	return w, &env
}

func TestListEvents(t *testing.T) {
	router, _ := newTestRouter(1.0)

	w, env := doRequest(router, http.MethodGet, "/api/v1/events", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var events []map[string]interface{}
	json.Unmarshal(env.Data, &events)
	if len(events) != 7 {
		t.Fatalf("Expected 7 events, got %d", len(events))
	}

	// Default language is Arabic
	if name := events[0]["name"]; name != "مؤتمر رؤية السعودية 2030" {
		t.Errorf("Expected Arabic name, got %v", name)
	}
}

func TestListEvents_English(t *testing.T) {
	router, _ := newTestRouter(1.0)

	_, env := doRequest(router, http.MethodGet, "/api/v1/events?lang=en", nil)

	var events []map[string]interface{}
	json.Unmarshal(env.Data, &events)
	if name := events[0]["name"]; name != "Saudi Vision 2030 Conference" {
		t.Errorf("Expected English name, got %v", name)
	}
}

func TestListEvents_Search(t *testing.T) {
	router, _ := newTestRouter(1.0)

	_, env := doRequest(router, http.MethodGet, "/api/v1/events?q=NEOM&lang=en", nil)

	var events []map[string]interface{}
	json.Unmarshal(env.Data, &events)
	if len(events) != 1 {
		t.Fatalf("Expected 1 event for NEOM, got %d", len(events))
	}
	if events[0]["id"] != "evt-003" {
		t.Errorf("Expected evt-003, got %v", events[0]["id"])
	}
}

func TestListEvents_UnknownCategory(t *testing.T) {
	router, _ := newTestRouter(1.0)

	w, _ := doRequest(router, http.MethodGet, "/api/v1/events?category=sports", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestGetEvent(t *testing.T) {
	router, _ := newTestRouter(1.0)

	w, env := doRequest(router, http.MethodGet, "/api/v1/events/evt-001", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var event map[string]interface{}
	json.Unmarshal(env.Data, &event)
	if event["id"] != "evt-001" {
		t.Errorf("Expected evt-001, got %v", event["id"])
	}

	// Detail endpoint keeps the bilingual structure
	if _, ok := event["name"].(map[string]interface{}); !ok {
		t.Errorf("Expected bilingual name object, got %v", event["name"])
	}
}

func TestGetEvent_NotFound(t *testing.T) {
	router, _ := newTestRouter(1.0)

	w, env := doRequest(router, http.MethodGet, "/api/v1/events/evt-999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", w.Code)
	}
	if env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Errorf("Expected NOT_FOUND error, got %+v", env.Error)
	}
}

func TestEventAttendees(t *testing.T) {
	router, _ := newTestRouter(1.0)

	w, env := doRequest(router, http.MethodGet, "/api/v1/events/evt-001/attendees", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var attendees []map[string]interface{}
	json.Unmarshal(env.Data, &attendees)
	if len(attendees) != 2 {
		t.Errorf("Expected 2 attendees, got %d", len(attendees))
	}
}

func TestCheckIn(t *testing.T) {
	router, _ := newTestRouter(1.0)

	w, env := doRequest(router, http.MethodPost, "/api/v1/attendees/att-001/checkin", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var attendee map[string]interface{}
	json.Unmarshal(env.Data, &attendee)
	if attendee["check_in_status"] != "checked-in" {
		t.Errorf("Expected checked-in, got %v", attendee["check_in_status"])
	}
	if attendee["check_in_time"] != "2024-12-05T10:00:00Z" {
		t.Errorf("Unexpected check-in time: %v", attendee["check_in_time"])
	}
}

func TestCheckIn_Unknown(t *testing.T) {
	router, _ := newTestRouter(1.0)

	w, _ := doRequest(router, http.MethodPost, "/api/v1/attendees/att-999/checkin", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestScan_InvalidPayload(t *testing.T) {
	router, _ := newTestRouter(1.0)

	w, _ := doRequest(router, http.MethodPost, "/api/v1/checkin/scan", map[string]string{"qr_code": "QR-evt-001"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}

	w, _ = doRequest(router, http.MethodPost, "/api/v1/checkin/scan", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing qr_code, got %d", w.Code)
	}
}

func TestPurchase(t *testing.T) {
	router, _ := newTestRouter(1.0)

	body := map[string]interface{}{
		"event_id":       "evt-001",
		"ticket_type_id": "tkt-001-vip",
		"attendee":       map[string]string{"name": "Ahmed", "email": "ahmed@example.com"},
	}
	w, env := doRequest(router, http.MethodPost, "/api/v1/tickets/purchase", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var tickets []map[string]interface{}
	json.Unmarshal(env.Data, &tickets)
	if len(tickets) != 1 {
		t.Fatalf("Expected 1 ticket, got %d", len(tickets))
	}
	if tickets[0]["status"] != "active" {
		t.Errorf("Expected active ticket, got %v", tickets[0]["status"])
	}

	// The purchased ticket shows up on the tickets list
	_, env = doRequest(router, http.MethodGet, "/api/v1/tickets", nil)
	json.Unmarshal(env.Data, &tickets)
	if len(tickets) != 1 {
		t.Errorf("Expected 1 stored ticket, got %d", len(tickets))
	}
}

func TestPurchase_Declined(t *testing.T) {
	router, _ := newTestRouter(0.0)

	body := map[string]interface{}{"event_id": "evt-001", "ticket_type_id": "tkt-001-vip"}
	w, env := doRequest(router, http.MethodPost, "/api/v1/tickets/purchase", body)
	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("Expected 402, got %d", w.Code)
	}
	if env.Error == nil || env.Error.Code != "PAYMENT_FAILED" {
		t.Errorf("Expected PAYMENT_FAILED error, got %+v", env.Error)
	}
}

func TestPurchase_Validation(t *testing.T) {
	router, _ := newTestRouter(1.0)

	w, _ := doRequest(router, http.MethodPost, "/api/v1/tickets/purchase", map[string]interface{}{"event_id": "evt-001"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing ticket type, got %d", w.Code)
	}

	body := map[string]interface{}{"event_id": "evt-001", "ticket_type_id": "tkt-001-vip", "quantity": 50}
	w, _ = doRequest(router, http.MethodPost, "/api/v1/tickets/purchase", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for excessive quantity, got %d", w.Code)
	}

	body = map[string]interface{}{"event_id": "evt-999", "ticket_type_id": "tkt-001-vip"}
	w, _ = doRequest(router, http.MethodPost, "/api/v1/tickets/purchase", body)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown event, got %d", w.Code)
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	router, _ := newTestRouter(1.0)

	w, env := doRequest(router, http.MethodGet, "/api/v1/settings", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var settings map[string]interface{}
	json.Unmarshal(env.Data, &settings)
	if settings["theme"] != "dark" || settings["language"] != "ar" {
		t.Errorf("Unexpected defaults: %v", settings)
	}

	body := map[string]interface{}{"theme": "light", "language": "en", "notifications": true, "auto_sync": false}
	w, _ = doRequest(router, http.MethodPut, "/api/v1/settings", body)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	_, env = doRequest(router, http.MethodGet, "/api/v1/settings", nil)
	json.Unmarshal(env.Data, &settings)
	if settings["theme"] != "light" || settings["language"] != "en" {
		t.Errorf("Expected updated settings, got %v", settings)
	}
}

func TestSettings_InvalidTheme(t *testing.T) {
	router, _ := newTestRouter(1.0)

	body := map[string]interface{}{"theme": "neon", "language": "ar"}
	w, _ := doRequest(router, http.MethodPut, "/api/v1/settings", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestSync(t *testing.T) {
	router, _ := newTestRouter(1.0)

	// Before any sync the timestamp is null
	_, env := doRequest(router, http.MethodGet, "/api/v1/sync/last", nil)
	var last map[string]interface{}
	json.Unmarshal(env.Data, &last)
	if last["synced_at"] != nil {
		t.Errorf("Expected null before first sync, got %v", last["synced_at"])
	}

	w, _ := doRequest(router, http.MethodPost, "/api/v1/sync", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	_, env = doRequest(router, http.MethodGet, "/api/v1/sync/last", nil)
	json.Unmarshal(env.Data, &last)
	if last["synced_at"] != "2024-12-05T10:00:00Z" {
		t.Errorf("Expected sync timestamp, got %v", last["synced_at"])
	}
}

func TestAnalytics(t *testing.T) {
	router, _ := newTestRouter(1.0)

	w, env := doRequest(router, http.MethodGet, "/api/v1/analytics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var summary map[string]interface{}
	json.Unmarshal(env.Data, &summary)
	if summary["total_events"] != float64(7) {
		t.Errorf("Expected 7 total events, got %v", summary["total_events"])
	}
}

func TestTeamAndJobs(t *testing.T) {
	router, _ := newTestRouter(1.0)

	_, env := doRequest(router, http.MethodGet, "/api/v1/team", nil)
	var team []map[string]interface{}
	json.Unmarshal(env.Data, &team)
	if len(team) != 3 {
		t.Errorf("Expected 3 team members, got %d", len(team))
	}

	_, env = doRequest(router, http.MethodGet, "/api/v1/jobs", nil)
	var jobs []map[string]interface{}
	json.Unmarshal(env.Data, &jobs)
	if len(jobs) != 2 {
		t.Errorf("Expected 2 jobs, got %d", len(jobs))
	}
}

func TestApplyForJob(t *testing.T) {
	router, _ := newTestRouter(1.0)

	body := map[string]interface{}{"name": "Sara Ahmed", "email": "sara@example.com"}
	w, env := doRequest(router, http.MethodPost, "/api/v1/jobs/job-001/apply", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var receipt map[string]interface{}
	json.Unmarshal(env.Data, &receipt)
	if receipt["job_id"] != "job-001" {
		t.Errorf("Expected job-001, got %v", receipt["job_id"])
	}
	if receipt["id"] == "" || receipt["id"] == nil {
		t.Error("Expected an application id on the receipt")
	}
}

func TestApplyForJob_UnknownJob(t *testing.T) {
	router, _ := newTestRouter(1.0)

	body := map[string]interface{}{"name": "Sara", "email": "sara@example.com"}
	w, _ := doRequest(router, http.MethodPost, "/api/v1/jobs/job-999/apply", body)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestApplyForJob_Rejected(t *testing.T) {
	router, _ := newTestRouter(0.0)

	body := map[string]interface{}{"name": "Sara", "email": "sara@example.com"}
	w, env := doRequest(router, http.MethodPost, "/api/v1/jobs/job-001/apply", body)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("Expected 502, got %d", w.Code)
	}
	if env.Error == nil || env.Error.Code != "APPLICATION_FAILED" {
		t.Errorf("Expected APPLICATION_FAILED error, got %+v", env.Error)
	}
}

func TestApplyForJob_Validation(t *testing.T) {
	router, _ := newTestRouter(1.0)

	w, _ := doRequest(router, http.MethodPost, "/api/v1/jobs/job-001/apply", map[string]interface{}{"name": "Sara"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing email, got %d", w.Code)
	}

	body := map[string]interface{}{"name": "Sara", "email": "not-an-email"}
	w, _ = doRequest(router, http.MethodPost, "/api/v1/jobs/job-001/apply", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed email, got %d", w.Code)
	}
}

func TestOrganizer(t *testing.T) {
	router, _ := newTestRouter(1.0)

	w, env := doRequest(router, http.MethodGet, "/api/v1/organizers/org-001", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var org map[string]interface{}
	json.Unmarshal(env.Data, &org)
	if org["id"] != "org-001" {
		t.Errorf("Expected org-001, got %v", org["id"])
	}

	w, _ = doRequest(router, http.MethodGet, "/api/v1/organizers/org-999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}

	_, env = doRequest(router, http.MethodGet, "/api/v1/organizers/org-001/events", nil)
	var events []map[string]interface{}
	json.Unmarshal(env.Data, &events)
	if len(events) != 1 {
		t.Errorf("Expected 1 event, got %d", len(events))
	}
}

func TestCacheReset(t *testing.T) {
	router, kv := newTestRouter(1.0)

	doRequest(router, http.MethodGet, "/api/v1/events", nil)
	if kv.Len() == 0 {
		t.Fatal("Expected populated cache")
	}

	w, _ := doRequest(router, http.MethodPost, "/api/v1/admin/cache/reset", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if kv.Len() != 0 {
		t.Errorf("Expected empty backend after reset, got %d keys", kv.Len())
	}
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(1.0)

	w, env := doRequest(router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var data map[string]interface{}
	json.Unmarshal(env.Data, &data)
	if data["status"] != "ok" {
		t.Errorf("Expected ok, got %v", data["status"])
	}

	w, env = doRequest(router, http.MethodGet, "/ready", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	json.Unmarshal(env.Data, &data)
	if data["backend"] != "memory" {
		t.Errorf("Expected memory backend, got %v", data["backend"])
	}
}

func TestRequestID(t *testing.T) {
	router, _ := newTestRouter(1.0)

	w, _ := doRequest(router, http.MethodGet, "/health", nil)
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header on response")
	}
}
