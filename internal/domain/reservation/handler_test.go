package reservation

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const testHomeURL = "http://localhost:5173"

func newTestRouter(repo Repository, payloads PayloadStore) chi.Router {
	svc := NewService(repo, payloads, NewLogNotifier(), nil)
	h := NewHandler(svc, testHomeURL)

	r := chi.NewRouter()
	r.Mount("/reservations", h.PublicRoutes())
	return r
}

func postReservation(t *testing.T, router chi.Router, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope
}

func TestSubmitEndpoint_ValidRequest(t *testing.T) {
	repo := &trackingRepo{}
	router := newTestRouter(repo, newMemoryPayloadStore())

	rr := postReservation(t, router, map[string]string{
		"name":    "Al",
		"email":   "a@b.com",
		"phone":   "0123456789",
		"date":    time.Now().Format("2006-01-02"),
		"time":    "09h00",
		"service": "Consultation générale",
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if repo.insertCalls != 1 {
		t.Fatalf("expected one insert, got %d", repo.insertCalls)
	}

	envelope := decodeEnvelope(t, rr)
	data := envelope["data"].(map[string]interface{})
	res := data["reservation"].(map[string]interface{})

	if res["occasion"] != "Consultation générale" {
		t.Fatalf("unexpected occasion %v", res["occasion"])
	}
	if res["status"] != "pending" {
		t.Fatalf("expected pending status, got %v", res["status"])
	}
	if res["time"] != "09:00" {
		t.Fatalf("expected normalized time, got %v", res["time"])
	}

	confURL, _ := data["confirmation_url"].(string)
	wantPrefix := "/reservations/confirmation?id="
	if len(confURL) <= len(wantPrefix) || confURL[:len(wantPrefix)] != wantPrefix {
		t.Fatalf("unexpected confirmation url %q", confURL)
	}
}

func TestSubmitEndpoint_InvalidEmail(t *testing.T) {
	repo := &trackingRepo{}
	router := newTestRouter(repo, newMemoryPayloadStore())

	rr := postReservation(t, router, map[string]string{
		"name":    "Jean Dupont",
		"email":   "not-an-email",
		"phone":   "0123456789",
		"date":    time.Now().Format("2006-01-02"),
		"time":    "09h00",
		"service": "Consultation générale",
	})

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}
	if repo.insertCalls != 0 {
		t.Fatalf("expected no insert, got %d", repo.insertCalls)
	}

	envelope := decodeEnvelope(t, rr)
	errInfo := envelope["error"].(map[string]interface{})
	details := errInfo["details"].(map[string]interface{})
	if _, ok := details["email"]; !ok {
		t.Fatalf("expected email field error, got %+v", details)
	}
}

func TestSubmitEndpoint_InvalidJSON(t *testing.T) {
	router := newTestRouter(&trackingRepo{}, newMemoryPayloadStore())

	req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestConfirmationEndpoint_DirectLoadDegraded(t *testing.T) {
	router := newTestRouter(&trackingRepo{}, newMemoryPayloadStore())

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/reservations/confirmation?id="+id.String(), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	envelope := decodeEnvelope(t, rr)
	data := envelope["data"].(map[string]interface{})

	if data["degraded"] != true {
		t.Fatalf("expected degraded projection, got %+v", data)
	}
	if data["name"] != "Votre rendez-vous" {
		t.Fatalf("expected placeholder name, got %v", data["name"])
	}
	if _, ok := data["date"]; ok {
		t.Fatal("degraded projection must omit the date")
	}
	if data["status"] != "pending" {
		t.Fatalf("expected pending status, got %v", data["status"])
	}
}

func TestConfirmationEndpoint_FullAfterSubmission(t *testing.T) {
	payloads := newMemoryPayloadStore()
	router := newTestRouter(&trackingRepo{}, payloads)

	rr := postReservation(t, router, map[string]string{
		"name":    "Jean Dupont",
		"email":   "jean@example.com",
		"phone":   "0612345678",
		"date":    time.Now().Format("2006-01-02"),
		"time":    "14h30",
		"service": "Orthodontie",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}

	envelope := decodeEnvelope(t, rr)
	data := envelope["data"].(map[string]interface{})
	confURL := data["confirmation_url"].(string)

	req := httptest.NewRequest(http.MethodGet, confURL, nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	envelope = decodeEnvelope(t, rr)
	conf := envelope["data"].(map[string]interface{})

	if conf["degraded"] != false {
		t.Fatalf("expected full projection, got %+v", conf)
	}
	if conf["time"] != "14h30" {
		t.Fatalf("expected display time 14h30, got %v", conf["time"])
	}
	if conf["occasion"] != "Orthodontie" {
		t.Fatalf("unexpected occasion %v", conf["occasion"])
	}
}

func TestConfirmationEndpoint_MissingID_RedirectsHome(t *testing.T) {
	router := newTestRouter(&trackingRepo{}, newMemoryPayloadStore())

	req := httptest.NewRequest(http.MethodGet, "/reservations/confirmation", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != testHomeURL {
		t.Fatalf("expected redirect to %q, got %q", testHomeURL, loc)
	}
}

func TestConfirmationEndpoint_MalformedID_RedirectsHome(t *testing.T) {
	router := newTestRouter(&trackingRepo{}, newMemoryPayloadStore())

	req := httptest.NewRequest(http.MethodGet, "/reservations/confirmation?id=not-a-uuid", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rr.Code)
	}
}

func TestSubmitEndpoint_RepositoryFailure(t *testing.T) {
	repo := &trackingRepo{insertErr: errors.New("connection refused")}
	router := newTestRouter(repo, newMemoryPayloadStore())

	rr := postReservation(t, router, map[string]string{
		"name":    "Jean Dupont",
		"email":   "jean@example.com",
		"phone":   "0612345678",
		"date":    time.Now().Format("2006-01-02"),
		"time":    "09h00",
		"service": "Consultation générale",
	})

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}

	envelope := decodeEnvelope(t, rr)
	errInfo := envelope["error"].(map[string]interface{})
	if errInfo["message"] != MsgSubmitFailed {
		t.Fatalf("expected retry-prompting message, got %v", errInfo["message"])
	}
}
