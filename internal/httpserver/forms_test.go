package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestContactForm_Created(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(router, "/api/contact", `{
		"name": "Asha",
		"email": "asha@example.com",
		"subject": "Project inquiry",
		"message": "We need a website."
	}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"id":1`) || !strings.Contains(body, `"createdAt"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestContactForm_MissingSubject(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(router, "/api/contact", `{
		"name": "Asha",
		"email": "asha@example.com",
		"message": "No subject here."
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Invalid form data") || !strings.Contains(body, "subject") {
		t.Fatalf("expected field-level error naming subject, got: %s", body)
	}
}

func TestContactForm_BadEmail(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(router, "/api/contact", `{
		"name": "Asha",
		"email": "not-an-email",
		"subject": "Hi",
		"message": "Hello."
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "valid email") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSubscribe_ThenDuplicate(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(router, "/api/subscribe", `{"email": "reader@example.com"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"reader@example.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	rec = postJSON(router, "/api/subscribe", `{"email": "reader@example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Email already subscribed") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(router, "/api/subscribe", `{"email": "nope"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Invalid email") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
