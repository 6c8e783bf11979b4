package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"image_enhancer/internal/repository"
	"image_enhancer/internal/service"
)

func TestAuthHandlers_RegisterAndLogin(t *testing.T) {
	auth := &mockAuth{signUpID: 42, genTokenToken: "tok123", parseID: 42}
	activity := &mockActivity{}
	s := &service.Service{Authorization: auth, ActivityLog: activity}
	r := newTestRouter(s)

	// register success
	body := bytes.NewBufferString(`{"username":"u","password":"p"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("register status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if int(m["id"].(float64)) != 42 {
		t.Fatalf("expected id=42, got %v", m["id"])
	}

	// login success
	body = bytes.NewBufferString(`{"username":"u","password":"p"}`)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["token"] != "tok123" {
		t.Fatalf("expected token tok123, got %v", m["token"])
	}

	// login must bind the session to a cookie as well
	var sessionSet bool
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie && c.Value == "tok123" {
			sessionSet = true
		}
	}
	if !sessionSet {
		t.Fatalf("expected session cookie to be set, got %v", w.Result().Cookies())
	}

	// register + login recorded in the activity history
	if len(activity.recorded) != 2 || activity.recorded[0] != service.EventRegister || activity.recorded[1] != service.EventLogin {
		t.Fatalf("unexpected recorded events: %v", activity.recorded)
	}

	// login invalid body → 400
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"username":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad body, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), errInvalidBodyPref) {
		t.Fatalf("expected %q prefix in error, got %s", errInvalidBodyPref, w.Body.String())
	}
}

func TestAuthHandlers_RegisterDuplicateUsername(t *testing.T) {
	auth := &mockAuth{signUpErr: repository.ErrDuplicateUsername}
	s := &service.Service{Authorization: auth, ActivityLog: &mockActivity{}}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(`{"username":"u","password":"p"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate username, got %d (body=%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "username already exists") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAuthHandlers_LoginInvalidCredentials(t *testing.T) {
	auth := &mockAuth{genTokenErr: service.ErrInvalidPassword}
	s := &service.Service{Authorization: auth, ActivityLog: &mockActivity{}}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"username":"alice","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Error != "invalid credentials" {
		t.Fatalf("expected generic 'invalid credentials', got %q", out.Error)
	}
}

func TestAuthHandlers_LogoutClearsCookie(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	s := &service.Service{Authorization: auth, ActivityLog: &mockActivity{}}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header = authHeader("tok")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("logout status=%d, body=%s", w.Code, w.Body.String())
	}
	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected session cookie to be cleared, got %v", w.Result().Cookies())
	}
}
