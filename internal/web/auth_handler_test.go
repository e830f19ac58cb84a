package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/NangRotha/Cloths-Frontend-User/internal/api"
	"github.com/NangRotha/Cloths-Frontend-User/internal/domain"
	"github.com/NangRotha/Cloths-Frontend-User/internal/kvstore"
	"github.com/NangRotha/Cloths-Frontend-User/internal/session"
)

type authAPIMock struct {
	token    string
	user     domain.User
	loginErr error
}

func (m authAPIMock) Login(context.Context, domain.Credentials) (string, domain.User, error) {
	if m.loginErr != nil {
		return "", domain.User{}, m.loginErr
	}
	return m.token, m.user, nil
}

func (m authAPIMock) Register(context.Context, domain.Registration) error {
	return m.loginErr
}

func (m authAPIMock) Profile(context.Context) (domain.User, error) {
	if m.loginErr != nil {
		return domain.User{}, m.loginErr
	}
	return m.user, nil
}

func newAuthHandler(mock authAPIMock) *AuthHandler {
	tokens := session.NewTokenStore(kvstore.NewMemoryStore())
	sessions := session.NewManager(mock, tokens, zerolog.Nop())
	return NewAuthHandler(sessions, "http://localhost:8000/api/auth/google/login")
}

func TestLogin_Success(t *testing.T) {
	handler := newAuthHandler(authAPIMock{token: "jwt-token", user: domain.User{Username: "sok"}})

	body := bytes.NewBufferString(`{"username": "sok", "password": "pw"}`)
	recorder := httptest.NewRecorder()
	handler.Login(recorder, httptest.NewRequest("POST", "/api/auth/login", body))

	if recorder.Code != http.StatusOK {
		t.Errorf("expected %d, got %d", http.StatusOK, recorder.Code)
	}

	var response SessionResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Status != session.StatusAuthenticated {
		t.Errorf("expected status %s, got %s", session.StatusAuthenticated, response.Status)
	}
	if response.User == nil || response.User.Username != "sok" {
		t.Errorf("expected user 'sok', got %+v", response.User)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	handler := newAuthHandler(authAPIMock{})

	body := bytes.NewBufferString(`{"username": "sok"}`)
	recorder := httptest.NewRecorder()
	handler.Login(recorder, httptest.NewRequest("POST", "/api/auth/login", body))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	serverErr := &api.Error{StatusCode: http.StatusUnauthorized}
	handler := newAuthHandler(authAPIMock{loginErr: serverErr})

	body := bytes.NewBufferString(`{"username": "sok", "password": "wrong"}`)
	recorder := httptest.NewRecorder()
	handler.Login(recorder, httptest.NewRequest("POST", "/api/auth/login", body))

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestRegister_DoesNotAuthenticate(t *testing.T) {
	handler := newAuthHandler(authAPIMock{})

	body := bytes.NewBufferString(`{"username": "sok", "email": "sok@example.com", "password": "pw"}`)
	recorder := httptest.NewRecorder()
	handler.Register(recorder, httptest.NewRequest("POST", "/api/auth/register", body))

	if recorder.Code != http.StatusCreated {
		t.Errorf("expected %d, got %d", http.StatusCreated, recorder.Code)
	}

	recorder = httptest.NewRecorder()
	handler.Me(recorder, httptest.NewRequest("GET", "/api/auth/me", nil))

	var response SessionResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Status != session.StatusAnonymous {
		t.Errorf("expected status %s, got %s", session.StatusAnonymous, response.Status)
	}
}

func TestLogout_ReturnsAnonymousSession(t *testing.T) {
	handler := newAuthHandler(authAPIMock{token: "jwt-token", user: domain.User{Username: "sok"}})

	body := bytes.NewBufferString(`{"username": "sok", "password": "pw"}`)
	handler.Login(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/auth/login", body))

	recorder := httptest.NewRecorder()
	handler.Logout(recorder, httptest.NewRequest("POST", "/api/auth/logout", nil))

	var response SessionResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Status != session.StatusAnonymous {
		t.Errorf("expected status %s, got %s", session.StatusAnonymous, response.Status)
	}
	if response.User != nil {
		t.Errorf("expected no user, got %+v", response.User)
	}
}

func TestGoogleLogin_RedirectsToProvider(t *testing.T) {
	handler := newAuthHandler(authAPIMock{})

	recorder := httptest.NewRecorder()
	handler.GoogleLogin(recorder, httptest.NewRequest("GET", "/api/auth/google/login", nil))

	if recorder.Code != http.StatusTemporaryRedirect {
		t.Errorf("expected %d, got %d", http.StatusTemporaryRedirect, recorder.Code)
	}
	if location := recorder.Header().Get("Location"); location != "http://localhost:8000/api/auth/google/login" {
		t.Errorf("unexpected redirect target: %s", location)
	}
}

func TestGoogleCallback_MissingToken(t *testing.T) {
	handler := newAuthHandler(authAPIMock{})

	recorder := httptest.NewRecorder()
	handler.GoogleCallback(recorder, httptest.NewRequest("GET", "/api/auth/google/callback", nil))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestGoogleCallback_Success(t *testing.T) {
	handler := newAuthHandler(authAPIMock{user: domain.User{Username: "sok"}})

	recorder := httptest.NewRecorder()
	handler.GoogleCallback(recorder, httptest.NewRequest("GET", "/api/auth/google/callback?token=jwt-token", nil))

	if recorder.Code != http.StatusOK {
		t.Errorf("expected %d, got %d", http.StatusOK, recorder.Code)
	}

	var response SessionResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Status != session.StatusAuthenticated {
		t.Errorf("expected status %s, got %s", session.StatusAuthenticated, response.Status)
	}
}
