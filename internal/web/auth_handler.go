package web

import (
	"encoding/json"
	"net/http"

	"github.com/NangRotha/Cloths-Frontend-User/internal/domain"
	"github.com/NangRotha/Cloths-Frontend-User/internal/session"
)

type AuthHandler struct {
	sessions      *session.Manager
	googleAuthURL string
}

func NewAuthHandler(sessions *session.Manager, googleAuthURL string) *AuthHandler {
	return &AuthHandler{
		sessions:      sessions,
		googleAuthURL: googleAuthURL,
	}
}

type LoginRequestDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SessionResponse struct {
	Status session.Status `json:"status"`
	User   *domain.User   `json:"user,omitempty"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "username and password are required")
		return
	}

	err := h.sessions.Login(r.Context(), domain.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleShopError(w, r, err, "Login failed. Please check your credentials.")
		return
	}

	respondJSON(w, http.StatusOK, h.sessionResponse())
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var reg domain.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if reg.Username == "" || reg.Password == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "username and password are required")
		return
	}

	// Registration does not log the user in; the UI sends them to the
	// login view afterwards.
	if err := h.sessions.Register(r.Context(), reg); err != nil {
		handleShopError(w, r, err, "Registration failed. Please try again.")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(r.Context())
	respondJSON(w, http.StatusOK, h.sessionResponse())
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.sessionResponse())
}

// GoogleLogin hands the browser over to the shop API's OAuth entry point.
// The flow runs outside this process and returns via GoogleCallback.
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.googleAuthURL, http.StatusTemporaryRedirect)
}

func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Google sign-in failed: missing token")
		return
	}

	if err := h.sessions.LoginWithGoogle(r.Context(), token); err != nil {
		handleShopError(w, r, err, "Google sign-in failed. Please try again.")
		return
	}

	respondJSON(w, http.StatusOK, h.sessionResponse())
}

func (h *AuthHandler) sessionResponse() SessionResponse {
	return SessionResponse{
		Status: h.sessions.Status(),
		User:   h.sessions.User(),
	}
}
