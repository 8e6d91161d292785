package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/testnotes/testnotes-go/internal/middleware"
	"github.com/testnotes/testnotes-go/internal/model"
	"github.com/testnotes/testnotes-go/internal/service"
	"github.com/testnotes/testnotes-go/internal/session"
)

// AuthHandler handles HTTP requests for sign-up, sign-in, logout and the
// session check.
type AuthHandler struct {
	auth     *service.AuthService
	sessions *session.Manager
	cookies  session.CookieOptions
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, sessions *session.Manager, cookies session.CookieOptions) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, cookies: cookies}
}

// HandleSignup handles POST /api/signup requests.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	user, err := h.auth.Register(r.Context(), req)
	if err != nil {
		switch {
		case isValidationError(err), isConflictError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			slog.Error("signup failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	h.establishSession(w, r, user, "signup successful")
}

// HandleSignin handles POST /api/signin requests.
func (h *AuthHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	user, err := h.auth.SignIn(r.Context(), req)
	if err != nil {
		switch {
		case isValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		default:
			slog.Error("signin failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	h.establishSession(w, r, user, "signin successful")
}

// establishSession issues a session for an authenticated user, sets the
// cookie and writes the success envelope.
func (h *AuthHandler) establishSession(w http.ResponseWriter, r *http.Request, user *model.User, message string) {
	token, sess, err := h.sessions.Issue(r.Context(), user.ID, user.Username)
	if err != nil {
		slog.Error("session issue failed", "user_id", user.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	session.SetCookie(w, token, sess.ExpiresAt, h.cookies)
	writeJSON(w, http.StatusOK, model.AuthResponse{
		Success: true,
		Message: message,
		User:    model.PublicUser{Username: user.Username, Email: user.Email},
	})
}

// HandleLogout handles POST /api/logout requests. Logging out without a
// session is not an error; the cookie is cleared either way. A session store
// failure during resolution or destroy is a 500: the server-side record
// cannot be confirmed destroyed.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := middleware.ResolveErrorFromContext(r.Context()); err != nil {
		slog.Error("session resolve failed during logout", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	sess, ok := middleware.SessionFromContext(r.Context())
	if ok {
		if err := h.sessions.Destroy(r.Context(), sess.ID); err != nil {
			slog.Error("session destroy failed", "session_id", sess.ID, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
			return
		}
	}

	session.ClearCookie(w, h.cookies)
	writeJSON(w, http.StatusOK, model.MessageResponse{Success: true, Message: "logged out"})
}

// HandleCheckAuth handles GET /api/auth/check requests. It never fails: the
// response reports whether a valid session accompanied the request.
func (h *AuthHandler) HandleCheckAuth(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, model.CheckAuthResponse{Authenticated: false})
		return
	}

	writeJSON(w, http.StatusOK, model.CheckAuthResponse{Authenticated: true, Username: sess.Username})
}
