package web

import (
	"net/http"

	"tripplanner/internal/auth"
	"tripplanner/internal/models"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "session"

// userResponse is the wire shape for a user on every endpoint.
type userResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	IsAdmin  bool   `json:"is_admin"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Nickname: u.Nickname, IsAdmin: u.IsAdmin}
}

type registerRequest struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// sessionCookie builds the session cookie. In production it is
// Secure/SameSite=None for the cross-site frontend; in development it is
// Lax and non-secure so plain-http localhost works.
func (s *Server) sessionCookie(token string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   maxAge,
	}
	if s.cfg.IsProduction() {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteLaxMode
	}
	return cookie
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.auth.Register(r.Context(), req.Email, req.Nickname, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toUserResponse(user))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := s.auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	http.SetCookie(w, s.sessionCookie(token, int(auth.DefaultTokenMaxAge.Seconds())))
	respondJSON(w, http.StatusOK, loginResponse{Message: "Login successful", User: toUserResponse(user)})
}

// handleLogout clears the session cookie. Tokens are stateless, so the
// token itself stays valid until it ages out; this only removes it from
// the client. Requires no authentication and is idempotent.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, s.sessionCookie("", -1))
	respondJSON(w, http.StatusOK, messageResponse{Message: "Logout successful"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toUserResponse(CurrentUser(r.Context())))
}
