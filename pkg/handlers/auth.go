package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"authgate/pkg/auth"
	"authgate/pkg/principal"
	"authgate/pkg/session"
)

type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthHandler struct {
	Service auth.ServiceInterface
	Logger  *slog.Logger
}

func NewAuthHandler(service auth.ServiceInterface, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	sess, err := h.Service.Login(req.Username, req.Password)
	if err != nil {
		if err.Error() != "invalid credentials" {
			h.Logger.Error("login", "error", err.Error())
			writeError(w, http.StatusInternalServerError, typeError, "internal server error")
			return
		}
		if ok := WriteResp(w, h.Logger, map[string]any{typeMessage: "invalid credentials"}, http.StatusUnauthorized); ok {
			h.Logger.Error("login", "error", "unauthorized", "user", req.Username)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    sess.Token,
		Path:     "/",
		MaxAge:   int(session.TTL.Seconds()),
		HttpOnly: true,
	})

	if ok := WriteResp(w, h.Logger, map[string]any{typeMessage: "logged in"}, http.StatusOK); ok {
		h.Logger.Info("login", "user", sess.UserID)
	}
}

// Logout clears the cookie and drops the record it names. A request
// without a cookie is still a successful logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		if err := h.Service.Logout(cookie.Value); err != nil {
			h.Logger.Error("logout", "error", err.Error())
			writeError(w, http.StatusInternalServerError, typeError, "internal server error")
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	if ok := WriteResp(w, h.Logger, map[string]any{typeMessage: "logged out"}, http.StatusOK); ok {
		h.Logger.Info("logout")
	}
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	var p principal.Principal
	if ok := getPrincipalFromContext(w, r, &p); !ok {
		return
	}

	WriteResp(w, h.Logger, map[string]any{
		typeMessage: fmt.Sprintf("welcome back, %s", p.UserID),
		"role":      p.Role,
	}, http.StatusOK)
}
