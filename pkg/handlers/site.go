package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
)

// SiteHandler serves the basic-auth demo pages. Home and Public are open;
// Secure sits behind the basic gate wired in routing.
type SiteHandler struct {
	Logger *slog.Logger
}

func NewSiteHandler(logger *slog.Logger) *SiteHandler {
	return &SiteHandler{Logger: logger}
}

func (h *SiteHandler) Home(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "Welcome! This page needs no authentication.")
}

func (h *SiteHandler) Public(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "This is a public page.")
}

func (h *SiteHandler) Secure(w http.ResponseWriter, r *http.Request) {
	h.Logger.Info("secure page served")
	fmt.Fprintln(w, "You found the secure page!")
}
