package handlers_test

import (
	"net/http"
	"testing"

	"authgate/pkg/handlers"

	"github.com/steinfletcher/apitest"
)

func TestSiteHandlers(t *testing.T) {
	h := handlers.NewSiteHandler(newTestLogger())

	apitest.Handler(http.HandlerFunc(h.Home)).
		Get("/").
		Expect(t).
		Status(http.StatusOK).
		Body("Welcome! This page needs no authentication.\n").
		End()

	apitest.Handler(http.HandlerFunc(h.Public)).
		Get("/public").
		Expect(t).
		Status(http.StatusOK).
		Body("This is a public page.\n").
		End()

	apitest.Handler(http.HandlerFunc(h.Secure)).
		Get("/secure").
		Expect(t).
		Status(http.StatusOK).
		Body("You found the secure page!\n").
		End()
}
