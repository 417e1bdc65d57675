package middleware_test

import (
	"net/http"
	"sync/atomic"
	"testing"

	"authgate/pkg/credentials"
	"authgate/pkg/middleware"

	"github.com/steinfletcher/apitest"
)

func TestBasicAuth(t *testing.T) {
	creds := credentials.NewStaticProvider("admin", "12345", "admin")

	var count uint32
	protected := middleware.BasicAuth(creds, "restricted")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddUint32(&count, 1)
		http.Error(w, "OK", http.StatusOK)
	}))

	apitest.Handler(protected).
		Get("/secure").
		Expect(t).
		Status(http.StatusUnauthorized).
		Header("WWW-Authenticate", `Basic realm="restricted"`).
		End()

	apitest.Handler(protected).
		Get("/secure").
		BasicAuth("admin", "wrong").
		Expect(t).
		Status(http.StatusForbidden).
		End()

	apitest.Handler(protected).
		Get("/secure").
		BasicAuth("intruder", "12345").
		Expect(t).
		Status(http.StatusForbidden).
		End()

	apitest.Handler(protected).
		Get("/secure").
		BasicAuth("admin", "12345").
		Expect(t).
		Status(http.StatusOK).
		End()

	if count != 1 {
		t.Fatal("protected endpoint should have been called only once")
	}
}
