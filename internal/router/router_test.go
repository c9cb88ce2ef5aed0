// File: internal/router/router_test.go
package router

import (
	"testing"

	"skincare-api/internal/cache"
	"skincare-api/internal/database"
	"skincare-api/internal/mail"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, &mail.FakeDispatcher{})

	got := make(map[string]bool)
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = true
	}

	want := []string{
		"GET /api/ping",
		"POST /api/register",
		"POST /api/login",
		"POST /api/refresh",
		"POST /api/password-change",
		"POST /api/forget-password/send-otp",
		"POST /api/forget-password/verify-otp",
		"POST /api/forget-password/reset",
		"GET /api/profile",
		"PATCH /api/profile",
		"PATCH /api/users/:id/role",
	}
	for _, w := range want {
		require.True(t, got[w], "missing route %s", w)
	}
}
