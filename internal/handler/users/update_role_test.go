// File: internal/handler/users/update_role_test.go
package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skincare-api/internal/database"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newRoleCtx(e *echo.Echo, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues(id)
	return ctx, rec
}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

func TestUpdateRoleHandler(t *testing.T) {
	// id 不是數字
	e := echo.New()
	ctx, rec := newRoleCtx(e, "abc", "role=admin")
	require.NoError(t, UpdateRoleHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid user ID")

	// bind error
	e = echo.New()
	e.Binder = errBinder{}
	ctx, rec = newRoleCtx(e, "7", "")
	require.NoError(t, UpdateRoleHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newRoleCtx(e, "7", "role=root")
	require.NoError(t, UpdateRoleHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 使用者不存在
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newRoleCtx(e, "7", "role=admin")
	db := &database.FakeDB{
		ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		},
	}
	require.NoError(t, UpdateRoleHandler(db)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "User not found.")

	// success
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newRoleCtx(e, "7", "role=admin")
	db = &database.FakeDB{
		ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
			require.Equal(t, "admin", args[0])
			require.Equal(t, 7, args[1])
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}
	require.NoError(t, UpdateRoleHandler(db)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Role updated successfully")
}
