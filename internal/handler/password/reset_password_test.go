// File: internal/handler/password/reset_password_test.go
package password

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"skincare-api/internal/database"
	"skincare-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestResetPasswordHandler(t *testing.T) {
	form := "email=alice%40example.com&new_password=newpw1"

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newFormCtx(e, "")
	require.NoError(t, ResetPasswordHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newFormCtx(e, form)
	require.NoError(t, ResetPasswordHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 新密碼太弱（純數字）
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newFormCtx(e, "email=alice%40example.com&new_password=123456")
	require.NoError(t, ResetPasswordHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Password cannot be entirely numeric.")

	// 帳號不存在
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newFormCtx(e, form)
	db := &database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row { return userRow{err: pgx.ErrNoRows} },
	}
	require.NoError(t, ResetPasswordHandler(db)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "User not found.")

	// 無已驗證 OTP
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newFormCtx(e, form)
	queries := 0
	db = &database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			queries++
			if queries == 1 {
				return userRow{u: model.User{ID: 7}}
			}
			return otpRow{err: pgx.ErrNoRows}
		},
	}
	require.NoError(t, ResetPasswordHandler(db)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid or unverified OTP.")

	// success：密碼更新且 OTP 被消耗
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newFormCtx(e, form)
	queries = 0
	var passwordUpdated, otpDeleted bool
	db = &database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			queries++
			if queries == 1 {
				return userRow{u: model.User{ID: 7}}
			}
			return otpRow{o: model.OTP{ID: 3, UserID: 7, IsVerified: true, CreatedAt: time.Now()}}
		},
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			if strings.Contains(sql, "DELETE") {
				otpDeleted = true
				require.Equal(t, 3, args[0])
				return pgconn.NewCommandTag("DELETE 1"), nil
			}
			passwordUpdated = true
			require.Equal(t, 7, args[1])
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}
	require.NoError(t, ResetPasswordHandler(db)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, passwordUpdated)
	require.True(t, otpDeleted)
	require.Contains(t, rec.Body.String(), "Password reset successfully.")
}
