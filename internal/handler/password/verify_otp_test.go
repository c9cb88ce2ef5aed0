// File: internal/handler/password/verify_otp_test.go
package password

import (
	"context"
	"net/http"
	"testing"
	"time"

	"skincare-api/internal/database"
	"skincare-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestVerifyOTPHandler(t *testing.T) {
	form := "email=alice%40example.com&otp=1234"

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newFormCtx(e, "")
	require.NoError(t, VerifyOTPHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newFormCtx(e, form)
	require.NoError(t, VerifyOTPHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 帳號不存在
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newFormCtx(e, form)
	db := &database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row { return userRow{err: pgx.ErrNoRows} },
	}
	require.NoError(t, VerifyOTPHandler(db)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "User not found.")

	// OTP 不存在
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
	require.NoError(t, VerifyOTPHandler(db)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid OTP.")

	// OTP 已過期
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newFormCtx(e, form)
	queries = 0
	db = &database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			queries++
			if queries == 1 {
				return userRow{u: model.User{ID: 7}}
			}
			return otpRow{o: model.OTP{ID: 3, UserID: 7, Code: "1234", CreatedAt: time.Now().Add(-10 * time.Minute)}}
		},
	}
	require.NoError(t, VerifyOTPHandler(db)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "OTP expired.")

	// success
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newFormCtx(e, form)
	queries = 0
	marked := false
	db = &database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			queries++
			if queries == 1 {
				return userRow{u: model.User{ID: 7}}
			}
			return otpRow{o: model.OTP{ID: 3, UserID: 7, Code: "1234", CreatedAt: time.Now()}}
		},
		ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
			marked = true
			require.Equal(t, 3, args[0])
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}
	require.NoError(t, VerifyOTPHandler(db)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, marked)
	require.Contains(t, rec.Body.String(), "OTP verified successfully.")
}
