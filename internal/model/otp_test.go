// File: internal/model/otp_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOTPIsExpired(t *testing.T) {
	created := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	o := &OTP{CreatedAt: created}

	require.False(t, o.IsExpired(created))
	require.False(t, o.IsExpired(created.Add(OTPTTL-time.Second)))
	// 邊界：整整五分鐘即視為過期
	require.True(t, o.IsExpired(created.Add(OTPTTL)))
	require.True(t, o.IsExpired(created.Add(time.Hour)))
}
