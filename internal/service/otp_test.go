// File: internal/service/otp_test.go
package service

import (
	"errors"
	"io"
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateOTPCode(t *testing.T) {
	t.Cleanup(restoreGlobals)

	for i := 0; i < 50; i++ {
		code, err := GenerateOTPCode()
		require.NoError(t, err)
		require.Len(t, code, 4)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 1000)
		require.LessOrEqual(t, n, 9999)
	}

	randInt = func(io.Reader, *big.Int) (*big.Int, error) { return nil, errors.New("rand") }
	_, err := GenerateOTPCode()
	require.Error(t, err)
}
