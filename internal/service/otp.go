// File: internal/service/otp.go
package service

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// randInt 測試可覆寫
var randInt = rand.Int

// GenerateOTPCode 產生 1000 到 9999 的四位數驗證碼
func GenerateOTPCode() (string, error) {
	nBig, err := randInt(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return strconv.Itoa(int(nBig.Int64()) + 1000), nil
}
