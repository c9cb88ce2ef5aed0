// File: internal/service/password.go
package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// 測試可覆寫的套件層級函式
var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}

// ValidatePassword 密碼強度規則：至少 6 字元且不可為純數字
// 變更密碼與重設密碼共用同一套規則
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("Password must be at least 6 characters long.")
	}
	if strings.Trim(password, "0123456789") == "" {
		return errors.New("Password cannot be entirely numeric.")
	}
	return nil
}
