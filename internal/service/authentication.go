// File: internal/service/authentication.go
package service

import (
	"errors"
	"fmt"
	"os"
	"time"

	"skincare-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// 令牌種類與有效期
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 30 * 24 * time.Hour
)

// 測試可覆寫的套件層級函式
var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	UserID    int    `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FullName  string `json:"full_name"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// AuthenticateUser 根據使用者結構和明文密碼驗證
func AuthenticateUser(user model.User, password string) error {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return errors.New("invalid password")
	}
	return nil
}

// Authorize 純函式角色檢查，admin 角色涵蓋所有權限
func Authorize(role, required string) bool {
	if role == model.RoleAdmin {
		return true
	}
	return role == required
}

func issueToken(user model.User, fullName, tokenType string, ttl time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	now := timeNow()
	claims := CustomClaims{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		FullName:  fullName,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// IssueAccessToken 依據使用者資訊產生短效存取令牌
func IssueAccessToken(user model.User, fullName string) (string, error) {
	return issueToken(user, fullName, TokenTypeAccess, AccessTokenTTL)
}

// IssueRefreshToken 產生長效更新令牌，本身即為簽章 JWT
// 驗證為無狀態（僅簽章與到期時間），不維護撤銷清單
func IssueRefreshToken(user model.User, fullName string) (string, error) {
	return issueToken(user, fullName, TokenTypeRefresh, RefreshTokenTTL)
}

func verifyToken(tokenString, tokenType string) (*CustomClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("invalid token type")
	}

	return claims, nil
}

// VerifyAccessToken 驗證並解析存取令牌
func VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	return verifyToken(tokenString, TokenTypeAccess)
}

// VerifyRefreshToken 驗證並解析更新令牌
func VerifyRefreshToken(tokenString string) (*CustomClaims, error) {
	return verifyToken(tokenString, TokenTypeRefresh)
}
