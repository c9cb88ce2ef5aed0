// File: internal/model/otp.go
package model

import "time"

// OTPTTL 一次性驗證碼的有效時間
const OTPTTL = 5 * time.Minute

// OTP 密碼重設用的一次性驗證碼，一個使用者可同時存在多筆
type OTP struct {
	ID         int       `db:"id" json:"id"`
	UserID     int       `db:"user_id" json:"user_id"`
	Code       string    `db:"code" json:"code"`
	IsVerified bool      `db:"is_verified" json:"is_verified"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// IsExpired 判斷驗證碼是否已超過有效時間
func (o *OTP) IsExpired(now time.Time) bool {
	return now.Sub(o.CreatedAt) >= OTPTTL
}
