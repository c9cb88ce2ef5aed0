// File: internal/mail/command.go
package mail

// Command OTP 郵件派送指令，序列化後進入 Redis 佇列
type Command struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	Code   string `json:"code"`
}
