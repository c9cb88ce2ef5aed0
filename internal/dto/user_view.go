// File: internal/dto/user_view.go
package dto

import (
	"time"

	"skincare-api/internal/model"
)

// UserView 登入/註冊回應內的使用者摘要
// swagger:model dto.UserView
type UserView struct {
	ID          int     `json:"id" example:"1"`
	Email       string  `json:"email" example:"alice@example.com"`
	Role        string  `json:"role" example:"user"`
	FullName    string  `json:"full_name" example:"Alice Chen"`
	Gender      string  `json:"gender" example:"female"`
	DateOfBirth *string `json:"date_of_birth" example:"1995-04-12"`
	Avatar      string  `json:"avatar" example:"https://cdn.example.com/a.png"`
}

// NewUserView 由 User 與 Profile 組裝摘要，Profile 可為 nil
func NewUserView(u *model.User, p *model.Profile) UserView {
	v := UserView{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
	if p == nil {
		return v
	}
	if p.FullName != nil {
		v.FullName = *p.FullName
	}
	if p.Gender != nil {
		v.Gender = *p.Gender
	}
	v.DateOfBirth = FormatDate(p.DateOfBirth)
	if p.Avatar != nil {
		v.Avatar = *p.Avatar
	}
	return v
}

// FormatDate 將日期轉為 "2006-01-02" 字串，nil 原樣回傳
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
