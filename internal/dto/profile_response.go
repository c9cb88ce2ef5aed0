// File: internal/dto/profile_response.go
package dto

import "skincare-api/internal/model"

// ProfileResponse 個人資料反正規化視圖（Profile + User 欄位）
// swagger:model dto.ProfileResponse
type ProfileResponse struct {
	Email       string  `json:"email" example:"alice@example.com"`
	Role        string  `json:"role" example:"user"`
	FullName    string  `json:"full_name" example:"Alice Chen"`
	Gender      string  `json:"gender" example:"female"`
	DateOfBirth *string `json:"date_of_birth" example:"1995-04-12"`
	Avatar      string  `json:"avatar" example:"https://cdn.example.com/a.png"`
}

// NewProfileResponse 組裝個人資料視圖，Profile 可為 nil
func NewProfileResponse(u *model.User, p *model.Profile) ProfileResponse {
	r := ProfileResponse{
		Email: u.Email,
		Role:  u.Role,
	}
	if p == nil {
		return r
	}
	if p.FullName != nil {
		r.FullName = *p.FullName
	}
	if p.Gender != nil {
		r.Gender = *p.Gender
	}
	r.DateOfBirth = FormatDate(p.DateOfBirth)
	if p.Avatar != nil {
		r.Avatar = *p.Avatar
	}
	return r
}
