// File: internal/dto/update_profile_request.go
package dto

// UpdateProfileRequest 支援部分更新，未帶的欄位不變動
// swagger:model dto.UpdateProfileRequest
type UpdateProfileRequest struct {
	Email       *string `form:"email" validate:"omitempty,email" example:"alice@example.com"`
	FullName    *string `form:"full_name" validate:"omitempty,min=2" example:"Alice Chen"`
	Gender      *string `form:"gender" validate:"omitempty,oneof=male female other" example:"female"`
	DateOfBirth *string `form:"date_of_birth" validate:"omitempty,datetime=2006-01-02" example:"1995-04-12"`
	Avatar      *string `form:"avatar" example:"https://cdn.example.com/a.png"`
}
