// File: internal/dto/register_request.go
package dto

// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	Email       string `form:"email" validate:"required,email" example:"alice@example.com"`
	Password    string `form:"password" validate:"required,min=6" example:"Secret123!"`
	FullName    string `form:"full_name" validate:"omitempty,min=2" example:"Alice Chen"`
	Gender      string `form:"gender" validate:"omitempty,oneof=male female other" example:"female"`
	DateOfBirth string `form:"date_of_birth" validate:"omitempty,datetime=2006-01-02" example:"1995-04-12"`
	Avatar      string `form:"avatar" example:"https://cdn.example.com/a.png"`
}
