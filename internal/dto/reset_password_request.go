// File: internal/dto/reset_password_request.go
package dto

// swagger:model dto.ResetPasswordRequest
type ResetPasswordRequest struct {
	Email       string `form:"email" validate:"required,email" example:"alice@example.com"`
	NewPassword string `form:"new_password" validate:"required" example:"NewSecret456!"`
}
