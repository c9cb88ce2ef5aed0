// File: internal/dto/change_password_request.go
package dto

// swagger:model dto.ChangePasswordRequest
type ChangePasswordRequest struct {
	OldPassword string `form:"old_password" validate:"required" example:"OldSecret123!"`
	NewPassword string `form:"new_password" validate:"required" example:"NewSecret456!"`
}
