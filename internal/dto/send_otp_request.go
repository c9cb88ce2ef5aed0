// File: internal/dto/send_otp_request.go
package dto

// swagger:model dto.SendOTPRequest
type SendOTPRequest struct {
	Email string `form:"email" validate:"required,email" example:"alice@example.com"`
}
