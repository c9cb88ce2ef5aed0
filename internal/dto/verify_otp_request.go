// File: internal/dto/verify_otp_request.go
package dto

// swagger:model dto.VerifyOTPRequest
type VerifyOTPRequest struct {
	Email string `form:"email" validate:"required,email" example:"alice@example.com"`
	OTP   string `form:"otp" validate:"required,len=4" example:"4821"`
}
