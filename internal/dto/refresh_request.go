// File: internal/dto/refresh_request.go
package dto

// swagger:model dto.RefreshRequest
type RefreshRequest struct {
	RefreshToken string `form:"refresh_token" validate:"required" example:"eyJhbGciOi..."`
}
