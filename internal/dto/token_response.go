// File: internal/dto/token_response.go
package dto

// swagger:model dto.TokenResponse
type TokenResponse struct {
	AccessToken  string   `json:"access_token" example:"eyJhbGciOi..."`
	RefreshToken string   `json:"refresh_token" example:"eyJhbGciOi..."`
	User         UserView `json:"user"`
}

// swagger:model dto.RefreshResponse
type RefreshResponse struct {
	AccessToken  string `json:"access_token" example:"eyJhbGciOi..."`
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOi..."`
}
