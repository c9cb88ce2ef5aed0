// File: internal/dto/response.go
package dto

// 錯誤分類，對應回應的 HTTP 狀態碼
const (
	ErrValidation       = "ValidationError"       // 400
	ErrAuthentication   = "AuthenticationFailed"  // 401
	ErrNotAuthenticated = "NotAuthenticated"      // 401
	ErrPermission       = "PermissionError"       // 403
	ErrNotFound         = "NotFound"              // 404
	ErrServer           = "ServerError"           // 500
)

// Response 成功回應的統一信封
// swagger:model dto.Response
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Login successfully"`
	Data    any    `json:"data"`
}

// ErrorBody 錯誤內容
// swagger:model dto.ErrorBody
type ErrorBody struct {
	Type    string `json:"type" example:"ValidationError"`
	Message string `json:"message" example:"Email already exists."`
}

// ErrorResponse 失敗回應的統一信封
// swagger:model dto.ErrorResponse
type ErrorResponse struct {
	Success bool      `json:"success" example:"false"`
	Error   ErrorBody `json:"error"`
}

// Success 組裝成功信封，data 為 nil 時回傳空物件
func Success(message string, data any) Response {
	if data == nil {
		data = map[string]any{}
	}
	return Response{Success: true, Message: message, Data: data}
}

// Fail 組裝失敗信封
func Fail(errType, message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: ErrorBody{Type: errType, Message: message}}
}
