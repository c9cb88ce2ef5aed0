// File: internal/dto/validation.go
package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ValidationMessage 將 validator 錯誤轉為欄位對應的固定訊息
// 未知欄位/規則回傳原始錯誤字串
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Field() {
	case "Email":
		if fe.Tag() == "required" {
			return "Email is required."
		}
		return "Invalid email address."
	case "Password":
		if fe.Tag() == "min" {
			return "Password must be at least 6 characters long."
		}
		return "Password is required."
	case "NewPassword":
		return "New password is required."
	case "OldPassword":
		return "Old password is required."
	case "FullName":
		return "Full name must be at least 2 characters."
	case "Gender":
		return "Gender must be male, female, or other."
	case "DateOfBirth":
		return "Date of birth must be a valid date (YYYY-MM-DD)."
	case "OTP":
		return "OTP must be 4 digits."
	case "RefreshToken":
		return "Refresh token is required."
	case "Role":
		return "Role must be admin or user."
	}
	return err.Error()
}
