// File: internal/handler/auth/register.go
package auth

import (
	"net/http"

	"skincare-api/internal/database"
	"skincare-api/internal/dto"
	"skincare-api/internal/model"
	"skincare-api/internal/repository"
	"skincare-api/internal/service"

	"github.com/labstack/echo/v4"
)

// optional 空字串視為未填
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// RegisterHandler 註冊新使用者並回傳一組令牌
// @Summary     Register a new user
// @Description 建立 User 與 Profile（同一交易），成功後直接發行 access/refresh 令牌
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email         formData string true  "電子郵件"
// @Param       password      formData string true  "密碼（至少 6 字元）"
// @Param       full_name     formData string false "全名（至少 2 字元）"
// @Param       gender        formData string false "性別 male/female/other"
// @Param       date_of_birth formData string false "生日 YYYY-MM-DD，需早於今天"
// @Param       avatar        formData string false "頭像連結"
// @Success     201 {object} dto.Response
// @Failure     400 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "invalid form data"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, dto.ValidationMessage(err)))
		}

		ctx := c.Request().Context()

		profile := &model.Profile{
			FullName: optional(req.FullName),
			Gender:   optional(req.Gender),
			Avatar:   optional(req.Avatar),
		}
		if req.DateOfBirth != "" {
			t, err := service.ParseDateOfBirth(req.DateOfBirth)
			if err != nil {
				return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, err.Error()))
			}
			profile.DateOfBirth = t
		}

		// 先查重提早回報，真正的防線是資料庫唯一約束
		taken, err := repository.EmailTaken(ctx, db, req.Email, 0)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
		}
		if taken {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "Email already exists."))
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, "failed to hash password"))
		}

		user := &model.User{
			Email:        req.Email,
			PasswordHash: hash,
			Role:         model.RoleUser,
		}
		if err := repository.CreateUserWithProfile(ctx, db, user, profile); err != nil {
			// 併發重複註冊在約束處失敗
			if repository.IsUniqueViolation(err) {
				return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "Email already exists."))
			}
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
		}

		fullName := ""
		if profile.FullName != nil {
			fullName = *profile.FullName
		}
		accessToken, err := service.IssueAccessToken(*user, fullName)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, "failed to issue token"))
		}
		refreshToken, err := service.IssueRefreshToken(*user, fullName)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, "failed to issue refresh token"))
		}

		data := dto.TokenResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			User:         dto.NewUserView(user, profile),
		}
		return c.JSON(http.StatusCreated, dto.Success("User registered successfully", data))
	}
}
