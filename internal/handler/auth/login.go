// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"log"
	"net/http"
	"time"

	"skincare-api/internal/database"
	"skincare-api/internal/dto"
	"skincare-api/internal/repository"
	"skincare-api/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     Login
// @Description 使用 Email 與 Password 進行驗證，回傳存取與更新令牌及使用者摘要
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email    formData string true "電子郵件"
// @Param       password formData string true "密碼"
// @Success     200 {object} dto.Response
// @Failure     400 {object} dto.ErrorResponse
// @Failure     401 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "invalid form data"))
		}
		// 再驗證結構化參數 (go-playground/validator)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, dto.ValidationMessage(err)))
		}

		ctx := c.Request().Context()

		// 帳號不存在與密碼錯誤回報不同訊息，維持既有介面行為
		user, err := repository.GetUserByEmail(ctx, db, req.Email)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusUnauthorized, dto.Fail(dto.ErrAuthentication, "Invalid email address."))
			}
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
		}

		if err := service.AuthenticateUser(*user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.Fail(dto.ErrAuthentication, "Invalid Password"))
		}

		if err := repository.UpdateUserLastLogin(ctx, db, user.ID, time.Now()); err != nil {
			log.Printf("login: update last login: %v", err)
		}

		// Profile 缺失時容忍為空（舊帳號可能尚未建立）
		profile, err := repository.GetProfileByUserID(ctx, db, user.ID)
		if err != nil {
			profile = nil
		}

		fullName := ""
		if profile != nil && profile.FullName != nil {
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
		return c.JSON(http.StatusOK, dto.Success("Login successfully", data))
	}
}
