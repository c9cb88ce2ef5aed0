// File: internal/handler/auth/change_password.go
package auth

import (
	"errors"
	"net/http"

	"skincare-api/internal/database"
	"skincare-api/internal/dto"
	"skincare-api/internal/middleware"
	"skincare-api/internal/repository"
	"skincare-api/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// ChangePasswordHandler 變更當前使用者密碼
// 已發出的令牌不會失效，維持到自然到期
// @Summary     Change own password
// @Description 驗證舊密碼並以新密碼取代，新密碼需通過強度規則
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       old_password formData string true "當前密碼"
// @Param       new_password formData string true "新密碼"
// @Success     200 {object} dto.Response
// @Failure     400 {object} dto.ErrorResponse
// @Failure     401 {object} dto.ErrorResponse
// @Failure     404 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /password-change [post]
func ChangePasswordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claimsRaw := c.Get(middleware.ContextUserKey)
		claims, ok := claimsRaw.(*service.CustomClaims)
		if !ok || claimsRaw == nil {
			return c.JSON(http.StatusUnauthorized, dto.Fail(dto.ErrNotAuthenticated, "invalid or missing token"))
		}

		var req dto.ChangePasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "invalid form data"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, dto.ValidationMessage(err)))
		}

		ctx := c.Request().Context()

		user, err := repository.GetUserByID(ctx, db, claims.UserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.Fail(dto.ErrNotFound, "User not found."))
			}
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
		}

		if err := service.AuthenticateUser(*user, req.OldPassword); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.Fail(dto.ErrAuthentication, "Old password is incorrect"))
		}

		if err := service.ValidatePassword(req.NewPassword); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, err.Error()))
		}

		hash, err := service.HashPassword(req.NewPassword)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, "failed to hash new password"))
		}
		if err := repository.UpdateUserPassword(ctx, db, user.ID, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
		}

		return c.JSON(http.StatusOK, dto.Success("Password updated successfully", nil))
	}
}
