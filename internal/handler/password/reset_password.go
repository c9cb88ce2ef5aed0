// File: internal/handler/password/reset_password.go
package password

import (
	"errors"
	"net/http"

	"skincare-api/internal/database"
	"skincare-api/internal/dto"
	"skincare-api/internal/repository"
	"skincare-api/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// ResetPasswordHandler 以已驗證的 OTP 重設密碼
// 取任一筆已驗證記錄（第一筆符合者），重設成功後刪除該筆記錄
// @Summary     Reset password after OTP verification
// @Description 需存在至少一筆已驗證 OTP；新密碼需通過強度規則
// @Tags        forget-password
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email        formData string true "電子郵件"
// @Param       new_password formData string true "新密碼"
// @Success     200 {object} dto.Response
// @Failure     400 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /forget-password/reset [post]
func ResetPasswordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.ResetPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "invalid form data"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, dto.ValidationMessage(err)))
		}

		if err := service.ValidatePassword(req.NewPassword); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, err.Error()))
		}

		ctx := c.Request().Context()

		user, err := repository.GetUserByEmail(ctx, db, req.Email)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "User not found."))
			}
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
		}

		otp, err := repository.GetVerifiedOTP(ctx, db, user.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "Invalid or unverified OTP."))
			}
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
		}

		hash, err := service.HashPassword(req.NewPassword)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, "failed to hash new password"))
		}
		if err := repository.UpdateUserPassword(ctx, db, user.ID, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
		}

		// 重設成功即消耗該 OTP
		if err := repository.DeleteOTP(ctx, db, otp.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
		}

		return c.JSON(http.StatusOK, dto.Success("Password reset successfully.", nil))
	}
}
