// File: internal/handler/password/verify_otp.go
package password

import (
	"errors"
	"net/http"
	"time"

	"skincare-api/internal/database"
	"skincare-api/internal/dto"
	"skincare-api/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// VerifyOTPHandler 核對 OTP 並標記為已驗證
// 只有未驗證且在五分鐘效期內的記錄可被標記，過期者保持未驗證
// @Summary     Verify password reset OTP
// @Description 核對 email 與 OTP，成功後該筆記錄進入已驗證狀態
// @Tags        forget-password
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email formData string true "電子郵件"
// @Param       otp   formData string true "四位數驗證碼"
// @Success     200 {object} dto.Response
// @Failure     400 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /forget-password/verify-otp [post]
func VerifyOTPHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.VerifyOTPRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "invalid form data"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, dto.ValidationMessage(err)))
		}

		ctx := c.Request().Context()

		user, err := repository.GetUserByEmail(ctx, db, req.Email)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "User not found."))
			}
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
		}

		otp, err := repository.GetUnverifiedOTP(ctx, db, user.ID, req.OTP)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "Invalid OTP."))
			}
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
		}

		if otp.IsExpired(time.Now()) {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "OTP expired."))
		}

		if err := repository.MarkOTPVerified(ctx, db, otp.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
		}

		return c.JSON(http.StatusOK, dto.Success("OTP verified successfully.", nil))
	}
}
