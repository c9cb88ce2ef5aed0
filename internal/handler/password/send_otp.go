// File: internal/handler/password/send_otp.go
package password

import (
	"errors"
	"log"
	"net/http"

	"skincare-api/internal/database"
	"skincare-api/internal/dto"
	"skincare-api/internal/mail"
	"skincare-api/internal/model"
	"skincare-api/internal/repository"
	"skincare-api/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// SendOTPHandler 產生 OTP 並排入郵件佇列
// 重複請求會累積多筆記錄，過期未驗證者由清理工作移除
// @Summary     Send password reset OTP
// @Description 為既有帳號產生四位數 OTP，郵件派送為非同步，不等待寄送結果
// @Tags        forget-password
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email formData string true "電子郵件"
// @Success     201 {object} dto.Response
// @Failure     400 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /forget-password/send-otp [post]
func SendOTPHandler(db database.DB, disp mail.Dispatcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SendOTPRequest
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
				return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "User with this email does not exist."))
			}
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
		}

		code, err := service.GenerateOTPCode()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, "failed to generate otp"))
		}

		otp := &model.OTP{UserID: user.ID, Code: code}
		if _, err := repository.CreateOTP(ctx, db, otp); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
		}

		// fire-and-forget，寄送結果不影響本請求
		cmd := mail.Command{UserID: user.ID, Email: user.Email, Code: otp.Code}
		if err := disp.Dispatch(ctx, cmd); err != nil {
			log.Printf("send otp: enqueue mail for %s: %v", user.Email, err)
		}

		return c.JSON(http.StatusCreated, dto.Success("OTP sent successfully.", nil))
	}
}
