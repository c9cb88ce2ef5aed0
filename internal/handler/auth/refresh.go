// File: internal/handler/auth/refresh.go
package auth

import (
	"net/http"

	"skincare-api/internal/dto"
	"skincare-api/internal/model"
	"skincare-api/internal/service"

	"github.com/labstack/echo/v4"
)

// RefreshHandler 以有效的更新令牌換取新的存取令牌
// 驗證為無狀態：僅檢查簽章、到期時間與令牌種類
// @Summary     Refresh access token
// @Description 驗證 refresh token 並發行新的 access token
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       refresh_token formData string true "更新令牌"
// @Success     200 {object} dto.Response
// @Failure     400 {object} dto.ErrorResponse
// @Failure     401 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /refresh [post]
func RefreshHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RefreshRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "invalid form data"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, dto.ValidationMessage(err)))
		}

		claims, err := service.VerifyRefreshToken(req.RefreshToken)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.Fail(dto.ErrAuthentication, "invalid refresh token"))
		}

		user := model.User{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  claims.Role,
		}
		accessToken, err := service.IssueAccessToken(user, claims.FullName)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, "failed to issue token"))
		}

		data := dto.RefreshResponse{
			AccessToken:  accessToken,
			RefreshToken: req.RefreshToken,
		}
		return c.JSON(http.StatusOK, dto.Success("New token issued successfully", data))
	}
}
