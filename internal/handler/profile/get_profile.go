// File: internal/handler/profile/get_profile.go
package profile

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

// GetProfileHandler 取得當前使用者的個人資料視圖
// @Summary     Get own profile
// @Description 回傳 Profile 與 User 欄位組成的反正規化視圖
// @Tags        profile
// @Produce     json
// @Success     200 {object} dto.Response
// @Failure     401 {object} dto.ErrorResponse
// @Failure     404 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /profile [get]
func GetProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claimsRaw := c.Get(middleware.ContextUserKey)
		claims, ok := claimsRaw.(*service.CustomClaims)
		if !ok || claimsRaw == nil {
			return c.JSON(http.StatusUnauthorized, dto.Fail(dto.ErrNotAuthenticated, "invalid or missing token"))
		}

		ctx := c.Request().Context()

		user, err := repository.GetUserByID(ctx, db, claims.UserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.Fail(dto.ErrNotFound, "User not found."))
			}
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
		}

		// Profile 缺失時以空視圖回應
		p, err := repository.GetProfileByUserID(ctx, db, user.ID)
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
			}
			p = nil
		}

		return c.JSON(http.StatusOK, dto.Success("Profile fetched successfully", dto.NewProfileResponse(user, p)))
	}
}
