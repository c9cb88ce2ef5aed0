// File: internal/handler/profile/update_profile.go
package profile

import (
	"errors"
	"net/http"
	"time"

	"skincare-api/internal/database"
	"skincare-api/internal/dto"
	"skincare-api/internal/middleware"
	"skincare-api/internal/model"
	"skincare-api/internal/repository"
	"skincare-api/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// UpdateProfileHandler 部分更新當前使用者的個人資料
// Profile 不存在時先補建（容忍早期沒有 Profile 的帳號）
// @Summary     Update own profile
// @Description 任意子集 {email, full_name, gender, date_of_birth, avatar}，email 不可與他人重複
// @Tags        profile
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email         formData string false "電子郵件"
// @Param       full_name     formData string false "全名（至少 2 字元）"
// @Param       gender        formData string false "性別 male/female/other"
// @Param       date_of_birth formData string false "生日 YYYY-MM-DD，需早於今天"
// @Param       avatar        formData string false "頭像連結"
// @Success     200 {object} dto.Response
// @Failure     400 {object} dto.ErrorResponse
// @Failure     401 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /profile [patch]
func UpdateProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claimsRaw := c.Get(middleware.ContextUserKey)
		claims, ok := claimsRaw.(*service.CustomClaims)
		if !ok || claimsRaw == nil {
			return c.JSON(http.StatusUnauthorized, dto.Fail(dto.ErrNotAuthenticated, "invalid or missing token"))
		}

		var req dto.UpdateProfileRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "invalid form data"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, dto.ValidationMessage(err)))
		}

		// 所有欄位先驗證完才落盤，避免部分更新
		var dob *time.Time
		if req.DateOfBirth != nil {
			t, err := service.ParseDateOfBirth(*req.DateOfBirth)
			if err != nil {
				return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, err.Error()))
			}
			dob = t
		}

		ctx := c.Request().Context()

		if req.Email != nil {
			taken, err := repository.EmailTaken(ctx, db, *req.Email, claims.UserID)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
			}
			if taken {
				return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "Email is already in use."))
			}
			if err := repository.UpdateUserEmail(ctx, db, claims.UserID, *req.Email); err != nil {
				if repository.IsUniqueViolation(err) {
					return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "Email is already in use."))
				}
				return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
			}
		}

		// get or create
		p, err := repository.GetProfileByUserID(ctx, db, claims.UserID)
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
			}
			p, err = repository.CreateProfile(ctx, db, &model.Profile{UserID: claims.UserID})
			if err != nil {
				return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
			}
		}

		if req.FullName != nil {
			p.FullName = req.FullName
		}
		if req.Gender != nil {
			p.Gender = req.Gender
		}
		if dob != nil {
			p.DateOfBirth = dob
		}
		if req.Avatar != nil {
			p.Avatar = req.Avatar
		}

		if err := repository.UpdateProfile(ctx, db, p); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
		}

		user, err := repository.GetUserByID(ctx, db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
		}

		return c.JSON(http.StatusOK, dto.Success("Profile updated successfully", dto.NewProfileResponse(user, p)))
	}
}
