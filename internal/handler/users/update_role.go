// File: internal/handler/users/update_role.go
package users

import (
	"net/http"
	"strconv"

	"skincare-api/internal/database"
	"skincare-api/internal/dto"
	"skincare-api/internal/repository"

	"github.com/labstack/echo/v4"
)

// UpdateRoleHandler 管理員調整指定使用者的角色
// @Summary     Update user role
// @Description 僅限 admin；role 限定 admin/user
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id   path     int    true "使用者 ID"
// @Param       role formData string true "角色 admin/user"
// @Success     200 {object} dto.Response
// @Failure     400 {object} dto.ErrorResponse
// @Failure     401 {object} dto.ErrorResponse
// @Failure     403 {object} dto.ErrorResponse
// @Failure     404 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id}/role [patch]
func UpdateRoleHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "invalid user ID"))
		}

		var req dto.UpdateRoleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, "invalid form data"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrValidation, dto.ValidationMessage(err)))
		}

		found, err := repository.UpdateUserRole(c.Request().Context(), db, id, req.Role)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, err.Error()))
		}
		if !found {
			return c.JSON(http.StatusNotFound, dto.Fail(dto.ErrNotFound, "User not found."))
		}

		return c.JSON(http.StatusOK, dto.Success("Role updated successfully", nil))
	}
}
