// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"skincare-api/internal/cache"
	"skincare-api/internal/database"
	"skincare-api/internal/dto"

	"github.com/labstack/echo/v4"
)

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.Response
// @Failure     500 {object} dto.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, "database unhealthy"))
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrServer, "redis unhealthy"))
		}
		return c.JSON(http.StatusOK, dto.Success("pong", nil))
	}
}
