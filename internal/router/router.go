// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"skincare-api/internal/cache"
	"skincare-api/internal/database"
	"skincare-api/internal/handler"
	"skincare-api/internal/handler/auth"
	"skincare-api/internal/handler/password"
	"skincare-api/internal/handler/profile"
	"skincare-api/internal/handler/users"
	"skincare-api/internal/mail"
	"skincare-api/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, dispatcher mail.Dispatcher) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, rdb))

	// 註冊與登入
	api.POST("/register", auth.RegisterHandler(db))
	api.POST("/login", auth.LoginHandler(db))
	api.POST("/refresh", auth.RefreshHandler())
	api.POST("/password-change", auth.ChangePasswordHandler(db), middleware.RequireAuth)

	// 忘記密碼三段式流程
	apiForget := api.Group("/forget-password")
	apiForget.POST("/send-otp", password.SendOTPHandler(db, dispatcher))
	apiForget.POST("/verify-otp", password.VerifyOTPHandler(db))
	apiForget.POST("/reset", password.ResetPasswordHandler(db))

	// 取得、更新當前使用者個人資料
	apiProfile := api.Group("/profile", middleware.RequireAuth)
	apiProfile.GET("", profile.GetProfileHandler(db))
	apiProfile.PATCH("", profile.UpdateProfileHandler(db))

	// 管理員專屬
	api.PATCH("/users/:id/role", users.UpdateRoleHandler(db), middleware.RequireAdmin)
}
