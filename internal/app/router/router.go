package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"contact_backend/internal/app/di"
	"contact_backend/internal/platform/http/handler"
	"contact_backend/internal/platform/http/middleware"
	jwtmw "contact_backend/internal/platform/jwt"
)

func NewRouter(app *di.Container, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.AccessLog(log), middleware.Recovery(log), cors.Default())
	r.NoRoute(middleware.NotFound)

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.GET("/readyz", app.Readiness.Ready)

	api := r.Group("/api")
	// 新規ユーザー登録
	api.POST("/register", app.AuthHandler.Register)
	// ログイン（JWT 発行）
	api.POST("/login", app.AuthHandler.Login)

	// 認証必須のルート
	auth := api.Group("")
	auth.Use(jwtmw.AuthRequired(app.Authenticator, log))
	{
		auth.POST("/logout", app.AuthHandler.Logout)

		auth.GET("/account", app.AccountHandler.Get)
		auth.PUT("/account/edit", app.AccountHandler.Edit)
		auth.DELETE("/account", app.AccountHandler.Delete)

		auth.POST("/contact", app.ContactHandler.Create)
		auth.GET("/contact", app.ContactHandler.List)
		auth.GET("/contact/:id", app.ContactHandler.Get)
		auth.PUT("/contact/:id", app.ContactHandler.Update)
		auth.DELETE("/contact/:id", app.ContactHandler.Delete)
	}

	return r
}
