package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"contact-book-api/internal/core/auth"
	"contact-book-api/internal/domain"
	"contact-book-api/internal/transport/http/handler"
	mdw "contact-book-api/internal/transport/http/middleware"
)

type Deps struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Contact *handler.ContactHandler
}

func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		cors.Default(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		mdw.Identity(jwter),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// 公共
	api.POST("/auth/register", d.Auth.Register)
	api.POST("/auth/login", d.Auth.Login)

	// 登录用户
	user := api.Group("/user", mdw.RequireAuth())
	user.GET("", d.User.CurrentUser)

	// 联系人：按操作挂读/写权限
	cb := api.Group("/contact-book", mdw.RequireAuth())
	cb.POST("", mdw.RequireScope(domain.ScopeContactWrite), d.Contact.Create)
	cb.GET("", mdw.RequireScope(domain.ScopeContactRead), d.Contact.Search)
	cb.GET("/:id", mdw.RequireScope(domain.ScopeContactRead), d.Contact.Get)
	cb.PUT("/:id", mdw.RequireScope(domain.ScopeContactWrite), d.Contact.Update)
	cb.DELETE("/:id", mdw.RequireScope(domain.ScopeContactWrite), d.Contact.Delete)

	return r
}
