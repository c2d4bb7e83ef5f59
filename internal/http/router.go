package httpx

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/you/ytstudio/internal/http/handlers"
	"github.com/you/ytstudio/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, gh *handlers.GenerationHandlers, authmw *middleware.AuthMW, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), gzip.Gzip(gzip.DefaultCompression))

	corsCfg := cors.DefaultConfig()
	if corsOrigin == "" || corsOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{corsOrigin}
		corsCfg.AllowCredentials = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"message": "Server is running!"}) })

	auth := r.Group("/auth")
	auth.POST("/signup", ah.Signup)
	auth.POST("/signin", ah.Signin)
	auth.POST("/reset-password", ah.ResetPassword)

	authed := r.Group("/").Use(authmw.WithAuth())
	authed.GET("/auth/me", ah.Me)
	authed.PUT("/auth/update", ah.Update)
	authed.POST("/auth/signout", ah.Signout)

	gen := r.Group("/generate").Use(authmw.WithAuth())
	gen.POST("/generate", gh.Generate)
	gen.GET("/history", gh.History)

	return r
}
