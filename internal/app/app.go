package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/ytstudio/internal/config"
	httpx "github.com/you/ytstudio/internal/http"
	"github.com/you/ytstudio/internal/http/handlers"
	"github.com/you/ytstudio/internal/http/middleware"
	"github.com/you/ytstudio/internal/infrastructure/database"
)

func Run(cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	container, err := NewContainer(cfg, gdb, rdb)
	if err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(container.AuthSvc)
	genH := handlers.NewGenerationHandlers(container.GenerationSvc)
	authMW := middleware.NewAuthMW(container.TokenSvc, container.UserRepo)

	r := httpx.BuildRouter(authH, genH, authMW, cfg.CORSOrigin)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
