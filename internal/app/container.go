package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/you/ytstudio/domain"
	"github.com/you/ytstudio/internal/config"
	"github.com/you/ytstudio/internal/infrastructure/auth"
	"github.com/you/ytstudio/internal/infrastructure/notifications"
	"github.com/you/ytstudio/internal/infrastructure/repositories"
	"github.com/you/ytstudio/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo       domain.UserRepository
	GenerationRepo domain.GenerationRepository
	ResetTokenRepo domain.ResetTokenRepository

	PasswordSvc   domain.PasswordService
	TokenSvc      domain.TokenService
	NotifySvc     domain.NotificationService
	AuthSvc       domain.AuthService
	GenerationSvc domain.GenerationService
}

// NewContainer wires every service onto explicitly passed store handles.
func NewContainer(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*Container, error) {
	c := &Container{Config: cfg, DB: db, RedisClient: rdb}

	c.UserRepo = repositories.NewUserRepository(db)
	c.GenerationRepo = repositories.NewGenerationRepository(db)
	c.ResetTokenRepo = repositories.NewResetTokenRepository(rdb, cfg.ResetTokenTTL)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	c.NotifySvc = notifications.NewResendService(cfg.ResendAPIKey, cfg.EmailFrom)

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.ResetTokenRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.NotifySvc,
		services.AuthConfig{
			DefaultPlan:   cfg.DefaultPlan,
			SignupCredits: cfg.SignupCredits,
			TokenTTL:      cfg.TokenTTL,
		},
	)
	c.GenerationSvc = services.NewGenerationService(c.GenerationRepo, c.UserRepo)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
