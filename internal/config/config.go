package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret   string `yaml:"secret"`
	Issuer   string `yaml:"issuer"`
	TokenTTL string `yaml:"token_ttl"`
}

type CreditsConfig struct {
	SignupGrant int    `yaml:"signup_grant"`
	DefaultPlan string `yaml:"default_plan"`
}

type ResetConfig struct {
	TokenTTL string `yaml:"token_ttl"`
}

type EmailConfig struct {
	ResendAPIKey string `yaml:"resend_api_key"`
	From         string `yaml:"from"`
}

type CORSConfig struct {
	Origin string `yaml:"origin"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Credits  CreditsConfig  `yaml:"credits"`
	Reset    ResetConfig    `yaml:"reset"`
	Email    EmailConfig    `yaml:"email"`
	CORS     CORSConfig     `yaml:"cors"`
}

type Config struct {
	Port          string
	GinMode       string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	JWTIssuer     string
	TokenTTL      time.Duration
	SignupCredits int
	DefaultPlan   string
	ResetTokenTTL time.Duration
	ResendAPIKey  string
	EmailFrom     string
	CORSOrigin    string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml when present and applies environment
// variable overrides. The JWT secret has no default: a process without
// one must not start.
func Load() (*Config, error) {
	path := env("CONFIG_PATH", "config/config.yml")
	file, err := loadConfigFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		file = &ConfigFile{}
	}

	cfg := &Config{
		Port:          env("PORT", intOr(file.App.Port, 8080)),
		GinMode:       env("GIN_MODE", strOr(file.App.GinMode, "release")),
		DSN:           env("DATABASE_DSN", file.Database.DSN),
		RedisAddr:     env("REDIS_ADDR", strOr(file.Redis.Addr, "localhost:6379")),
		RedisPassword: env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:       file.Redis.DB,
		JWTSecret:     env("JWT_SECRET", file.JWT.Secret),
		JWTIssuer:     env("JWT_ISSUER", strOr(file.JWT.Issuer, "ytstudio")),
		DefaultPlan:   env("DEFAULT_PLAN", strOr(file.Credits.DefaultPlan, "free")),
		ResendAPIKey:  env("RESEND_API_KEY", file.Email.ResendAPIKey),
		EmailFrom:     env("EMAIL_FROM", file.Email.From),
		CORSOrigin:    env("FRONTEND_URL", strOr(file.CORS.Origin, "*")),
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret must be configured")
	}

	cfg.TokenTTL, err = parseTTL(env("JWT_TOKEN_TTL", file.JWT.TokenTTL), 7*24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT token TTL: %w", err)
	}

	cfg.ResetTokenTTL, err = parseTTL(env("RESET_TOKEN_TTL", file.Reset.TokenTTL), time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid reset token TTL: %w", err)
	}

	cfg.SignupCredits = 10
	if file.Credits.SignupGrant > 0 {
		cfg.SignupCredits = file.Credits.SignupGrant
	}
	if v := os.Getenv("SIGNUP_CREDITS"); v != "" {
		grant, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SIGNUP_CREDITS: %w", err)
		}
		cfg.SignupCredits = grant
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func parseTTL(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}

func strOr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func intOr(v, def int) string {
	if v != 0 {
		return strconv.Itoa(v)
	}
	return strconv.Itoa(def)
}
