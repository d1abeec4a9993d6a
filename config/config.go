package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"
)

// Config 服务的全部配置，从环境变量读取
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Auth      AuthConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Container ContainerConfig
}

type ServerConfig struct {
	Addr    string
	GinMode string
}

type LogConfig struct {
	Level       string
	Development bool
}

type AuthConfig struct {
	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int
}

// DatabaseConfig DSN 为空时使用内置演示数据
type DatabaseConfig struct {
	DSN string
}

// RedisConfig Addr 为空时不启用比赛列表缓存
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type ContainerConfig struct {
	DockerEnabled    bool
	PullImages       bool
	RegistryUser     string
	RegistryPassword string
	RegistryServer   string
	Host             string
	TTL              time.Duration
	ReapInterval     time.Duration
	FlagPrefix       string
}

// Load 读取 .env（如存在）和环境变量
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv 只从当前环境变量构造配置
func FromEnv() (*Config, error) {
	var err error
	cfg := &Config{
		Server: ServerConfig{
			Addr:    getEnv("SERVER_ADDR", ":8080"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Database: DatabaseConfig{
			DSN: os.Getenv("DB_DSN"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Container: ContainerConfig{
			RegistryUser:     os.Getenv("DOCKER_REGISTRY_USER"),
			RegistryPassword: os.Getenv("DOCKER_REGISTRY_PASSWORD"),
			RegistryServer:   os.Getenv("DOCKER_REGISTRY_SERVER"),
			Host:             getEnv("CONTAINER_HOST", "127.0.0.1"),
			FlagPrefix:       getEnv("FLAG_PREFIX", "swjtuctf"),
		},
	}

	if cfg.Log.Development, err = getBool("LOG_DEVELOPMENT", false); err != nil {
		return nil, err
	}
	if cfg.Auth.JWTTTL, err = getDuration("JWT_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Auth.BcryptCost, err = getInt("BCRYPT_COST", bcrypt.DefaultCost); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.Redis.CacheTTL, err = getDuration("CACHE_TTL", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.Container.DockerEnabled, err = getBool("DOCKER_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.Container.PullImages, err = getBool("DOCKER_PULL_IMAGES", false); err != nil {
		return nil, err
	}
	if cfg.Container.TTL, err = getDuration("CONTAINER_TTL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.Container.ReapInterval, err = getDuration("CONTAINER_REAP_INTERVAL", 30*time.Second); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 检查配置取值是否合法
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return errors.New("JWT_SECRET must be at least 16 characters")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	switch c.Server.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.Server.GinMode)
	}
	if c.Auth.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.Container.TTL <= 0 || c.Container.ReapInterval <= 0 {
		return errors.New("CONTAINER_TTL and CONTAINER_REAP_INTERVAL must be positive")
	}
	if c.Redis.Addr != "" && c.Redis.CacheTTL <= 0 {
		return errors.New("CACHE_TTL must be positive when REDIS_ADDR is set")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, defaultVal int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	return i, nil
}

func getBool(key string, defaultVal bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for %s: %w", key, err)
	}
	return b, nil
}
