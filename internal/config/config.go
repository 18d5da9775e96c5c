package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/draftmark/draftmark-backend/pkg/logger"
)

// Config is the application configuration, loaded from a yaml file and then
// overridden by environment variables.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DatabaseConfig holds MySQL settings
type DatabaseConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Name            string `yaml:"name"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // seconds
}

// GetDSN returns the MySQL DSN string
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// RedisConfig holds redis connection settings
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// JWTConfig holds token settings. ExpiresIn is in seconds.
type JWTConfig struct {
	Secret    string `yaml:"secret"`
	ExpiresIn int    `yaml:"expires_in"`
}

// Load reads the yaml config at path and applies env-var overrides.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		// No config file is fine; env vars and defaults carry the day.
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is not configured (set JWT_SECRET)")
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Host:            "127.0.0.1",
			Port:            3306,
			User:            "draftmark",
			Name:            "draftmark",
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: 3600,
		},
		Redis: RedisConfig{
			Host:     "127.0.0.1",
			Port:     6379,
			PoolSize: 10,
		},
		JWT: JWTConfig{
			ExpiresIn: 86400,
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	overrideString("DB_HOST", &cfg.Database.Host)
	overrideInt("DB_PORT", &cfg.Database.Port)
	overrideString("DB_USER", &cfg.Database.User)
	overrideString("DB_PASSWORD", &cfg.Database.Password)
	overrideString("DB_NAME", &cfg.Database.Name)

	overrideString("REDIS_HOST", &cfg.Redis.Host)
	overrideInt("REDIS_PORT", &cfg.Redis.Port)
	overrideString("REDIS_PASSWORD", &cfg.Redis.Password)
	overrideInt("REDIS_DB", &cfg.Redis.DB)

	overrideString("JWT_SECRET", &cfg.JWT.Secret)
	overrideInt("JWT_EXPIRES_IN", &cfg.JWT.ExpiresIn)

	overrideInt("SERVER_PORT", &cfg.Server.Port)
}

func overrideString(key string, dest *string) {
	if v := os.Getenv(key); v != "" {
		*dest = v
	}
}

func overrideInt(key string, dest *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dest = n
		}
	}
}

// LogResolved logs the effective configuration with secrets masked.
func LogResolved(cfg *Config) {
	logger.Info("config: server port=%d", cfg.Server.Port)
	logger.Info("config: database %s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
	logger.Info("config: redis %s:%d db=%d", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	logger.Info("config: jwt expires_in=%ds secret=%s", cfg.JWT.ExpiresIn, mask(cfg.JWT.Secret))
}

func mask(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + "****"
}
