package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the API server.
type Config struct {
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	AppAddr    string `envconfig:"APP_ADDR" default:":8080"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"http://localhost:5173"`

	JWTSecret string        `envconfig:"JWT_SECRET" default:"change-me-in-production"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"72h"`

	// The shop has exactly one operator account.
	OwnerUsername string `envconfig:"OWNER_USERNAME" default:"admin"`
	OwnerPassword string `envconfig:"OWNER_PASSWORD" default:"admin123"`

	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"file"`
	StorageDir    string `envconfig:"STORAGE_DIR" default:"./data"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	RedisPrefix   string `envconfig:"REDIS_PREFIX" default:""`
	MySQLDSN      string `envconfig:"MYSQL_DSN" default:""`

	ShopName string `envconfig:"SHOP_NAME" default:"Kashish Hardware"`

	GeminiAPIKey     string `envconfig:"GEMINI_API_KEY" default:""`
	GeminiImageModel string `envconfig:"GEMINI_IMAGE_MODEL" default:"gemini-2.5-flash-image"`
	GeminiTextModel  string `envconfig:"GEMINI_TEXT_MODEL" default:"gemini-2.5-flash"`
}

// Storage drivers understood by kv.Open.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMySQL  = "mysql"
)

// Load reads an optional .env file and then the process environment.
// It reports whether a .env file was found so the caller can log it.
func Load() (*Config, bool, error) {
	dotenv := godotenv.Load() == nil

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, dotenv, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, dotenv, err
	}
	return &cfg, dotenv, nil
}

// Validate checks cross-field requirements envconfig cannot express.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case DriverMemory, DriverFile, DriverRedis:
	case DriverMySQL:
		if c.MySQLDSN == "" {
			return errors.New("config: MYSQL_DSN is required when STORAGE_DRIVER=mysql")
		}
	default:
		return errors.New("config: unknown STORAGE_DRIVER " + c.StorageDriver)
	}
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET must not be empty")
	}
	if c.OwnerUsername == "" || c.OwnerPassword == "" {
		return errors.New("config: owner credentials must not be empty")
	}
	return nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// AIEnabled reports whether a Gemini key was supplied.
func (c *Config) AIEnabled() bool {
	return c.GeminiAPIKey != ""
}
