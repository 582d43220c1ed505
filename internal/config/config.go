package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const EnvPrefix = "MONASTERY"

// Version is stamped at build time with -ldflags "-X monastery/internal/config.Version=...".
var Version = "dev"

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Storage   StorageConfig
	Upload    UploadConfig
	Auth      AuthConfig
	Mail      MailConfig
	Map       MapConfig
	Slideshow SlideshowConfig
}

type ServerConfig struct {
	Port        int
	GinMode     string   `mapstructure:"gin_mode"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// StorageConfig selects where accounts, photo metadata and contact messages live.
type StorageConfig struct {
	Driver string // memory, postgres, sqlite
	DSN    string
}

type UploadConfig struct {
	Driver   string // memory, disk
	Dir      string
	MaxBytes int64 `mapstructure:"max_bytes"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type MailConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string `mapstructure:"from_name"`
	NotifyTo string `mapstructure:"notify_to"`
	UseSSL   bool   `mapstructure:"use_ssl"`
}

type MapConfig struct {
	DetailPage string  `mapstructure:"detail_page"`
	TileURL    string  `mapstructure:"tile_url"`
	CenterLat  float64 `mapstructure:"center_lat"`
	CenterLon  float64 `mapstructure:"center_lon"`
	Zoom       int
}

type SlideshowConfig struct {
	Images   []string
	Interval time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("storage.driver", "memory")
	v.SetDefault("storage.dsn", "")
	v.SetDefault("upload.driver", "disk")
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.max_bytes", 10<<20)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("mail.enabled", false)
	v.SetDefault("mail.host", "smtp.gmail.com")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.from", "")
	v.SetDefault("mail.from_name", "Monasteries of Sikkim")
	v.SetDefault("mail.notify_to", "")
	v.SetDefault("mail.use_ssl", false)
	v.SetDefault("map.detail_page", "monastery.html")
	v.SetDefault("map.tile_url", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png")
	v.SetDefault("map.center_lat", 27.533)
	v.SetDefault("map.center_lon", 88.512)
	v.SetDefault("map.zoom", 9)
	v.SetDefault("slideshow.images", []string{
		"images/rumtek.jpg",
		"images/pemayangtse.jpg",
		"images/tashiding.jpg",
		"images/enchey.jpg",
	})
	v.SetDefault("slideshow.interval", 5*time.Second)
}

// Load reads .env, an optional config.yaml and MONASTERY_* environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "memory":
	case "postgres", "sqlite":
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for driver %q", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	switch c.Upload.Driver {
	case "memory", "disk":
	default:
		return fmt.Errorf("unknown upload driver %q", c.Upload.Driver)
	}

	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	if c.Upload.MaxBytes <= 0 {
		return errors.New("upload.max_bytes must be positive")
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger builds a zap logger honouring log.level and log.format.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zc zap.Config
	switch strings.ToLower(c.Log.Format) {
	case "console", "text":
		zc = zap.NewDevelopmentConfig()
	default:
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
