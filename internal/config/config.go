// Package config loads the server configuration from an optional YAML file,
// a .env file and LITTLES_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LITTLES_SERVER_PORT
const EnvPrefix = "LITTLES"

// AppConfig is the complete server configuration
type AppConfig struct {
	Server     ServerConfig     `mapstructure:"server"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Log        LogConfig        `mapstructure:"log"`
	Challenge  ChallengeConfig  `mapstructure:"challenge"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StorageConfig struct {
	// Type is "memory" or "redis"
	Type  string      `mapstructure:"type"`
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	PuzzleTTL    time.Duration `mapstructure:"puzzle_ttl"`
	ChallengeTTL time.Duration `mapstructure:"challenge_ttl"`
}

type DictionaryConfig struct {
	// Path is a newline-separated word list. Empty uses the embedded list.
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string          `mapstructure:"level"`
	Format string          `mapstructure:"format"`
	File   string          `mapstructure:"file"`
	Rotate LogRotateConfig `mapstructure:"rotate"`
}

type LogRotateConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	Compress   bool `mapstructure:"compress"`
}

type ChallengeConfig struct {
	UnlockHour int `mapstructure:"unlock_hour"`
	// ShareURL ends the share text of finished Sort sessions
	ShareURL string `mapstructure:"share_url"`
}

// Load reads configuration. configPath may be empty, in which case
// config.yaml is looked for in the working directory and ./config.
func Load(configPath string) (*AppConfig, error) {
	// A missing .env is normal outside development
	_ = godotenv.Load()

	cfg := defaultConfig()

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	registerKeys(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// registerKeys seeds viper with every key so AutomaticEnv can override keys
// that no config file mentions
func registerKeys(v *viper.Viper, cfg AppConfig) {
	var flat map[string]any
	if err := mapstructure.Decode(cfg, &flat); err != nil {
		return
	}
	setDefaults(v, "", flat)
}

func setDefaults(v *viper.Viper, prefix string, values map[string]any) {
	for k, val := range values {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := val.(map[string]any); ok {
			setDefaults(v, key, nested)
			continue
		}
		v.SetDefault(key, val)
	}
}

func defaultConfig() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Storage: StorageConfig{
			Type: "memory",
			Redis: RedisConfig{
				URL:          "redis://localhost:6379",
				PoolSize:     10,
				MinIdleConns: 2,
				PuzzleTTL:    72 * time.Hour,
				ChallengeTTL: 7 * 24 * time.Hour,
			},
		},
		Log: LogConfig{
			Level:  "INFO",
			Format: "json",
			Rotate: LogRotateConfig{
				MaxSizeMB:  100,
				MaxBackups: 7,
				MaxAgeDays: 30,
				Compress:   true,
			},
		},
		Challenge: ChallengeConfig{
			UnlockHour: 10,
		},
	}
}

func (c *AppConfig) validate() error {
	validLogLevels := map[string]bool{"DEBUG": true, "INFO": true, "WARN": true, "ERROR": true}
	if !validLogLevels[strings.ToUpper(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("log.format must be 'json' or 'text', got: %s", c.Log.Format)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	switch c.Storage.Type {
	case "memory":
	case "redis":
		if c.Storage.Redis.URL == "" {
			return errors.New("storage.redis.url is required for redis storage")
		}
	default:
		return fmt.Errorf("storage.type must be 'memory' or 'redis', got: %s", c.Storage.Type)
	}
	if c.Challenge.UnlockHour < 0 || c.Challenge.UnlockHour > 23 {
		return fmt.Errorf("challenge.unlock_hour must be 0-23, got: %d", c.Challenge.UnlockHour)
	}
	return nil
}
