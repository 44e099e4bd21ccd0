package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Model    ModelConfig
	Geocoder GeocoderConfig
	Redis    RedisConfig
	Database DatabaseConfig
	History  HistoryConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type ModelConfig struct {
	// Path to the persisted model artifact (weights, encoder,
	// canonical feature columns).
	Path string
}

type GeocoderConfig struct {
	BaseURL        string
	RequestTimeout int // seconds
	CacheEnabled   bool
	CacheTTL       time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type HistoryConfig struct {
	Enabled bool
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Model: ModelConfig{
			Path: viper.GetString("MODEL_PATH"),
		},
		Geocoder: GeocoderConfig{
			BaseURL:        viper.GetString("GEOCODER_BASE_URL"),
			RequestTimeout: viper.GetInt("GEOCODER_REQUEST_TIMEOUT"),
			CacheEnabled:   viper.GetBool("GEOCODER_CACHE_ENABLED"),
			CacheTTL:       time.Duration(viper.GetInt("GEOCODER_CACHE_TTL")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		History: HistoryConfig{
			Enabled: viper.GetBool("HISTORY_ENABLED"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Model.Path == "" {
		cfg.Model.Path = "model/artifact.json"
	}
	if cfg.Geocoder.BaseURL == "" {
		cfg.Geocoder.BaseURL = "https://api.opencagedata.com"
	}
	if cfg.Geocoder.RequestTimeout == 0 {
		cfg.Geocoder.RequestTimeout = 10
	}
	if cfg.Geocoder.CacheTTL == 0 {
		cfg.Geocoder.CacheTTL = 24 * time.Hour
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DSN builds the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Addr returns the host:port Redis address.
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
