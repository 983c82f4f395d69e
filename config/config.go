package config

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Encryption EncryptionConfig `mapstructure:"encryption"`
	Import     ImportConfig     `mapstructure:"import"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// EncryptionConfig carries the key material for field-level encryption.
// AESKey must be a base64-encoded 32-byte key (AES-256). HMACKey must be a
// base64-encoded key of at least 32 bytes, independent from AESKey; it feeds
// the blind-index digest, never the cipher.
type EncryptionConfig struct {
	AESKey  string `mapstructure:"aes_key"`
	HMACKey string `mapstructure:"hmac_key"`
}

// DecodedAESKey returns the raw AES-256 key bytes.
func (e EncryptionConfig) DecodedAESKey() ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(e.AESKey)
	if err != nil {
		return nil, fmt.Errorf("decoding AES key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("AES-256 key must be exactly 32 bytes, got %d", len(key))
	}
	return key, nil
}

// DecodedHMACKey returns the raw blind-index key bytes.
func (e EncryptionConfig) DecodedHMACKey() ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(e.HMACKey)
	if err != nil {
		return nil, fmt.Errorf("decoding HMAC key: %w", err)
	}
	if len(key) < 32 {
		return nil, fmt.Errorf("HMAC key must be at least 32 bytes, got %d", len(key))
	}
	return key, nil
}

// Validate checks that both keys decode and meet their size requirements.
func (e EncryptionConfig) Validate() error {
	if _, err := e.DecodedAESKey(); err != nil {
		return err
	}
	if _, err := e.DecodedHMACKey(); err != nil {
		return err
	}
	return nil
}

// ImportConfig sizes the async import worker pool.
type ImportConfig struct {
	Workers       int `mapstructure:"workers"`
	QueueCapacity int `mapstructure:"queue_capacity"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: BGA_ (Budget Aggregator).
// Nested keys use underscore: BGA_DATABASE_HOST, BGA_ENCRYPTION_AES_KEY, etc.
// Malformed or undersized encryption keys fail here, at startup.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "budget_aggregator")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("encryption.aes_key", "")
	v.SetDefault("encryption.hmac_key", "")
	v.SetDefault("import.workers", 4)
	v.SetDefault("import.queue_capacity", 100)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: BGA_DATABASE_HOST -> database.host
	v.SetEnvPrefix("BGA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Encryption.Validate(); err != nil {
		return nil, fmt.Errorf("validating encryption keys: %w", err)
	}
	if cfg.Import.Workers < 1 {
		return nil, fmt.Errorf("import.workers must be positive, got %d", cfg.Import.Workers)
	}
	if cfg.Import.QueueCapacity < 0 {
		return nil, fmt.Errorf("import.queue_capacity cannot be negative, got %d", cfg.Import.QueueCapacity)
	}

	return &cfg, nil
}
