package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	CacheBackendNone     = "none"
	CacheBackendFile     = "file"
	CacheBackendDatabase = "database"
)

type Config struct {
	Datamuse DatamuseConfig `mapstructure:"datamuse"`
	Database DatabaseConfig `mapstructure:"database"`
}

type DatamuseConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	MaxResults     int    `mapstructure:"max_results" validate:"gte=0,lte=1000"`
	CacheBackend   string `mapstructure:"cache_backend" validate:"oneof=none file database"`
	CacheDirectory string `mapstructure:"cache_directory"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordtrove")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("datamuse.base_url", "https://api.datamuse.com")
	v.SetDefault("datamuse.max_results", 100)
	v.SetDefault("datamuse.cache_backend", CacheBackendFile)
	v.SetDefault("datamuse.cache_directory", filepath.Join("cache", "datamuse"))
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "wordtrove")
	v.SetDefault("database.username", "user")

	// Bind the API endpoint to an environment variable so a self-hosted
	// instance can be pointed at without touching the config file
	if err := v.BindEnv("datamuse.base_url", "DATAMUSE_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind DATAMUSE_BASE_URL environment variable: %w", err)
	}

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
