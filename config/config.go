package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode     string `mapstructure:"mode"`
	Handlers struct {
		Prometheus struct {
			Port string `mapstructure:"port"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
	Server  ServerConfig  `mapstructure:"server"`
	AI      AIConfig      `mapstructure:"ai"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	CORS    struct {
		AllowedOrigins []string `mapstructure:"allowedOrigins"`
	} `mapstructure:"cors"`
}

type ServerConfig struct {
	HTTPPort     string        `mapstructure:"HTTPPort"`
	Timeout      time.Duration `mapstructure:"HTTPTimeout"`
	ReadTimeout  time.Duration `mapstructure:"ReadTimeout"`
	WriteTimeout time.Duration `mapstructure:"WriteTimeout"`
}

// AIConfig selects and tunes the external model.
type AIConfig struct {
	Provider      string        `mapstructure:"provider"`
	Model         string        `mapstructure:"model"`
	APIKeyEnv     string        `mapstructure:"apiKeyEnv"`
	BaseURL       string        `mapstructure:"baseURL"`
	Temperature   float32       `mapstructure:"temperature"`
	ModelTimeout  time.Duration `mapstructure:"modelTimeout"`
	MaxToolRounds int           `mapstructure:"maxToolRounds"`
}

type CatalogConfig struct {
	CacheTTL        time.Duration `mapstructure:"cacheTTL"`
	CleanupInterval time.Duration `mapstructure:"cleanupInterval"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.applyDefaults()
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == "" {
		c.Server.HTTPPort = "8000"
	}
	if c.AI.Provider == "" {
		c.AI.Provider = "gemini"
	}
	if c.AI.APIKeyEnv == "" {
		c.AI.APIKeyEnv = "GOOGLE_GEMINI_API_KEY"
	}
	if c.AI.MaxToolRounds <= 0 {
		c.AI.MaxToolRounds = 6
	}
	if c.AI.ModelTimeout <= 0 {
		c.AI.ModelTimeout = 60 * time.Second
	}
	if c.Catalog.CacheTTL <= 0 {
		c.Catalog.CacheTTL = 10 * time.Minute
	}
	if c.Catalog.CleanupInterval <= 0 {
		c.Catalog.CleanupInterval = 15 * time.Minute
	}
}
