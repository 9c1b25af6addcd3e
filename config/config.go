package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	LLM       LLMConfig       `mapstructure:"llm"`
	OCR       OCRConfig       `mapstructure:"ocr"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Store     StoreConfig     `mapstructure:"store"`
	Log       LogConfig       `mapstructure:"log"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

type ServerConfig struct {
	Port        string `mapstructure:"port"`
	Mode        string `mapstructure:"mode"`
	MaxUploadMB int64  `mapstructure:"max_upload_mb"`
}

type LLMConfig struct {
	Provider string        `mapstructure:"provider"`
	Model    string        `mapstructure:"model"`
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"` // 0 means no timeout
}

type OCRConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	TessdataPrefix string `mapstructure:"tessdata_prefix"`
	Language       string `mapstructure:"language"`
}

type DashboardConfig struct {
	MonthlyIncome float64 `mapstructure:"monthly_income"`
}

type StoreConfig struct {
	SeedDemo bool `mapstructure:"seed_demo"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MaxUploadBytes is the multipart memory limit handed to gin.
func (c ServerConfig) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "3001")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.max_upload_mb", 32)
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.model", "") // each provider client picks its own default
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.timeout", "0s")
	v.SetDefault("ocr.enabled", false)
	v.SetDefault("ocr.tessdata_prefix", "/usr/share/tesseract-ocr/5/tessdata/")
	v.SetDefault("ocr.language", "eng")
	v.SetDefault("dashboard.monthly_income", 100000)
	v.SetDefault("store.seed_demo", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// LoadConfig reads config.yaml from path (or the working directory when
// path is empty) and applies FINGUIDE_* environment overrides, e.g.
// FINGUIDE_SERVER_PORT. The provider key may also come from GEMINI_API_KEY
// or OPENAI_API_KEY.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("FINGUIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = providerKeyFromEnv(v, cfg.LLM.Provider)
	}
	if cfg.Server.MaxUploadMB <= 0 {
		cfg.Server.MaxUploadMB = 32
	}

	return &cfg, nil
}

func providerKeyFromEnv(v *viper.Viper, provider string) string {
	name := "GEMINI_API_KEY"
	if strings.EqualFold(provider, "openai") {
		name = "OPENAI_API_KEY"
	}
	_ = v.BindEnv("provider_key", name)
	return v.GetString("provider_key")
}
