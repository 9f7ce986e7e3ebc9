package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	JWTSecret   string
	CORSOrigins []string

	Log      LogConfig
	LLM      LLMConfig
	R2       R2Config
	Telegram TelegramConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type LLMConfig struct {
	Provider      string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	APIKey        string
	Model         string
	BaseURL       string
	Timeout       time.Duration
}

type R2Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

// Enabled reports whether every R2 setting needed for uploads is present.
// The public base URL is required since the S3 endpoint is not publicly readable.
func (c R2Config) Enabled() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != "" &&
		c.Bucket != "" && c.PublicBaseURL != ""
}

type TelegramConfig struct {
	Token       string
	AdminChatID int64
}

func (c TelegramConfig) Enabled() bool {
	return c.Token != "" && c.AdminChatID != 0
}

// Load reads .env (outside production) and binds the process environment.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8000")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LLM_PROVIDER", "gemini")
	v.SetDefault("GEMINI_MODEL", "gemini-3-flash-preview")
	v.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("LLM_TIMEOUT", "30s")

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Env:         v.GetString("APP_ENV"),
		Port:        v.GetString("PORT"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		LLM: LLMConfig{
			Provider:      strings.ToLower(v.GetString("LLM_PROVIDER")),
			GeminiAPIKey:  v.GetString("GEMINI_API_KEY"),
			GeminiModel:   v.GetString("GEMINI_MODEL"),
			GeminiBaseURL: v.GetString("GEMINI_BASE_URL"),
			APIKey:        v.GetString("LLM_API_KEY"),
			Model:         v.GetString("LLM_MODEL"),
			BaseURL:       v.GetString("LLM_BASE_URL"),
			Timeout:       v.GetDuration("LLM_TIMEOUT"),
		},
		R2: R2Config{
			Endpoint:      v.GetString("R2_ENDPOINT"),
			AccessKey:     v.GetString("R2_ACCESS_KEY"),
			SecretKey:     v.GetString("R2_SECRET_KEY"),
			Bucket:        v.GetString("R2_BUCKET_NAME"),
			PublicBaseURL: v.GetString("R2_PUBLIC_BASE_URL"),
		},
		Telegram: TelegramConfig{
			Token:       v.GetString("TELEGRAM_BOT_TOKEN"),
			AdminChatID: v.GetInt64("TELEGRAM_ADMIN_CHAT_ID"),
		},
	}
}

// Validate fails fast on settings the server cannot start without.
func (c *Config) Validate() error {
	required := []struct{ key, value string }{
		{"DATABASE_URL", c.DatabaseURL},
		{"JWT_SECRET", c.JWTSecret},
	}
	for _, r := range required {
		if r.value == "" {
			return errors.Errorf("missing env var: %s", r.key)
		}
	}

	switch c.LLM.Provider {
	case "gemini", "openai":
	default:
		return errors.Errorf("unknown LLM_PROVIDER %q", c.LLM.Provider)
	}

	if c.LLM.Timeout <= 0 {
		return errors.New("LLM_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
