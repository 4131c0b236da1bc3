package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Log       Log
	Database  Database
	LLM       LLM
	Interview Interview
	CORS      CORS
}

type Server struct {
	Port string
	Env  string
}

type Log struct {
	Level string
	File  string
}

type Database struct {
	Driver      string // "mysql" or "postgres"
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	AutoMigrate bool
}

type LLM struct {
	Provider string // "gemini", "genai", "openai", "anthropic"

	GeminiApiKey string
	GeminiModel  string

	OpenAIApiKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	AnthropicApiKey string
	AnthropicModel  string

	MaxTokens     int
	Timeout       time.Duration
	MaxConcurrent int64
	RatePerSecond float64
	Burst         int
}

type Interview struct {
	// DefaultUserID is used when a session is started without a user id.
	// Zero disables the fallback.
	DefaultUserID uint64
}

type CORS struct {
	AllowedOrigins []string
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "5000")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DATABASE_DRIVER", "mysql")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "3306")
	v.SetDefault("DATABASE_AUTO_MIGRATE", true)

	v.SetDefault("LLM_PROVIDER", "gemini")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("ANTHROPIC_MODEL", "claude-haiku-4-5-20251001")
	v.SetDefault("LLM_MAX_TOKENS", 1024)
	v.SetDefault("LLM_TIMEOUT", "30s")
	v.SetDefault("LLM_MAX_CONCURRENT", 8)
	v.SetDefault("LLM_RATE_PER_SECOND", 5.0)
	v.SetDefault("LLM_BURST", 10)

	v.SetDefault("INTERVIEW_DEFAULT_USER_ID", 1)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,https://mockverse-frontend.vercel.app")
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.Env = v.GetString("APP_ENV")

	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.File = v.GetString("LOG_FILE")

	config.Database.Driver = strings.ToLower(v.GetString("DATABASE_DRIVER"))
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.AutoMigrate = v.GetBool("DATABASE_AUTO_MIGRATE")

	config.LLM.Provider = strings.ToLower(v.GetString("LLM_PROVIDER"))
	config.LLM.GeminiApiKey = v.GetString("GEMINI_API_KEY")
	config.LLM.GeminiModel = v.GetString("GEMINI_MODEL")
	config.LLM.OpenAIApiKey = v.GetString("OPENAI_API_KEY")
	config.LLM.OpenAIModel = v.GetString("OPENAI_MODEL")
	config.LLM.OpenAIBaseURL = v.GetString("OPENAI_BASE_URL")
	config.LLM.AnthropicApiKey = v.GetString("ANTHROPIC_API_KEY")
	config.LLM.AnthropicModel = v.GetString("ANTHROPIC_MODEL")
	config.LLM.MaxTokens = v.GetInt("LLM_MAX_TOKENS")
	config.LLM.Timeout = v.GetDuration("LLM_TIMEOUT")
	config.LLM.MaxConcurrent = v.GetInt64("LLM_MAX_CONCURRENT")
	config.LLM.RatePerSecond = v.GetFloat64("LLM_RATE_PER_SECOND")
	config.LLM.Burst = v.GetInt("LLM_BURST")

	config.Interview.DefaultUserID = v.GetUint64("INTERVIEW_DEFAULT_USER_ID")

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimRight(strings.TrimSpace(origin), "/"); origin != "" {
			config.CORS.AllowedOrigins = append(config.CORS.AllowedOrigins, origin)
		}
	}

	// Secrets stay out of the log line.
	log.Info().
		Str("env", config.Server.Env).
		Str("port", config.Server.Port).
		Str("db_driver", config.Database.Driver).
		Str("db_host", config.Database.Host).
		Str("llm_provider", config.LLM.Provider).
		Dur("llm_timeout", config.LLM.Timeout).
		Msg("Config loaded")
	return &config
}
