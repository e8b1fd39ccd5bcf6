package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Session      Session
	Submission   Submission
	LogLevel     string
	GeminiApiKey string
}

type Server struct {
	Port        string
	Mode        string
	CORSOrigins []string
}

type Database struct {
	Driver   string // "postgres" or "sqlite"
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string // sqlite file, ":memory:" allowed
}

type Session struct {
	Secret string
	Name   string
}

type Submission struct {
	// GracePeriod tolerates network and clock skew on the time limit check.
	GracePeriod time.Duration
}

const DefaultGracePeriod = 5 * time.Second

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_PATH", "./database.db")
	viper.SetDefault("SESSION_NAME", "quizdesk_session")
	viper.SetDefault("SUBMISSION_GRACE_SECONDS", int(DefaultGracePeriod/time.Second))
	viper.SetDefault("LOG_LEVEL", "info")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.Mode = viper.GetString("GIN_MODE")
	config.Server.CORSOrigins = splitCSV(viper.GetString("CORS_ORIGINS"))

	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.Path = viper.GetString("DATABASE_PATH")

	config.Session.Secret = viper.GetString("SESSION_SECRET")
	config.Session.Name = viper.GetString("SESSION_NAME")
	if config.Session.Secret == "" {
		log.Warn().Msg("SESSION_SECRET is not set, using an insecure development secret")
		config.Session.Secret = "quizdesk-dev-secret"
	}

	config.Submission.GracePeriod = time.Duration(viper.GetInt("SUBMISSION_GRACE_SECONDS")) * time.Second
	config.LogLevel = viper.GetString("LOG_LEVEL")
	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().
		Str("port", config.Server.Port).
		Str("dbDriver", config.Database.Driver).
		Dur("gracePeriod", config.Submission.GracePeriod).
		Bool("geminiEnabled", config.GeminiApiKey != "").
		Msg("Config loaded")
	return &config, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
