package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Env         string `mapstructure:"ENV"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Externally visible base URL, used to build verification links.
	BaseURL string `mapstructure:"BASE_URL"`

	// CORS origin for the web client.
	ClientOrigin string `mapstructure:"CLIENT_ORIGIN"`

	// Gemini configuration.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Google sign-in.
	GoogleClientID string `mapstructure:"GOOGLE_CLIENT_ID"`

	// SMTP mailer configuration.
	SMTPHost  string `mapstructure:"SMTP_HOST"`
	SMTPPort  int    `mapstructure:"SMTP_PORT"`
	SMTPUser  string `mapstructure:"SMTP_USER"`
	SMTPPass  string `mapstructure:"SMTP_PASS"`
	EmailFrom string `mapstructure:"EMAIL_FROM"`

	// Object storage configuration. Extracted text is always kept; the raw
	// PDF only goes to S3 when STORAGE_ENABLED is set.
	StorageEnabled     bool   `mapstructure:"STORAGE_ENABLED"`
	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	AWSBucketName      string `mapstructure:"AWS_BUCKET_NAME"`

	// Redis configuration. When REDIS_ADDR is empty the document store
	// falls back to an in-process store.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Document store bounds.
	DocumentTTLMin int `mapstructure:"DOCUMENT_TTL_MIN"`
	DocumentCap    int `mapstructure:"DOCUMENT_CAP"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "4000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("BASE_URL", "http://localhost:4000")
	viper.SetDefault("CLIENT_ORIGIN", "*")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-2.5-flash-lite")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("STORAGE_ENABLED", false)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("DOCUMENT_TTL_MIN", 60)
	viper.SetDefault("DOCUMENT_CAP", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
