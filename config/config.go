package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`

	// Case access enforcement: "strict" or "legacy".
	AccessMode string `mapstructure:"ACCESS_MODE"`

	// Record store.
	StoreBackend  string `mapstructure:"STORE_BACKEND"`
	DataFile      string `mapstructure:"DATA_FILE"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Sessions.
	SessionBackend string        `mapstructure:"SESSION_BACKEND"`
	SessionTTL     time.Duration `mapstructure:"SESSION_TTL"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Text completion.
	CompleterBackend string        `mapstructure:"COMPLETER_BACKEND"`
	HuggingFaceToken string        `mapstructure:"HUGGINGFACE_TOKEN"`
	HFModel          string        `mapstructure:"HF_MODEL"`
	GeminiAPIKey     string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel      string        `mapstructure:"GEMINI_MODEL"`
	AITimeout        time.Duration `mapstructure:"AI_TIMEOUT"`

	// Assistant limiter.
	AssistantRateWindow time.Duration `mapstructure:"ASSISTANT_RATE_WINDOW"`
	AssistantRateMax    int           `mapstructure:"ASSISTANT_RATE_MAX"`

	// Google Speech credentials; empty disables remote transcription.
	GoogleServiceAccountFile string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_FILE"`

	// Attachments.
	UploadBackend       string `mapstructure:"UPLOAD_BACKEND"`
	UploadDir           string `mapstructure:"UPLOAD_DIR"`
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
	CloudinaryFolder    string `mapstructure:"CLOUDINARY_FOLDER"`

	// Legal search upstream.
	CourtListenerURL string `mapstructure:"COURTLISTENER_URL"`
}

var AppConfig Config

func setDefaults() {
	viper.SetDefault("APP_PORT", "4000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("ACCESS_MODE", "strict")
	viper.SetDefault("STORE_BACKEND", "file")
	viper.SetDefault("DATA_FILE", "data/db.json")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "casexpert")
	viper.SetDefault("SESSION_BACKEND", "memory")
	viper.SetDefault("SESSION_TTL", "0s")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("COMPLETER_BACKEND", "auto")
	viper.SetDefault("HUGGINGFACE_TOKEN", "")
	viper.SetDefault("HF_MODEL", "google/flan-t5-base")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("AI_TIMEOUT", "10s")
	viper.SetDefault("ASSISTANT_RATE_WINDOW", "5m")
	viper.SetDefault("ASSISTANT_RATE_MAX", 20)
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_FILE", "")
	viper.SetDefault("UPLOAD_BACKEND", "local")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")
	viper.SetDefault("CLOUDINARY_FOLDER", "casexpert")
	viper.SetDefault("COURTLISTENER_URL", "https://www.courtlistener.com/api/rest/v3/search/")
}

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults()

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

// IsLegacyAccess reports whether case routes run without the access policy.
func IsLegacyAccess() bool {
	return AppConfig.AccessMode == "legacy"
}
