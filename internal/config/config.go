package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Port                             string `mapstructure:"PORT"`
	GinMode                          string `mapstructure:"GIN_MODE"`
	FirebaseProjectID                string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials     string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`
	AdminEmail                       string `mapstructure:"ADMIN_EMAIL"`
	TelegramBotToken                 string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID                   string `mapstructure:"TELEGRAM_CHAT_ID"`
	BotUsername                      string `mapstructure:"BOT_USERNAME"`
	QRImageURL                       string `mapstructure:"QR_IMAGE_URL"`
	GopayNumber                      string `mapstructure:"GOPAY_NUMBER"`
	DanaNumber                       string `mapstructure:"DANA_NUMBER"`
	SeabankNumber                    string `mapstructure:"SEABANK_NUMBER"`
	StatusCollection                 string `mapstructure:"STATUS_COLLECTION"`
	StatusDoc                        string `mapstructure:"STATUS_DOC"`
	ClientURL                        string `mapstructure:"CLIENT_URL"`
}

// LoadConfig loads configuration from environment variables using Viper.
func LoadConfig() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("BOT_USERNAME", "topupgamesbot")
	viper.SetDefault("STATUS_COLLECTION", "settings")
	viper.SetDefault("STATUS_DOC", "store")

	// Bind environment variables
	viper.BindEnv("PORT")
	viper.BindEnv("GIN_MODE")
	viper.BindEnv("FIREBASE_PROJECT_ID")
	viper.BindEnv("GOOGLE_APPLICATION_CREDENTIALS")
	viper.BindEnv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64")
	viper.BindEnv("ADMIN_EMAIL")
	viper.BindEnv("TELEGRAM_BOT_TOKEN")
	viper.BindEnv("TELEGRAM_CHAT_ID")
	viper.BindEnv("BOT_USERNAME")
	viper.BindEnv("QR_IMAGE_URL")
	viper.BindEnv("GOPAY_NUMBER")
	viper.BindEnv("DANA_NUMBER")
	viper.BindEnv("SEABANK_NUMBER")
	viper.BindEnv("STATUS_COLLECTION")
	viper.BindEnv("STATUS_DOC")
	viper.BindEnv("CLIENT_URL")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	// Validate required fields
	if cfg.FirebaseProjectID == "" {
		return nil, errors.New("FIREBASE_PROJECT_ID is required")
	}
	// Credentials are optional: without GOOGLE_APPLICATION_CREDENTIALS or the
	// base64 JSON, Firebase falls back to Application Default Credentials.
	if cfg.AdminEmail == "" {
		return nil, errors.New("ADMIN_EMAIL is required")
	}
	if cfg.TelegramBotToken == "" {
		return nil, errors.New("TELEGRAM_BOT_TOKEN is required")
	}
	if cfg.TelegramChatID == "" {
		return nil, errors.New("TELEGRAM_CHAT_ID is required")
	}
	if cfg.QRImageURL == "" {
		return nil, errors.New("QR_IMAGE_URL is required")
	}

	return &cfg, nil
}
