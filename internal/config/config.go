// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type AppConfig struct {
	// DefaultTestCount はテスト作成時に count 未指定相当として使うデフォルト問題数
	DefaultTestCount int `mapstructure:"default_test_count"`
	// CandidateListLimit は候補スナップショットAPIの最大返却件数
	CandidateListLimit int `mapstructure:"candidate_list_limit"`
}

type AuthConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	SecretKey string `mapstructure:"secret_key"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type S3Config struct {
	Enabled         bool   `mapstructure:"enabled"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" or "iam_role"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	PresignExpiry   int    `mapstructure:"presign_expiry_minutes"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	App      AppConfig      `mapstructure:"app"`
	Auth     AuthConfig     `mapstructure:"auth"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
	S3       S3Config       `mapstructure:"s3"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("auth.secret_key", "AUTH_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.App.DefaultTestCount <= 0 {
		Cfg.App.DefaultTestCount = DefaultTestCount
	}
	if Cfg.App.CandidateListLimit <= 0 {
		Cfg.App.CandidateListLimit = DefaultCandidateListLimit
	}
	if Cfg.S3.PresignExpiry <= 0 {
		Cfg.S3.PresignExpiry = DefaultPresignExpiryMinutes
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	// Auth.Enabled のデフォルトは有効。明示的に無効化された場合のみ認証を外す。
	if !viper.IsSet("auth.enabled") {
		Cfg.Auth.Enabled = true
	}
	if Cfg.Auth.Enabled && Cfg.Auth.SecretKey == "" {
		log.Println("Warning: Auth is enabled but secret_key is empty.")
	}

	log.Println("Config loaded successfully")
	return nil
}
