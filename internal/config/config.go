package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	OTP    OTPConfig
	Draft  DraftConfig
	CORS   CORSConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for petition image storage.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// OTPConfig holds phone verification settings.
type OTPConfig struct {
	Provider    string        `mapstructure:"provider"`
	Region      string        `mapstructure:"region"`
	FromAddress string        `mapstructure:"from_address"`
	FromName    string        `mapstructure:"from_name"`
	CodeLength  int           `mapstructure:"code_length"`
	Expiry      time.Duration `mapstructure:"expiry"`
	MaxAttempts int           `mapstructure:"max_attempts"`
}

// DraftConfig holds wizard draft persistence settings.
type DraftConfig struct {
	MaxAge time.Duration `mapstructure:"max_age"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the AWAAZ_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("AWAAZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "awaaz")
	v.SetDefault("db.password", "awaaz_secret")
	v.SetDefault("db.name", "awaaz_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "awaaz")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "awaaz-petition-images")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 10)
	v.SetDefault("s3.presign_expiry", 3600)

	// OTP defaults
	v.SetDefault("otp.provider", "noop")
	v.SetDefault("otp.region", "ap-south-1")
	v.SetDefault("otp.from_address", "noreply@awaaz.org")
	v.SetDefault("otp.from_name", "Awaaz")
	v.SetDefault("otp.code_length", 6)
	v.SetDefault("otp.expiry", "5m")
	v.SetDefault("otp.max_attempts", 3)

	// Draft defaults: drafts older than 30 days are treated as absent
	v.SetDefault("draft.max_age", "720h")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "AWAAZ_SERVER_PORT",
		"server.read_timeout":  "AWAAZ_SERVER_READ_TIMEOUT",
		"server.write_timeout": "AWAAZ_SERVER_WRITE_TIMEOUT",
		"server.environment":   "AWAAZ_SERVER_ENVIRONMENT",
		"db.host":              "AWAAZ_DB_HOST",
		"db.port":              "AWAAZ_DB_PORT",
		"db.user":              "AWAAZ_DB_USER",
		"db.password":          "AWAAZ_DB_PASSWORD",
		"db.name":              "AWAAZ_DB_NAME",
		"db.sslmode":           "AWAAZ_DB_SSLMODE",
		"db.max_open":          "AWAAZ_DB_MAX_OPEN",
		"db.max_idle":          "AWAAZ_DB_MAX_IDLE",
		"jwt.secret":           "AWAAZ_JWT_SECRET",
		"jwt.access_expiry":    "AWAAZ_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "AWAAZ_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "AWAAZ_JWT_ISSUER",
		"s3.region":            "AWAAZ_S3_REGION",
		"s3.bucket":            "AWAAZ_S3_BUCKET",
		"s3.endpoint":          "AWAAZ_S3_ENDPOINT",
		"s3.access_key":        "AWAAZ_S3_ACCESS_KEY",
		"s3.secret_key":        "AWAAZ_S3_SECRET_KEY",
		"s3.max_file_size_mb":  "AWAAZ_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":    "AWAAZ_S3_PRESIGN_EXPIRY",
		"otp.provider":         "AWAAZ_OTP_PROVIDER",
		"otp.region":           "AWAAZ_OTP_REGION",
		"otp.from_address":     "AWAAZ_OTP_FROM_ADDRESS",
		"otp.from_name":        "AWAAZ_OTP_FROM_NAME",
		"otp.code_length":      "AWAAZ_OTP_CODE_LENGTH",
		"otp.expiry":           "AWAAZ_OTP_EXPIRY",
		"otp.max_attempts":     "AWAAZ_OTP_MAX_ATTEMPTS",
		"draft.max_age":        "AWAAZ_DRAFT_MAX_AGE",
		"log.level":            "AWAAZ_LOG_LEVEL",
		"log.format":           "AWAAZ_LOG_FORMAT",
		"cors.allowed_origins": "AWAAZ_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if AWAAZ_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("AWAAZ_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.OTP = OTPConfig{
		Provider:    v.GetString("otp.provider"),
		Region:      v.GetString("otp.region"),
		FromAddress: v.GetString("otp.from_address"),
		FromName:    v.GetString("otp.from_name"),
		CodeLength:  v.GetInt("otp.code_length"),
		Expiry:      v.GetDuration("otp.expiry"),
		MaxAttempts: v.GetInt("otp.max_attempts"),
	}
	cfg.Draft = DraftConfig{
		MaxAge: v.GetDuration("draft.max_age"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
