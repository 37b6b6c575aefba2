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
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Import ImportConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
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

// S3Config holds settings for the bucket that archives uploaded workbooks.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ImportConfig holds spreadsheet import settings.
type ImportConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
	// ArchiveUploads stores every previewed workbook in S3 under ArchivePrefix.
	ArchiveUploads bool   `mapstructure:"archive_uploads"`
	ArchivePrefix  string `mapstructure:"archive_prefix"`
}

// MaxFileSizeBytes converts the configured limit; zero or less disables it.
func (c ImportConfig) MaxFileSizeBytes() int64 {
	if c.MaxFileSizeMB <= 0 {
		return 0
	}
	return c.MaxFileSizeMB << 20
}

// Load reads configuration from environment variables with the TALENTSYNC_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TALENTSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "talentsync")
	v.SetDefault("db.password", "talentsync_secret")
	v.SetDefault("db.name", "talentsync_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "talentsync-imports")
	v.SetDefault("s3.endpoint", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173")

	// Import defaults
	v.SetDefault("import.max_file_size_mb", 10)
	v.SetDefault("import.archive_uploads", false)
	v.SetDefault("import.archive_prefix", "imports/employees")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "TALENTSYNC_SERVER_PORT",
		"server.read_timeout":     "TALENTSYNC_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "TALENTSYNC_SERVER_WRITE_TIMEOUT",
		"server.environment":      "TALENTSYNC_SERVER_ENVIRONMENT",
		"db.host":                 "TALENTSYNC_DB_HOST",
		"db.port":                 "TALENTSYNC_DB_PORT",
		"db.user":                 "TALENTSYNC_DB_USER",
		"db.password":             "TALENTSYNC_DB_PASSWORD",
		"db.name":                 "TALENTSYNC_DB_NAME",
		"db.sslmode":              "TALENTSYNC_DB_SSLMODE",
		"db.max_open":             "TALENTSYNC_DB_MAX_OPEN",
		"db.max_idle":             "TALENTSYNC_DB_MAX_IDLE",
		"s3.region":               "TALENTSYNC_S3_REGION",
		"s3.bucket":               "TALENTSYNC_S3_BUCKET",
		"s3.endpoint":             "TALENTSYNC_S3_ENDPOINT",
		"s3.access_key":           "TALENTSYNC_S3_ACCESS_KEY",
		"s3.secret_key":           "TALENTSYNC_S3_SECRET_KEY",
		"log.level":               "TALENTSYNC_LOG_LEVEL",
		"log.format":              "TALENTSYNC_LOG_FORMAT",
		"cors.allowed_origins":    "TALENTSYNC_CORS_ALLOWED_ORIGINS",
		"import.max_file_size_mb": "TALENTSYNC_IMPORT_MAX_FILE_SIZE_MB",
		"import.archive_uploads":  "TALENTSYNC_IMPORT_ARCHIVE_UPLOADS",
		"import.archive_prefix":   "TALENTSYNC_IMPORT_ARCHIVE_PREFIX",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if TALENTSYNC_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TALENTSYNC_SERVER_PORT") == "" {
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
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
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
	cfg.Import = ImportConfig{
		MaxFileSizeMB:  v.GetInt64("import.max_file_size_mb"),
		ArchiveUploads: v.GetBool("import.archive_uploads"),
		ArchivePrefix:  strings.Trim(v.GetString("import.archive_prefix"), "/"),
	}

	if cfg.Import.ArchiveUploads && cfg.S3.Bucket == "" {
		return nil, fmt.Errorf("import.archive_uploads requires s3.bucket")
	}

	return cfg, nil
}
