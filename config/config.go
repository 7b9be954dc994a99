package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig holds environment driven configuration values.
type AppConfig struct {
	AppPort        string
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	// Gin framework configuration
	GinMode string
	GinPath string
	// Database
	DatabaseURL     string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	DBConnLifetime  time.Duration
	DBSlowThreshold time.Duration
	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

// fileConfig mirrors config/config.yaml. Durations are Go duration strings.
type fileConfig struct {
	App struct {
		Port           string   `yaml:"port"`
		AllowedOrigins []string `yaml:"allowed_origins"`
		ReadTimeout    string   `yaml:"read_timeout"`
		WriteTimeout   string   `yaml:"write_timeout"`
	} `yaml:"app"`
	Gin struct {
		Mode    string `yaml:"mode"`
		LogPath string `yaml:"log_path"`
	} `yaml:"gin"`
	Database struct {
		URL           string `yaml:"url"`
		Host          string `yaml:"host"`
		Port          string `yaml:"port"`
		User          string `yaml:"user"`
		Password      string `yaml:"password"`
		Name          string `yaml:"name"`
		SSLMode       string `yaml:"sslmode"`
		MaxOpenConns  int    `yaml:"max_open_conns"`
		MaxIdleConns  int    `yaml:"max_idle_conns"`
		ConnLifetime  string `yaml:"conn_lifetime"`
		SlowThreshold string `yaml:"slow_threshold"`
	} `yaml:"database"`
	Log struct {
		Level      string `yaml:"level"`
		Path       string `yaml:"path"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"log"`
}

// DefaultPath is where the YAML file is looked up unless --config says otherwise.
var DefaultPath = filepath.Join("config", "config.yaml")

// LoadFrom builds a config with precedence: YAML file -> defaults -> environment overrides.
// A missing file is not an error.
func LoadFrom(path string) (AppConfig, error) {
	var c AppConfig
	if err := loadYAMLConfig(path, &c); err != nil {
		return c, err
	}
	applyDefaults(&c)
	if err := applyEnvOverrides(&c); err != nil {
		return c, err
	}
	return c, nil
}

// DSN returns the PostgreSQL connection string, preferring DatabaseURL.
func (c AppConfig) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func loadYAMLConfig(path string, out *AppConfig) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	out.AppPort = fc.App.Port
	out.AllowedOrigins = fc.App.AllowedOrigins
	out.GinMode = fc.Gin.Mode
	out.GinPath = fc.Gin.LogPath

	out.DatabaseURL = fc.Database.URL
	out.DBHost = fc.Database.Host
	out.DBPort = fc.Database.Port
	out.DBUser = fc.Database.User
	out.DBPassword = fc.Database.Password
	out.DBName = fc.Database.Name
	out.DBSSLMode = fc.Database.SSLMode
	out.DBMaxOpenConns = fc.Database.MaxOpenConns
	out.DBMaxIdleConns = fc.Database.MaxIdleConns

	out.LogLevel = fc.Log.Level
	out.LogPath = fc.Log.Path
	out.LogMaxSizeMB = fc.Log.MaxSizeMB
	out.LogMaxBackups = fc.Log.MaxBackups
	out.LogMaxAgeDays = fc.Log.MaxAgeDays
	out.LogCompress = fc.Log.Compress

	durations := []struct {
		raw string
		dst *time.Duration
	}{
		{fc.App.ReadTimeout, &out.ReadTimeout},
		{fc.App.WriteTimeout, &out.WriteTimeout},
		{fc.Database.ConnLifetime, &out.DBConnLifetime},
		{fc.Database.SlowThreshold, &out.DBSlowThreshold},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		*d.dst = v
	}
	return nil
}

// applyDefaults sets sane defaults for zero-value fields.
func applyDefaults(c *AppConfig) {
	if c.AppPort == "" {
		c.AppPort = "9090"
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 60 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = c.ReadTimeout
	}
	if c.GinMode == "" {
		c.GinMode = "release"
	}
	if c.DBHost == "" {
		c.DBHost = "127.0.0.1"
	}
	if c.DBPort == "" {
		c.DBPort = "5432"
	}
	if c.DBUser == "" {
		c.DBUser = "postgres"
	}
	if c.DBName == "" {
		c.DBName = "nc_news"
	}
	if c.DBSSLMode == "" {
		c.DBSSLMode = "disable"
	}
	if c.DBMaxOpenConns == 0 {
		c.DBMaxOpenConns = 20
	}
	if c.DBMaxIdleConns == 0 {
		c.DBMaxIdleConns = 5
	}
	if c.DBConnLifetime == 0 {
		c.DBConnLifetime = 30 * time.Minute
	}
	if c.DBSlowThreshold == 0 {
		c.DBSlowThreshold = 2 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogMaxSizeMB == 0 {
		c.LogMaxSizeMB = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 3
	}
	if c.LogMaxAgeDays == 0 {
		c.LogMaxAgeDays = 7
	}
}

// applyEnvOverrides maps known environment variables onto config values when present.
func applyEnvOverrides(c *AppConfig) error {
	if v := getEnv("APP_PORT", ""); v != "" {
		c.AppPort = v
	}
	if v := getEnv("PORT", ""); v != "" {
		c.AppPort = v
	}
	if v := getEnv("CORS_ALLOWED_ORIGINS", ""); v != "" {
		c.AllowedOrigins = splitAndTrim(v)
	}
	if v := getEnv("GIN_MODE", ""); v != "" {
		c.GinMode = v
	}
	if v := getEnv("GIN_PATH", ""); v != "" {
		c.GinPath = v
	}
	if v := getEnv("DATABASE_URL", ""); v != "" {
		c.DatabaseURL = v
	}
	if v := getEnv("DB_HOST", getEnv("PGHOST", "")); v != "" {
		c.DBHost = v
	}
	if v := getEnv("DB_PORT", getEnv("PGPORT", "")); v != "" {
		c.DBPort = v
	}
	if v := getEnv("DB_USER", getEnv("PGUSER", "")); v != "" {
		c.DBUser = v
	}
	if v := getEnv("DB_PASSWORD", getEnv("PGPASSWORD", "")); v != "" {
		c.DBPassword = v
	}
	if v := getEnv("DB_NAME", getEnv("PGDATABASE", "")); v != "" {
		c.DBName = v
	}
	if v := getEnv("DB_SSLMODE", ""); v != "" {
		c.DBSSLMode = v
	}
	if v := getEnv("LOG_LEVEL", ""); v != "" {
		c.LogLevel = v
	}
	if v := getEnv("LOG_PATH", ""); v != "" {
		c.LogPath = v
	}
	if v := getEnv("LOG_COMPRESS", ""); v != "" {
		c.LogCompress = v == "true"
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"DB_MAX_OPEN_CONNS", &c.DBMaxOpenConns},
		{"DB_MAX_IDLE_CONNS", &c.DBMaxIdleConns},
		{"LOG_MAX_SIZE_MB", &c.LogMaxSizeMB},
		{"LOG_MAX_BACKUPS", &c.LogMaxBackups},
		{"LOG_MAX_AGE_DAYS", &c.LogMaxAgeDays},
	}
	for _, it := range ints {
		v := getEnv(it.key, "")
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %w", it.key, err)
		}
		*it.dst = n
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func splitAndTrim(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
