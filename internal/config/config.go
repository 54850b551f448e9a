package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

type Config struct {
	Database DatabaseConfig
	Storage  StorageConfig
	JWT      JWTConfig
	App      AppConfig
	Seed     SeedConfig
	Jobs     JobsConfig
	Payroll  payroll.Rates
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// StorageConfig selects the record-store backend.
type StorageConfig struct {
	Driver     string
	SQLitePath string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration time.Duration
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	Version        string
	AllowedOrigins []string
}

// JobsConfig holds background job settings. A zero interval disables a job.
type JobsConfig struct {
	DocumentExpiryInterval time.Duration
	DocumentExpiryDays     int
}

// SeedConfig holds the initial passwords of the built-in accounts.
type SeedConfig struct {
	CreatorPassword string
	AdminPassword   string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "shiftsync"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.Storage = StorageConfig{
		Driver:     strings.ToLower(getEnv("STORAGE_DRIVER", StorageSQLite)),
		SQLitePath: getEnv("SQLITE_PATH", "shiftsync.db"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Version:        getEnv("APP_VERSION", "dev"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}

	// JWT configuration
	accessExpiration, err := time.ParseDuration(getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: accessExpiration,
	}

	config.Seed = SeedConfig{
		CreatorPassword: getEnv("SEED_CREATOR_PASSWORD", ""),
		AdminPassword:   getEnv("SEED_ADMIN_PASSWORD", ""),
	}

	expiryInterval, err := time.ParseDuration(getEnv("DOCUMENT_EXPIRY_CHECK_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid DOCUMENT_EXPIRY_CHECK_INTERVAL: %w", err)
	}
	expiryDays, err := strconv.Atoi(getEnv("DOCUMENT_EXPIRY_WITHIN_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid DOCUMENT_EXPIRY_WITHIN_DAYS: %w", err)
	}
	config.Jobs = JobsConfig{
		DocumentExpiryInterval: expiryInterval,
		DocumentExpiryDays:     expiryDays,
	}

	config.Payroll = payroll.DefaultRates()
	if path := getEnv("PAYROLL_RATES_FILE", ""); path != "" {
		config.Payroll, err = LoadRates(path, config.Payroll)
		if err != nil {
			return nil, err
		}
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageSQLite, StoragePostgres:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of %s, %s, %s", StorageMemory, StorageSQLite, StoragePostgres)
	}
	if c.Storage.Driver == StoragePostgres && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Storage.Driver == StorageSQLite && c.Storage.SQLitePath == "" {
		return fmt.Errorf("SQLITE_PATH is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.JWT.AccessExpiration <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME must be positive")
	}
	if c.Jobs.DocumentExpiryDays < 0 {
		return fmt.Errorf("DOCUMENT_EXPIRY_WITHIN_DAYS must not be negative")
	}
	if c.Payroll.ProrationDivisor <= 0 {
		return fmt.Errorf("proration_divisor must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ratesFile mirrors the YAML layout of PAYROLL_RATES_FILE. Omitted keys keep
// their defaults.
type ratesFile struct {
	OvertimeHourlyRate *string `yaml:"overtime_hourly_rate"`
	HolidayBonus       *string `yaml:"holiday_bonus"`
	WeekOffHourlyRate  *string `yaml:"week_off_hourly_rate"`
	WeekOffDay         *string `yaml:"week_off_day"`
	ProrationDivisor   *int    `yaml:"proration_divisor"`
}

// LoadRates reads a YAML rates file and applies it on top of base.
func LoadRates(path string, base payroll.Rates) (payroll.Rates, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read rates file: %w", err)
	}
	return ParseRates(raw, base)
}

func ParseRates(raw []byte, base payroll.Rates) (payroll.Rates, error) {
	var file ratesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return base, fmt.Errorf("failed to parse rates file: %w", err)
	}

	rates := base
	amounts := []struct {
		name  string
		value *string
		dst   *decimal.Decimal
	}{
		{"overtime_hourly_rate", file.OvertimeHourlyRate, &rates.OvertimeHourlyRate},
		{"holiday_bonus", file.HolidayBonus, &rates.HolidayBonus},
		{"week_off_hourly_rate", file.WeekOffHourlyRate, &rates.WeekOffHourlyRate},
	}
	for _, a := range amounts {
		if a.value == nil {
			continue
		}
		d, err := decimal.NewFromString(strings.TrimSpace(*a.value))
		if err != nil || d.IsNegative() {
			return base, fmt.Errorf("invalid %s: %q", a.name, *a.value)
		}
		*a.dst = d
	}

	if file.WeekOffDay != nil {
		day, ok := parseWeekday(*file.WeekOffDay)
		if !ok {
			return base, fmt.Errorf("invalid week_off_day: %q", *file.WeekOffDay)
		}
		rates.WeekOffDay = day
	}
	if file.ProrationDivisor != nil {
		if *file.ProrationDivisor <= 0 {
			return base, fmt.Errorf("invalid proration_divisor: %d", *file.ProrationDivisor)
		}
		rates.ProrationDivisor = *file.ProrationDivisor
	}
	return rates, nil
}

func parseWeekday(s string) (time.Weekday, bool) {
	s = strings.TrimSpace(s)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), s) || strings.EqualFold(d.String()[:3], s) {
			return d, true
		}
	}
	return 0, false
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
