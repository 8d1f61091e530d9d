package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DirectoryModePostgres = "postgres"
	DirectoryModeMemory   = "memory"

	defaultHTTPPort             = "8080"
	defaultDirectoryRefreshSpec = "0 */5 * * * *"
	defaultDirectoryLatency     = 500 * time.Millisecond
)

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	DirectoryMode        string
	DirectoryLatency     time.Duration
	DirectorySeedFile    string
	DirectoryRefreshSpec string
	LogLevel             string
	LogFormat            string
}

// LoadConfig reads the environment after merging envFile into it. A missing
// envFile is not an error; variables already set in the environment win.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	latency, err := durationVariable("DIRECTORY_LATENCY", defaultDirectoryLatency)
	if err != nil {
		return Config{}, err
	}

	config := Config{
		HTTPPort:             stringVariable("HTTP_PORT", defaultHTTPPort),
		DBHost:               os.Getenv("DB_HOST"),
		DBPort:               os.Getenv("DB_PORT"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            stringVariable("DB_SSLMODE", "disable"),
		DirectoryMode:        strings.ToLower(stringVariable("DIRECTORY_MODE", DirectoryModePostgres)),
		DirectoryLatency:     latency,
		DirectorySeedFile:    os.Getenv("DIRECTORY_SEED_FILE"),
		DirectoryRefreshSpec: stringVariable("DIRECTORY_REFRESH_SPEC", defaultDirectoryRefreshSpec),
		LogLevel:             stringVariable("LOG_LEVEL", "info"),
		LogFormat:            stringVariable("LOG_FORMAT", "text"),
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	var problems []error

	switch c.DirectoryMode {
	case DirectoryModePostgres:
		if c.DBHost == "" || c.DBName == "" {
			problems = append(problems, errors.New("DB_HOST and DB_NAME are required in postgres directory mode"))
		}
	case DirectoryModeMemory:
	default:
		problems = append(problems, fmt.Errorf("DIRECTORY_MODE must be %q or %q, got %q",
			DirectoryModePostgres, DirectoryModeMemory, c.DirectoryMode))
	}

	if c.DirectoryLatency < 0 {
		problems = append(problems, errors.New("DIRECTORY_LATENCY must not be negative"))
	}

	return errors.Join(problems...)
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func stringVariable(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationVariable(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
