package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DBDriver    string   `yaml:"db_driver"`
	DBHost      string   `yaml:"db_host"`
	DBPort      string   `yaml:"db_port"`
	DBUser      string   `yaml:"db_user"`
	DBPassword  string   `yaml:"db_password"`
	DBName      string   `yaml:"db_name"`
	SQLitePath  string   `yaml:"sqlite_path"`
	ServerPort  string   `yaml:"server_port"`
	LogLevel    string   `yaml:"log_level"`
	LogFormat   string   `yaml:"log_format"`
	CORSOrigins []string `yaml:"cors_origins"`
}

func defaults() Config {
	return Config{
		DBDriver:    DriverPostgres,
		DBHost:      "localhost",
		DBPort:      "5432",
		DBUser:      "postgres",
		DBPassword:  "postgres",
		DBName:      "quizbank",
		SQLitePath:  "quizbank.db",
		ServerPort:  "8080",
		LogLevel:    "info",
		LogFormat:   "text",
		CORSOrigins: []string{"*"},
	}
}

// Load builds the configuration from defaults, an optional YAML file named by
// CONFIG_FILE, and environment variables, in that order of precedence.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	cfg.DBDriver = getEnv("DB_DRIVER", cfg.DBDriver)
	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	cfg.DBPort = getEnv("DB_PORT", cfg.DBPort)
	cfg.DBUser = getEnv("DB_USER", cfg.DBUser)
	cfg.DBPassword = getEnv("DB_PASSWORD", cfg.DBPassword)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.SQLitePath = getEnv("SQLITE_PATH", cfg.SQLitePath)
	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return errors.Errorf("unsupported db driver %q", c.DBDriver)
	}
	if c.ServerPort == "" {
		return errors.New("server port must not be empty")
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{"*"}
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config file")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "parse config file %s", path)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
