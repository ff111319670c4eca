package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const DefaultFileName = "config.yaml"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const DefaultPort = 5432

// Environment variable that overrides the assembled PostgreSQL connection string
const CONN_STRING_ENV_VAR = "DB_CONN_STRING"

// Connection settings of the destination database.
// The yaml keys are also the names of the environment variables overriding them.
type Database struct {
	Driver   string `yaml:"DB_DRIVER"`
	Host     string `yaml:"DB_HOST"`
	Port     int    `yaml:"DB_PORT"`
	Username string `yaml:"DB_USERNAME"`
	Password string `yaml:"DB_PASSWORD"`
	Database string `yaml:"DB_DATABASE"`

	// Full connection string, takes precedence over the fields above
	ConnString string `yaml:"-"`
}

// Reads the YAML config file at path.
// Returns ErrConfigNotFound if the file does not exist.
func Load(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("could not read configuration file: %w", err)
	}

	var cfg Database
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error in configuration file: %w", err)
	}
	return &cfg, nil
}

// Builds the database configuration from the config file at path, the `.env` file
// in the working directory, and the environment, in increasing order of precedence.
// A missing config file or `.env` is not an error, missing settings are.
func Resolve(path string) (*Database, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env: %w", err)
	}

	cfg, err := Load(path)
	if errors.Is(err, ErrConfigNotFound) {
		cfg = &Database{}
	} else if err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Database) applyEnv() error {
	override := func(key string, dest *string) {
		if value, ok := os.LookupEnv(key); ok {
			*dest = strings.TrimSpace(value)
		}
	}

	override("DB_DRIVER", &cfg.Driver)
	override("DB_HOST", &cfg.Host)
	override("DB_USERNAME", &cfg.Username)
	override("DB_PASSWORD", &cfg.Password)
	override("DB_DATABASE", &cfg.Database)
	override(CONN_STRING_ENV_VAR, &cfg.ConnString)

	if value, ok := os.LookupEnv("DB_PORT"); ok {
		port, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid DB_PORT %q: %w", value, err)
		}
		cfg.Port = port
	}
	return nil
}

func (cfg *Database) setDefaults() {
	if cfg.Driver == "" {
		cfg.Driver = DriverPostgres
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
}

// Checks that all the settings needed by the driver are present
func (cfg *Database) Validate() error {
	switch cfg.Driver {
	case DriverPostgres:
		if cfg.ConnString != "" {
			return nil
		}

		var missing []string
		if cfg.Host == "" {
			missing = append(missing, "DB_HOST")
		}
		if cfg.Username == "" {
			missing = append(missing, "DB_USERNAME")
		}
		if cfg.Database == "" {
			missing = append(missing, "DB_DATABASE")
		}
		if len(missing) > 0 {
			return fmt.Errorf("missing configuration keys: %s", strings.Join(missing, ", "))
		}

		if cfg.Port <= 0 || cfg.Port > 65535 {
			return fmt.Errorf("invalid DB_PORT %d", cfg.Port)
		}
	case DriverSQLite:
		if cfg.Database == "" {
			return errors.New("missing configuration key: DB_DATABASE")
		}
	default:
		return fmt.Errorf("invalid DB_DRIVER %q (allowed: %s, %s)", cfg.Driver, DriverPostgres, DriverSQLite)
	}
	return nil
}

// Returns the connection string for the configured driver.
// For SQLite this is the database file path.
func (cfg *Database) DSN() string {
	if cfg.Driver == DriverSQLite {
		return cfg.Database
	}

	if cfg.ConnString != "" {
		return cfg.ConnString
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.Username, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + cfg.Database,
	}
	return u.String()
}

// Connection description without credentials, safe for logging
func (cfg *Database) String() string {
	if cfg.Driver == DriverSQLite {
		return "sqlite:" + cfg.Database
	}
	if cfg.ConnString != "" {
		return "postgres (" + CONN_STRING_ENV_VAR + ")"
	}
	return fmt.Sprintf("%s@%s:%d/%s", cfg.Username, cfg.Host, cfg.Port, cfg.Database)
}
