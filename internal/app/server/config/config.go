package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultRunAddress      = ":3000"
	defaultDriver          = "memory"
	defaultMigrations      = "migrations/postgres"
	defaultMongoURI        = "mongodb://localhost:27017"
	defaultMongoDatabase   = "clipboard"
	defaultSQLitePath      = "clipshare.db"
	defaultPasscode        = "admin123"
	defaultAdminToken      = "admin123"
	defaultAuditTimeout    = 5 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Auth   Auth
	Audit  Audit
}

type DB struct {
	Driver        string `env:"STORAGE_DRIVER"`
	DatabaseURI   string `env:"DATABASE_URI"`
	Migrations    string `env:"MIGRATIONS_PATH"`
	MongoURI      string `env:"MONGODB_URI"`
	MongoDatabase string `env:"MONGODB_DATABASE"`
	SQLitePath    string `env:"SQLITE_PATH"`
}

type Server struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	CORSOrigins     []string      `env:"CORS_ALLOWED_ORIGINS"`
	MetricsEnabled  bool          `env:"METRICS_ENABLED"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Auth holds the two shared secrets of the service. PasscodeHash, when set,
// is a bcrypt hash and takes precedence over Passcode.
type Auth struct {
	Passcode     string `env:"DEFAULT_PASSCODE"`
	PasscodeHash string `env:"PASSCODE_HASH"`
	AdminToken   string `env:"ADMIN_TOKEN"`
}

type Audit struct {
	Timeout time.Duration `env:"AUDIT_TIMEOUT"`
}

// MustLoad reads .env (if any) and the environment, exiting on invalid values.
func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Load(viper.New())
	if err != nil {
		log.Fatalln(err)
	}
	return cfg
}

// Load builds the configuration from v, which is bound to the environment.
func Load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()

	v.SetDefault("app_env", EnvProd)
	v.SetDefault("run_address", defaultRunAddress)
	v.SetDefault("storage_driver", defaultDriver)
	v.SetDefault("migrations_path", defaultMigrations)
	v.SetDefault("mongodb_uri", defaultMongoURI)
	v.SetDefault("mongodb_database", defaultMongoDatabase)
	v.SetDefault("sqlite_path", defaultSQLitePath)
	v.SetDefault("default_passcode", defaultPasscode)
	v.SetDefault("admin_token", defaultAdminToken)
	v.SetDefault("audit_timeout", defaultAuditTimeout)
	v.SetDefault("shutdown_timeout", defaultShutdownTimeout)
	v.SetDefault("metrics_enabled", true)

	cfg := Config{
		Env: v.GetString("app_env"),
		DB: DB{
			Driver:        strings.ToLower(v.GetString("storage_driver")),
			DatabaseURI:   v.GetString("database_uri"),
			Migrations:    v.GetString("migrations_path"),
			MongoURI:      v.GetString("mongodb_uri"),
			MongoDatabase: v.GetString("mongodb_database"),
			SQLitePath:    v.GetString("sqlite_path"),
		},
		Server: Server{
			RunAddress:      v.GetString("run_address"),
			CORSOrigins:     splitList(v.GetString("cors_allowed_origins")),
			MetricsEnabled:  v.GetBool("metrics_enabled"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Auth: Auth{
			Passcode:     v.GetString("default_passcode"),
			PasscodeHash: v.GetString("passcode_hash"),
			AdminToken:   v.GetString("admin_token"),
		},
		Audit: Audit{
			Timeout: v.GetDuration("audit_timeout"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("config: unknown APP_ENV %q", c.Env)
	}

	switch c.DB.Driver {
	case "memory", "sqlite", "mongo":
	case "postgres":
		if c.DB.DatabaseURI == "" {
			return fmt.Errorf("config: DATABASE_URI is required for the postgres driver")
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.DB.Driver)
	}

	if c.Auth.AdminToken == "" {
		return fmt.Errorf("config: ADMIN_TOKEN must not be empty")
	}
	if c.Audit.Timeout <= 0 {
		return fmt.Errorf("config: AUDIT_TIMEOUT must be positive")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
