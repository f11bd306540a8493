package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "localhost:3000"
	defaultEnv           = "prod"
	defaultTimeout       = 30 * time.Second
	defaultConfigDir     = ".clipshare"
)

type Config struct {
	Env           string        `mapstructure:"app_env"`
	ServerAddress string        `mapstructure:"server_address"`
	EnableTLS     bool          `mapstructure:"enable_tls"`
	AdminToken    string        `mapstructure:"admin_token"`
	Passcode      string        `mapstructure:"passcode"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// MustLoad загружает конфигурацию клиента из .env, окружения и v.
func MustLoad(v *viper.Viper) *Config {
	envPath := ".env"
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "Ошибка загрузки .env файла: %v\n", err)
		}
	}

	cfg, err := Load(v)
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load reads the client settings. Values already set on v (config file,
// bound flags) win over the environment.
func Load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	v.SetDefault("ENABLE_TLS", false)
	v.SetDefault("TIMEOUT", defaultTimeout)

	cfg := &Config{
		Env:           v.GetString("APP_ENV"),
		ServerAddress: v.GetString("SERVER_ADDRESS"),
		EnableTLS:     v.GetBool("ENABLE_TLS"),
		AdminToken:    v.GetString("ADMIN_TOKEN"),
		Passcode:      v.GetString("PASSCODE"),
		Timeout:       v.GetDuration("TIMEOUT"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Dir returns the directory searched for config.yaml.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultConfigDir
	}
	return filepath.Join(home, defaultConfigDir)
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address не может быть пустым")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout должен быть положительным")
	}
	return nil
}

// BaseURL returns the server root with the scheme chosen by EnableTLS.
func (c *Config) BaseURL() string {
	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + c.ServerAddress
}
