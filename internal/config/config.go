package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr            string
	Env             string
	LogLevel        string
	CORSOrigins     string
	MetricsEnabled  bool
	SeedFile        string
	ShutdownTimeout time.Duration
}

// Load reads a local .env file when present, then HBNB_* environment
// variables. HBNB_CONFIG_FILE may point at a yaml/json/toml file with the same keys;
// a file that cannot be read or parsed is an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("HBNB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("seed_file", "")
	v.SetDefault("shutdown_timeout", 10*time.Second)

	if p := v.GetString("config_file"); p != "" {
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", p, err)
		}
	}

	timeout := v.GetDuration("shutdown_timeout")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return Config{
		Addr:            v.GetString("addr"),
		Env:             v.GetString("env"),
		LogLevel:        v.GetString("log_level"),
		CORSOrigins:     v.GetString("cors_origins"),
		MetricsEnabled:  v.GetBool("metrics_enabled"),
		SeedFile:        v.GetString("seed_file"),
		ShutdownTimeout: timeout,
	}, nil
}
