package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Engine EngineConfig `mapstructure:"engine"`
}

type ServerConfig struct {
	Addr        string `mapstructure:"addr"`
	FrontendDir string `mapstructure:"frontend_dir"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RedisConfig enables the Redis catalog store when Addr is set. An empty
// Addr keeps overrides in memory.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type EngineConfig struct {
	DefaultPriceCt float64 `mapstructure:"default_price_ct"`
}

// Load reads config.yaml from the working directory or ./config. A missing
// file is not an error. Environment variables prefixed HEATPUMP_CHECK_
// override file values, e.g. HEATPUMP_CHECK_SERVER_ADDR.
func Load() (*Config, error) {
	return load(viper.New(), "")
}

// LoadFile reads an explicit config file.
func LoadFile(path string) (*Config, error) {
	return load(viper.New(), path)
}

func load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.frontend_dir", "frontend/build")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "720h")
	v.SetDefault("engine.default_price_ct", 30.0)

	v.SetEnvPrefix("heatpump_check")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if config.Engine.DefaultPriceCt <= 0 {
		return nil, fmt.Errorf("engine.default_price_ct must be positive, got %v", config.Engine.DefaultPriceCt)
	}
	return &config, nil
}
