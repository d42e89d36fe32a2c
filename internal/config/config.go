package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig      `mapstructure:"server"`
	Log       LogConfig         `mapstructure:"log"`
	Discovery DiscoveryConfig   `mapstructure:"discovery"`
	Redis     RedisConfig       `mapstructure:"redis"`
	Menu      MenuConfig        `mapstructure:"menu"`
	Apps      map[string]string `mapstructure:"apps"` // Application id -> base URL
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            int    `mapstructure:"port"`
	Host            string `mapstructure:"host"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DiscoveryConfig holds discovery service configuration
type DiscoveryConfig struct {
	Enabled              bool   `mapstructure:"enabled"`
	MenuURL              string `mapstructure:"menu_url"`
	MenuGroup            string `mapstructure:"menu_group"`
	FallbackGroup        string `mapstructure:"fallback_group"`
	AuthCookieName       string `mapstructure:"auth_cookie_name"`
	Credentials          string `mapstructure:"credentials"`
	Origin               string `mapstructure:"origin"`
	IfMatch              string `mapstructure:"if_match"`
	Timeout              int    `mapstructure:"timeout"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
	Proxy                string `mapstructure:"proxy"`

	// Service token used by the background refresher
	ServiceToken    string `mapstructure:"service_token"`
	RefreshInterval int    `mapstructure:"refresh_interval"`
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Password    string `mapstructure:"password"`
	Database    int    `mapstructure:"database"`
	SnapshotTTL int    `mapstructure:"snapshot_ttl"`
}

// MenuConfig holds activation defaults
type MenuConfig struct {
	HomePath     string            `mapstructure:"home_path"`
	DefaultOpen  map[string]string `mapstructure:"default_open"`
	KeepSections []string          `mapstructure:"keep_sections"`
}

// Load loads configuration from YAML file with environment variable overrides
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.SetEnvPrefix("navmenu")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("config.yaml file not found in %s", strings.Join(paths, ", "))
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "")
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.shutdown_timeout", 5)

	v.SetDefault("log.level", "info")

	v.SetDefault("discovery.enabled", false)
	v.SetDefault("discovery.menu_url", "https://discovery.trf.is/v1/menus")
	v.SetDefault("discovery.menu_group", "default")
	v.SetDefault("discovery.fallback_group", "default")
	v.SetDefault("discovery.auth_cookie_name", "trf_access_token")
	v.SetDefault("discovery.credentials", "include")
	v.SetDefault("discovery.timeout", 10)
	v.SetDefault("discovery.max_requests_per_second", 20)
	v.SetDefault("discovery.refresh_interval", 300)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.snapshot_ttl", 86400)

	v.SetDefault("menu.home_path", "/app")
	v.SetDefault("menu.keep_sections", []string{"org"})
}
