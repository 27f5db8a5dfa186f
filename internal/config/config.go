// Package config loads photofeed settings from TOML and PHOTOFEED_ env vars.
//
// The built-in accounts use the @123.com domain. The richer demo profiles in
// package content belong to @gmail.com accounts, so trying them needs a
// config such as:
//
//	[auth]
//	domain_suffix = "@gmail.com"
//
//	[[auth.users]]
//	identifier = "anwar@gmail.com"
//	secret = "1234"
//
//	[[auth.users]]
//	identifier = "hashir@gmail.com"
//	secret = "5678"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/photofeed/internal/auth"
)

// Config holds application configuration.
type Config struct {
	Auth     AuthConfig     `mapstructure:"auth"`
	Content  ContentConfig  `mapstructure:"content"`
	Location LocationConfig `mapstructure:"location"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`
}

// AuthConfig holds the sign-in allow-list. Secrets are plain text.
type AuthConfig struct {
	Users        []UserConfig `mapstructure:"users"`
	DomainSuffix string       `mapstructure:"domain_suffix"`
}

type UserConfig struct {
	Identifier string `mapstructure:"identifier"`
	Secret     string `mapstructure:"secret"`
}

// ContentConfig sizes the generated mock feed. A zero seed means time-based.
type ContentConfig struct {
	Images int   `mapstructure:"images"`
	Videos int   `mapstructure:"videos"`
	Seed   int64 `mapstructure:"seed"`
}

// LocationConfig drives the static locator used by the home map.
type LocationConfig struct {
	Latitude  float64       `mapstructure:"latitude"`
	Longitude float64       `mapstructure:"longitude"`
	Accuracy  float64       `mapstructure:"accuracy"`
	Denied    bool          `mapstructure:"denied"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// LogConfig holds logger settings. An empty path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
}

// Load reads configuration from file and env. The file is $PHOTOFEED_CONFIG
// or ~/.config/photofeed/config.toml. Env var overrides use prefix PHOTOFEED_.
func Load() (Config, error) {
	return LoadFile(os.Getenv("PHOTOFEED_CONFIG"))
}

// LoadFile is Load with an explicit config file. An empty path falls back to
// the default location; a missing default file is not an error.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "photofeed"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PHOTOFEED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	users := make([]map[string]any, 0, 3)
	for _, c := range auth.DefaultCredentials() {
		users = append(users, map[string]any{"identifier": c.Identifier, "secret": c.Secret})
	}
	v.SetDefault("auth.users", users)
	v.SetDefault("auth.domain_suffix", "@123.com")
	v.SetDefault("content.images", 50)
	v.SetDefault("content.videos", 10)
	v.SetDefault("content.seed", 0)
	v.SetDefault("location.latitude", 37.78825)
	v.SetDefault("location.longitude", -122.4324)
	v.SetDefault("location.accuracy", 35.0)
	v.SetDefault("location.denied", false)
	v.SetDefault("location.timeout", "5s")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "photofeed", "photofeed.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.date_format", "Jan 2")
}

// AllowList builds the immutable credential allow-list from the auth section.
func (c Config) AllowList() (auth.AllowList, error) {
	creds := make([]auth.Credential, 0, len(c.Auth.Users))
	for _, u := range c.Auth.Users {
		creds = append(creds, auth.Credential{Identifier: strings.TrimSpace(u.Identifier), Secret: u.Secret})
	}
	allow, err := auth.NewAllowList(creds)
	if err != nil {
		return auth.AllowList{}, fmt.Errorf("auth.users: %w", err)
	}
	return allow, nil
}
