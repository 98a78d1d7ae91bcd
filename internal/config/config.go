package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds every setting of the inventory menu.
type Config struct {
	Color        bool      `mapstructure:"color"`
	ClearScreen  bool      `mapstructure:"clear_screen"`
	Pause        bool      `mapstructure:"pause"`
	MinProductID int       `mapstructure:"min_product_id"`
	Log          LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	File   string `mapstructure:"file"`
	Format string `mapstructure:"format"`
}

const envPrefix = "INVENTORY"

// Load reads defaults, then the config file, then INVENTORY_* environment
// variables, then overrides. An empty path searches for inventory.{yaml,toml,json}
// in the working directory and $HOME/.inventory; not finding one is fine.
func Load(path string, overrides map[string]any) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("inventory")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join("$HOME", ".inventory"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("color", true)
	v.SetDefault("clear_screen", false)
	v.SetDefault("pause", true)
	v.SetDefault("min_product_id", 1)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetDefault("log.format", "text")
}

// Validate rejects settings the menu cannot run with.
func (c Config) Validate() error {
	if c.MinProductID < 0 {
		return fmt.Errorf("min_product_id must be zero or positive, got %d", c.MinProductID)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
