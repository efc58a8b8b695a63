// Package config loads pixtopdf settings from defaults, an optional YAML
// file and PIXTOPDF_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/youruser/pixtopdf/internal/deliver"
	imagepkg "github.com/youruser/pixtopdf/internal/image"
	"github.com/youruser/pixtopdf/internal/naming"
)

const (
	EnvPrefix  = "PIXTOPDF"
	ConfigName = "pixtopdf"
)

// ImageConfig bounds the normalized images.
type ImageConfig struct {
	MaxWidth  int `mapstructure:"max_width" yaml:"max_width"`
	MaxHeight int `mapstructure:"max_height" yaml:"max_height"`
}

// NotesConfig controls the notes page.
type NotesConfig struct {
	// QR stamps a QR code of the notes text on the notes page.
	QR bool `mapstructure:"qr" yaml:"qr"`
}

// DeliveryConfig selects how documents reach the user.
type DeliveryConfig struct {
	// Mode is auto, share or download.
	Mode         string   `mapstructure:"mode" yaml:"mode"`
	OutputDir    string   `mapstructure:"output_dir" yaml:"output_dir"`
	ShareCommand []string `mapstructure:"share_command" yaml:"share_command"`
}

// ServerConfig holds the HTTP surface settings.
type ServerConfig struct {
	Port        string `mapstructure:"port" yaml:"port"`
	MaxUploadMB int64  `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`
}

// FetchConfig applies to images given as URLs.
type FetchConfig struct {
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type Config struct {
	AppName  string         `mapstructure:"app_name" yaml:"app_name"`
	Workers  int            `mapstructure:"workers" yaml:"workers"`
	Image    ImageConfig    `mapstructure:"image" yaml:"image"`
	Notes    NotesConfig    `mapstructure:"notes" yaml:"notes"`
	Delivery DeliveryConfig `mapstructure:"delivery" yaml:"delivery"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Fetch    FetchConfig    `mapstructure:"fetch" yaml:"fetch"`
}

// SetDefaults registers every key so env overrides work without a file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app_name", naming.DefaultAppName)
	v.SetDefault("workers", 0)
	v.SetDefault("image.max_width", imagepkg.DefaultMaxWidth)
	v.SetDefault("image.max_height", imagepkg.DefaultMaxHeight)
	v.SetDefault("notes.qr", false)
	v.SetDefault("delivery.mode", string(deliver.ModeAuto))
	v.SetDefault("delivery.output_dir", ".")
	v.SetDefault("delivery.share_command", deliver.DefaultShareCommand)
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.max_upload_mb", 64)
	v.SetDefault("fetch.timeout", 12*time.Second)
}

// New returns a viper instance with defaults, env binding and the config file
// search path. cfgFile, when set, replaces the search path.
func New(cfgFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", ConfigName))
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile reads the config file if one exists. A missing file is not an error
// unless it was named explicitly.
func ReadFile(v *viper.Viper, explicit bool) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	if _, ok := err.(viper.ConfigFileNotFoundError); ok && !explicit {
		return nil
	}
	return fmt.Errorf("reading config: %w", err)
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Image.MaxWidth <= 0 || cfg.Image.MaxHeight <= 0 {
		return Config{}, fmt.Errorf("image bounds must be positive, got %dx%d", cfg.Image.MaxWidth, cfg.Image.MaxHeight)
	}
	if _, err := deliver.ParseMode(cfg.Delivery.Mode); err != nil {
		return Config{}, err
	}
	if cfg.AppName == "" {
		cfg.AppName = naming.DefaultAppName
	}
	return cfg, nil
}

// Dump renders cfg as YAML.
func Dump(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
