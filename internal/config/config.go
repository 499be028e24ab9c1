package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// If SetConfigFile was provided upstream it takes precedence; these
	// search paths are fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "nodehtml"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "nodehtml"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	// Read config file if present; a missing file is fine, a broken one is not.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	// Environment variables: NODEHTML_* (highest among these sources)
	v.SetEnvPrefix("nodehtml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if v.GetString("data_dir") == "" {
		v.Set("data_dir", defaultDataDir())
	}
	return nil
}

// defaultDataDir resolves default data dir: $XDG_DATA_HOME/nodehtml or ~/.local/share/nodehtml
func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "nodehtml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "nodehtml")
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "nodehtml", "config.toml")
}

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "data_dir", Default: defaultDataDir(), Comment: "Directory for local state; the render cache lives here"},
		{Key: "http_addr", Default: ":8080", Comment: "HTTP listen address for `serve`"},

		{Key: "render.output", Default: "html", Comment: "Output mode: html|pretty|json"},
		{Key: "render.wrap", Default: "p", Comment: "Tag wrapping converted spans"},
		{Key: "render.pager", Default: true, Comment: "Page output through $PAGER when stdout is a terminal"},

		{Key: "pretty.style", Default: "dracula", Comment: "glamour style used by the pretty output mode"},
		{Key: "pretty.word_wrap", Default: 80, Comment: "Word wrap width for pretty output"},

		{Key: "cache.enabled", Default: false, Comment: "Reuse rendered output keyed by document digest"},
		{Key: "cache.dsn", Default: "", Comment: "Cache location (mem:// or sqlite://path); empty means data_dir/cache.db"},
	}
}

// ResolveCacheDSN returns the configured cache DSN or the default SQLite file under data_dir.
func ResolveCacheDSN(v *viper.Viper) string {
	if dsn := strings.TrimSpace(v.GetString("cache.dsn")); dsn != "" {
		return dsn
	}
	dir := v.GetString("data_dir")
	if dir == "" {
		dir = defaultDataDir()
	}
	// Expand ~ for convenience
	if len(dir) > 0 && dir[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[1:])
		}
	}
	return "sqlite://" + filepath.Join(dir, "cache.db")
}
