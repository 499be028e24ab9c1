package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/spf13/viper"
)

var outputModes = map[string]bool{"html": true, "pretty": true, "json": true}

// CheckConfigValidity reports every invalid setting in v as one joined error.
func CheckConfigValidity(v *viper.Viper) error {
	var errs []error

	if strings.TrimSpace(v.GetString("data_dir")) == "" {
		errs = append(errs, errors.New("data_dir is required"))
	}
	if addr := v.GetString("http_addr"); addr != "" {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			errs = append(errs, fmt.Errorf("http_addr %q is not host:port", addr))
		}
	}
	if out := strings.ToLower(v.GetString("render.output")); !outputModes[out] {
		errs = append(errs, fmt.Errorf("render.output must be one of html|pretty|json, got %q", out))
	}
	if err := CheckTagName(v.GetString("render.wrap")); err != nil {
		errs = append(errs, fmt.Errorf("render.wrap %w", err))
	}
	if v.GetInt("pretty.word_wrap") < 0 {
		errs = append(errs, errors.New("pretty.word_wrap must not be negative"))
	}
	if dsn := strings.TrimSpace(v.GetString("cache.dsn")); dsn != "" &&
		!strings.HasPrefix(dsn, "mem://") && !strings.HasPrefix(dsn, "sqlite://") {
		errs = append(errs, fmt.Errorf("cache.dsn must start with mem:// or sqlite://, got %q", dsn))
	}
	return errors.Join(errs...)
}

// CheckTagName reports whether name can be used as a wrapping element.
func CheckTagName(name string) error {
	if strings.TrimSpace(name) == "" || strings.ContainsAny(name, "<>/=' \t\n\"") {
		return fmt.Errorf("must be a bare tag name, got %q", name)
	}
	return nil
}
