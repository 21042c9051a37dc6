package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var logFormats = []string{"json", "text", "pretty"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if strings.TrimSpace(c.Client.UserAgent) == "" {
		return fmt.Errorf("client.user_agent must not be empty")
	}
	if c.Client.Timeout <= 0 {
		return fmt.Errorf("client.timeout must be > 0 (got %v)", c.Client.Timeout)
	}

	if err := validateBaseURL(c.Dictionary.BaseURL); err != nil {
		return fmt.Errorf("dictionary.base_url: %w", err)
	}
	if err := validateBaseURL(c.Translation.BaseURL); err != nil {
		return fmt.Errorf("translation.base_url: %w", err)
	}

	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %s (got %q)", strings.Join(logFormats, ", "), c.Log.Format)
	}

	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}
