package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.Dict == "" {
		return fmt.Errorf("%w: dict path is required", ErrInvalid)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}

	if c.IndexWorkers < 1 || c.IndexWorkers > 64 {
		return fmt.Errorf("%w: index workers must be between 1 and 64, got %d", ErrInvalid, c.IndexWorkers)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalid, c.Timeout)
	}

	return nil
}
