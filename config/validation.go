package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that the configuration is internally consistent. Secrets
// are required only outside test environments so the suite can run without a
// deployment environment.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if cfg.Server.Port == "" {
		errs = append(errs, ValidationError{Field: "server.port", Message: "must be set"})
	}
	if cfg.Database.Host == "" {
		errs = append(errs, ValidationError{Field: "database.host", Message: "must be set"})
	}
	if cfg.Database.Name == "" {
		errs = append(errs, ValidationError{Field: "database.name", Message: "must be set"})
	}
	if cfg.RateLimit.Requests <= 0 {
		errs = append(errs, ValidationError{Field: "rate_limit.requests", Message: "must be positive"})
	}
	if cfg.RateLimit.Window <= 0 {
		errs = append(errs, ValidationError{Field: "rate_limit.window", Message: "must be positive"})
	}

	if !IsTest() {
		if cfg.JWT.Secret == "" {
			errs = append(errs, ValidationError{Field: "jwt.secret", Message: "is required"})
		}
		if cfg.LLM.APIKey == "" {
			errs = append(errs, ValidationError{Field: "llm.api_key", Message: "is required"})
		}
	}

	if len(errs) > 0 {
		lines := make([]string, len(errs))
		for i, e := range errs {
			lines[i] = e.Error()
		}
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(lines, "\n"))
	}

	return nil
}
