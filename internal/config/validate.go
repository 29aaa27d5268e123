package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Storage.SigningSecret == "" {
		c.Storage.SigningSecret = c.Auth.JWTSecret
	}
	if c.Storage.URLTTL <= 0 {
		return fmt.Errorf("storage.url_ttl must be > 0 (got %s)", c.Storage.URLTTL)
	}
	if c.Storage.CacheTTL >= c.Storage.URLTTL {
		return fmt.Errorf("storage.cache_ttl (%s) must be shorter than storage.url_ttl (%s)", c.Storage.CacheTTL, c.Storage.URLTTL)
	}

	if err := c.Evaluation.validate(); err != nil {
		return fmt.Errorf("evaluation: %w", err)
	}

	c.Kafka.BrokerList = ParseList(c.Kafka.Brokers)

	return nil
}

func (e *EvaluationConfig) validate() error {
	if e.PageSize < 1 || e.PageSize > 200 {
		return fmt.Errorf("page_size must be within 1..200 (got %d)", e.PageSize)
	}
	if e.ExportPageSize < 1 || e.ExportPageSize > 1000 {
		return fmt.Errorf("export_page_size must be within 1..1000 (got %d)", e.ExportPageSize)
	}
	if e.ExportMaxPages < 1 {
		return fmt.Errorf("export_max_pages must be > 0 (got %d)", e.ExportMaxPages)
	}
	if e.BulkMaxRecords < 1 {
		return fmt.Errorf("bulk_max_records must be > 0 (got %d)", e.BulkMaxRecords)
	}

	e.BulkEditRoles = ParseList(e.BulkEditRolesRaw)
	if len(e.BulkEditRoles) == 0 {
		return fmt.Errorf("bulk_edit_roles must list at least one role")
	}

	return nil
}

// ParseList splits a comma-separated string, trimming blanks.
// An empty string returns a nil slice.
func ParseList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
