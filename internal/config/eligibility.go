package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"ringside/internal/eligibility"
)

const (
	EnvEligibilityExpiringSoonDays = "RINGSIDE_ELIGIBILITY_EXPIRING_SOON_DAYS"
	EnvEligibilityChecklist        = "RINGSIDE_ELIGIBILITY_CHECKLIST"
	EnvEligibilitySweepInterval    = "RINGSIDE_ELIGIBILITY_SWEEP_INTERVAL"
)

// EligibilityConfig holds jurisdiction policy settings for the eligibility
// engine: the expiring-soon window, the default required-document
// checklist, per-type expiration overrides, per-method suspension
// overrides, and the periodic sweep interval.
type EligibilityConfig struct {
	ExpiringSoonDays int            `toml:"expiring_soon_days"`
	Checklist        []string       `toml:"checklist"`
	Expiration       map[string]int `toml:"expiration"`
	Suspension       map[string]int `toml:"suspension"`
	SweepInterval    string         `toml:"sweep_interval"`
}

// Policies builds the engine policy bundle: baseline tables with any
// configured overrides applied on top.
func (c *EligibilityConfig) Policies() eligibility.Policies {
	p := eligibility.DefaultPolicies()
	p.ExpiringSoonDays = c.ExpiringSoonDays

	for t, days := range c.Expiration {
		p.Expiration[eligibility.DocumentType(t)] = days
	}
	for method, days := range c.Suspension {
		p.Suspension[method] = days
	}

	return p
}

// DefaultChecklist returns the configured checklist as document types.
func (c *EligibilityConfig) DefaultChecklist() []eligibility.DocumentType {
	checklist := make([]eligibility.DocumentType, len(c.Checklist))
	for i, t := range c.Checklist {
		checklist[i] = eligibility.DocumentType(t)
	}
	return checklist
}

// SweepIntervalDuration returns SweepInterval as a time.Duration.
func (c *EligibilityConfig) SweepIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.SweepInterval)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *EligibilityConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *EligibilityConfig) Merge(overlay *EligibilityConfig) {
	if overlay.ExpiringSoonDays != 0 {
		c.ExpiringSoonDays = overlay.ExpiringSoonDays
	}
	if overlay.Checklist != nil {
		c.Checklist = overlay.Checklist
	}
	if overlay.Expiration != nil {
		c.Expiration = overlay.Expiration
	}
	if overlay.Suspension != nil {
		c.Suspension = overlay.Suspension
	}
	if overlay.SweepInterval != "" {
		c.SweepInterval = overlay.SweepInterval
	}
}

func (c *EligibilityConfig) loadDefaults() {
	if c.ExpiringSoonDays == 0 {
		c.ExpiringSoonDays = eligibility.DefaultExpiringSoonDays
	}
	if len(c.Checklist) == 0 {
		c.Checklist = []string{"physical", "blood_test", "eye_exam"}
	}
	if c.SweepInterval == "" {
		c.SweepInterval = "1h"
	}
}

func (c *EligibilityConfig) loadEnv() {
	if v := os.Getenv(EnvEligibilityExpiringSoonDays); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			c.ExpiringSoonDays = days
		}
	}
	if v := os.Getenv(EnvEligibilityChecklist); v != "" {
		types := strings.Split(v, ",")
		c.Checklist = make([]string, 0, len(types))
		for _, t := range types {
			if trimmed := strings.TrimSpace(t); trimmed != "" {
				c.Checklist = append(c.Checklist, trimmed)
			}
		}
	}
	if v := os.Getenv(EnvEligibilitySweepInterval); v != "" {
		c.SweepInterval = v
	}
}

func (c *EligibilityConfig) validate() error {
	if c.ExpiringSoonDays < 1 {
		return fmt.Errorf("expiring_soon_days must be positive: %d", c.ExpiringSoonDays)
	}
	for _, t := range c.Checklist {
		if !eligibility.KnownDocumentType(eligibility.DocumentType(t)) {
			return fmt.Errorf("unknown checklist document type: %q", t)
		}
	}
	for t := range c.Expiration {
		if !eligibility.KnownDocumentType(eligibility.DocumentType(t)) {
			return fmt.Errorf("unknown expiration override document type: %q", t)
		}
	}
	if _, err := time.ParseDuration(c.SweepInterval); err != nil {
		return fmt.Errorf("invalid sweep_interval: %w", err)
	}
	return nil
}
