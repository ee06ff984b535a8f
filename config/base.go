package config

import (
	"github.com/kbukum/microinjection/logger"
	"github.com/kbukum/microinjection/observability"
	"github.com/kbukum/microinjection/validation"
)

// DefaultSourcePrefix is the configuration section that holds values for
// injection keys.
const DefaultSourcePrefix = "injection"

// BaseConfig contains essential fields that every service needs.
type BaseConfig struct {
	Name        string `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`
}

// ApplyDefaults applies default values to base configuration.
func (c *BaseConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
}

// Validate validates base configuration.
func (c *BaseConfig) Validate() error {
	return validation.Validate(c)
}

// SourceConfig selects where injection key values live in the configuration.
type SourceConfig struct {
	Prefix string `yaml:"prefix" mapstructure:"prefix"`
}

// Settings is the configuration of a composition root.
//
//	name: orders
//	environment: staging
//	logging:
//	  level: debug
//	metrics:
//	  enabled: true
//	  endpoint: collector:4318
//	source:
//	  prefix: injection
type Settings struct {
	BaseConfig `yaml:",inline" mapstructure:",squash"`
	Logging    logger.Config             `yaml:"logging" mapstructure:"logging"`
	Metrics    observability.MeterConfig `yaml:"metrics" mapstructure:"metrics"`
	Source     SourceConfig              `yaml:"source" mapstructure:"source"`
}

// ApplyDefaults applies default values to every section.
func (s *Settings) ApplyDefaults() {
	s.BaseConfig.ApplyDefaults()
	if s.Logging.ServiceName == "" {
		s.Logging.ServiceName = s.Name
	}
	s.Logging.ApplyDefaults()
	if s.Metrics.ServiceName == "" {
		s.Metrics.ServiceName = s.Name
	}
	if s.Metrics.Environment == "" {
		s.Metrics.Environment = s.Environment
	}
	s.Metrics.ApplyDefaults()
	if s.Source.Prefix == "" {
		s.Source.Prefix = DefaultSourcePrefix
	}
}

// Validate validates every section.
func (s *Settings) Validate() error {
	return validation.Validate(s)
}
