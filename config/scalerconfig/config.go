// Package scalerconfig holds the invocation record: which cluster to scale, its bounds,
// the memory threshold and the time of day parameters.
package scalerconfig

import (
	"bytes"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMinInstances     = 0
	DefaultMaxInstances     = 20
	DefaultOfficeHoursStart = 7
	DefaultOfficeHoursEnd   = 18
	DefaultShutdownTime     = 23
	DefaultTimeZone         = "Europe/Berlin"
)

// Config keys match the fields of the scheduled event that triggers an invocation.
// JSON is accepted since it is valid YAML.
type Config struct {
	JobFlowId         string   `yaml:"JobFlowId" json:"JobFlowId"`
	Threshold         *float64 `yaml:"Threshold" json:"Threshold"`
	MinInstances      int64    `yaml:"MinInstances" json:"MinInstances"`
	MaxInstances      int64    `yaml:"MaxInstances" json:"MaxInstances"`
	OfficeHoursStart  int      `yaml:"OfficeHoursStart" json:"OfficeHoursStart"`
	OfficeHoursEnd    int      `yaml:"OfficeHoursEnd" json:"OfficeHoursEnd"`
	ShutdownTime      int      `yaml:"ShutdownTime" json:"ShutdownTime"`
	ParentStackId     string   `yaml:"ParentStackId" json:"ParentStackId"`
	StackDeletionRole string   `yaml:"StackDeletionRole" json:"StackDeletionRole"`
	Region            string   `yaml:"Region" json:"Region"`
	TimeZone          string   `yaml:"TimeZone" json:"TimeZone"`
}

// Default returns a Config with every optional key set. JobFlowId and Threshold stay unset.
func Default() *Config {
	return &Config{
		MinInstances:     DefaultMinInstances,
		MaxInstances:     DefaultMaxInstances,
		OfficeHoursStart: DefaultOfficeHoursStart,
		OfficeHoursEnd:   DefaultOfficeHoursEnd,
		ShutdownTime:     DefaultShutdownTime,
		TimeZone:         DefaultTimeZone,
	}
}

// ConfigurationError is a missing or invalid key. It is reported before any cluster call is made.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("invalid configuration: %s", e.Reason)
	}
	return fmt.Sprintf("invalid configuration: %s %s", e.Key, e.Reason)
}

// Parse decodes text over the defaults. Empty text yields the defaults. Unknown keys are rejected.
func Parse(text []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(text))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("couldn't parse config: %v", err)}
	}
	log.Debugf("config parsed to: %+v", *cfg)
	return cfg, nil
}

// Validate checks required keys and ranges.
func (c *Config) Validate() error {
	switch {
	case c.JobFlowId == "":
		return &ConfigurationError{Key: "JobFlowId", Reason: "is required"}
	case c.Threshold == nil:
		return &ConfigurationError{Key: "Threshold", Reason: "is required"}
	case *c.Threshold < 0 || *c.Threshold > 1:
		return &ConfigurationError{Key: "Threshold", Reason: fmt.Sprintf("must be within [0, 1], got %v", *c.Threshold)}
	case c.MinInstances < 0:
		return &ConfigurationError{Key: "MinInstances", Reason: fmt.Sprintf("must not be negative, got %d", c.MinInstances)}
	case c.MaxInstances < c.MinInstances:
		return &ConfigurationError{Key: "MaxInstances", Reason: fmt.Sprintf("must be at least MinInstances (%d), got %d", c.MinInstances, c.MaxInstances)}
	case c.OfficeHoursStart < 0 || c.OfficeHoursStart > 23:
		return &ConfigurationError{Key: "OfficeHoursStart", Reason: fmt.Sprintf("must be an hour of the day, got %d", c.OfficeHoursStart)}
	case c.OfficeHoursEnd < c.OfficeHoursStart || c.OfficeHoursEnd > 24:
		return &ConfigurationError{Key: "OfficeHoursEnd", Reason: fmt.Sprintf("must be within [%d, 24], got %d", c.OfficeHoursStart, c.OfficeHoursEnd)}
	case c.ShutdownTime < 0 || c.ShutdownTime > 23:
		return &ConfigurationError{Key: "ShutdownTime", Reason: fmt.Sprintf("must be an hour of the day, got %d", c.ShutdownTime)}
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location loads the reference time zone. Empty means UTC.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, &ConfigurationError{Key: "TimeZone", Reason: err.Error()}
	}
	return loc, nil
}

// ScaleThreshold returns the threshold, or 0 when unset. Call after Validate.
func (c *Config) ScaleThreshold() float64 {
	if c.Threshold == nil {
		return 0
	}
	return *c.Threshold
}
