// Package config defines the data structures related to service
// configuration and includes functions for loading and parsing it.
package config

import (
	"fmt"

	"github.com/calcconstru/calcconstru/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for the calcconstru service.
type Configuration struct {
	Server   ServerConfig   `yaml:"server,omitempty"`
	Database DatabaseConfig `yaml:"database,omitempty"`
	Advisor  AdvisorConfig  `yaml:"advisor,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
}

// ServerConfig holds the HTTP API options.
type ServerConfig struct {
	Address     string   `yaml:"address,omitempty"`
	CORSOrigins []string `yaml:"corsOrigins,omitempty"`
}

// DatabaseConfig holds the persistence gateway connection options. When
// Disabled is set (or the host is empty) the service runs on the in-memory
// store only.
type DatabaseConfig struct {
	Host     string `yaml:"host,omitempty"`
	Port     int    `yaml:"port,omitempty"`
	User     string `yaml:"user,omitempty"`
	Password string `yaml:"password,omitempty"`
	Name     string `yaml:"name,omitempty"`
	SSLMode  string `yaml:"sslMode,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// AdvisorConfig holds the generative-AI commentary options. An empty APIKey
// disables the advisor.
type AdvisorConfig struct {
	APIKey   string `yaml:"apiKey,omitempty"`
	Model    string `yaml:"model,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
}

// LoggingConfig holds logging configuration options.
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds CLI output format configuration options.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Environment variables override file values.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.SetEnvPrefix("calcconstru")
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

// Default returns a configuration usable without any file: memory store,
// advisor disabled, default listen address.
func Default() *Configuration {
	configuration := &Configuration{}
	configuration.applyDefaults()
	return configuration
}

func (c *Configuration) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = constants.DefaultServerAddress
	}
	if c.Advisor.Model == "" {
		c.Advisor.Model = constants.DefaultAdvisorModel
	}
	if c.Advisor.Endpoint == "" {
		c.Advisor.Endpoint = constants.DefaultAdvisorEndpoint
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
}

// DSN renders the Postgres connection string for the persistence gateway.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Enabled reports whether the gateway should try Postgres at all.
func (c DatabaseConfig) Enabled() bool {
	return !c.Disabled && c.Host != ""
}
