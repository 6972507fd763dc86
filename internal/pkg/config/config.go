package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig holds the full configuration of the REST API binary
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
}

// GrpcConfig holds the full configuration of the gRPC API binary
type GrpcConfig struct {
	Port     string           `mapstructure:"port" validate:"required"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
}

// Validate checks that all fields in RestConfig are valid
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Database.Validate()
}

// Validate checks that all fields in GrpcConfig are valid
func (c *GrpcConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for GrpcConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Database.Validate()
}

// InitializeRestConfig reads and validates the REST API configuration from the given yaml file.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v, err := readConfigFile(configPath)
	if err != nil {
		return nil, err
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// InitializeGrpcConfig reads and validates the gRPC API configuration from the given yaml file.
func InitializeGrpcConfig(configPath string) (*GrpcConfig, error) {
	v, err := readConfigFile(configPath)
	if err != nil {
		return nil, err
	}

	var cfg GrpcConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfigFile(configPath string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	return v, nil
}
