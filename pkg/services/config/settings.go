package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Settings is the explicit service configuration, sourced from environment
// variables and an optional config file. Constructors receive this struct;
// nothing reads the environment directly.
type Settings struct {
	ServerHost      string            `mapstructure:"server_host"`
	ServerPort      string            `mapstructure:"server_port"`
	Bucket          string            `mapstructure:"bucket"`
	AWSRegion       string            `mapstructure:"aws_region"`
	IntakeToken     string            `mapstructure:"intake_token"`
	WebhookURL      string            `mapstructure:"webhook_url"`
	WebhookHeaders  map[string]string `mapstructure:"webhook_headers"`
	WebhookTimeout  time.Duration     `mapstructure:"webhook_timeout"`
	ShutdownTimeout time.Duration     `mapstructure:"shutdown_timeout"`
}

// Load reads settings from the environment, overlaid by the config file at
// path when one is given.
func Load(path string) (*Settings, error) {
	v := viper.New()

	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", "8080")
	v.SetDefault("bucket", "fintech-inbox")
	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("intake_token", "")
	v.SetDefault("webhook_url", "")
	v.SetDefault("webhook_headers", map[string]string{})
	v.SetDefault("webhook_timeout", 30*time.Second)
	v.SetDefault("shutdown_timeout", 10*time.Second)

	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &settings, nil
}
