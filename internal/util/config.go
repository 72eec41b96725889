package util

import (
	"fmt"
	"time"
	
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	AllowedOrigins     []string      `mapstructure:"ALLOWED_ORIGINS"`
	HTTPServerAddress  string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	MomoPartnerCode    string        `mapstructure:"MOMO_PARTNER_CODE"`
	MomoAccessKey      string        `mapstructure:"MOMO_ACCESS_KEY"`
	MomoSecretKey      string        `mapstructure:"MOMO_SECRET_KEY"`
	MomoRequestType    string        `mapstructure:"MOMO_REQUEST_TYPE"`
	MomoNotifyURL      string        `mapstructure:"MOMO_NOTIFY_URL"`
	MomoReturnURL      string        `mapstructure:"MOMO_RETURN_URL"`
	MomoGatewayURL     string        `mapstructure:"MOMO_GATEWAY_URL"`
	MomoRequestTimeout time.Duration `mapstructure:"MOMO_REQUEST_TIMEOUT"`
}

var configKeys = []string{
	"ALLOWED_ORIGINS",
	"HTTP_SERVER_ADDRESS",
	"LOG_LEVEL",
	"MOMO_PARTNER_CODE",
	"MOMO_ACCESS_KEY",
	"MOMO_SECRET_KEY",
	"MOMO_REQUEST_TYPE",
	"MOMO_NOTIFY_URL",
	"MOMO_RETURN_URL",
	"MOMO_GATEWAY_URL",
	"MOMO_REQUEST_TIMEOUT",
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	
	// Set defaults for non-sensitive config
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	v.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MOMO_REQUEST_TYPE", "captureMoMoWallet")
	v.SetDefault("MOMO_GATEWAY_URL", "https://test-payment.momo.vn/gw_payment/transactionProcessor")
	v.SetDefault("MOMO_REQUEST_TIMEOUT", "30s")
	
	// Prefer environment variables over config file.
	// AutomaticEnv chỉ thấy các key đã có default hoặc có trong file, nên bind tường minh từng key
	v.AutomaticEnv()
	for _, key := range configKeys {
		if err = v.BindEnv(key); err != nil {
			return
		}
	}
	
	// Load config file
	v.SetConfigFile(path)
	if err = v.ReadInConfig(); err != nil {
		return
	}
	
	// Unmarshal config into struct
	err = v.UnmarshalExact(&config)
	if err != nil {
		return
	}
	
	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.MomoPartnerCode == "" {
		return fmt.Errorf("MOMO_PARTNER_CODE is required")
	}
	if config.MomoAccessKey == "" {
		return fmt.Errorf("MOMO_ACCESS_KEY is required")
	}
	if config.MomoSecretKey == "" {
		return fmt.Errorf("MOMO_SECRET_KEY is required")
	}
	if config.MomoNotifyURL == "" {
		return fmt.Errorf("MOMO_NOTIFY_URL is required")
	}
	if config.MomoReturnURL == "" {
		return fmt.Errorf("MOMO_RETURN_URL is required")
	}
	if config.MomoRequestTimeout <= 0 {
		return fmt.Errorf("MOMO_REQUEST_TIMEOUT must be positive")
	}
	
	return nil
}
