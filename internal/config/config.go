package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	FunctionKey string
	Deploy      DeployConfig
}

// DeployConfig holds Azure deployment target configuration
type DeployConfig struct {
	FunctionApp   string
	ResourceGroup string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set up Viper
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("FUNCTION_APP_NAME", "")
	viper.SetDefault("RESOURCE_GROUP", "")

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		FunctionKey: viper.GetString("FUNCTION_KEY"),
		Deploy: DeployConfig{
			FunctionApp:   viper.GetString("FUNCTION_APP_NAME"),
			ResourceGroup: viper.GetString("RESOURCE_GROUP"),
		},
	}

	// The Functions host assigns the listen port when running as a
	// custom handler; it takes precedence over any configured PORT.
	if port := viper.GetString("FUNCTIONS_CUSTOMHANDLER_PORT"); port != "" {
		config.Port = port
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
