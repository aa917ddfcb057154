package config

import (
	"os"
	"sync"
)

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsAzureFunctions bool
	IsLambda         bool
	FunctionName     string
	Region           string
}

// Global serverless configuration
var (
	serverlessConfig *ServerlessConfig
	serverlessOnce   sync.Once
)

// GetServerlessConfig returns the serverless configuration
func GetServerlessConfig() *ServerlessConfig {
	serverlessOnce.Do(func() {
		serverlessConfig = &ServerlessConfig{
			IsAzureFunctions: isRunningInAzureFunctions(),
			IsLambda:         isRunningInLambda(),
			FunctionName:     functionName(),
			Region:           os.Getenv("AWS_REGION"),
		}
	})
	return serverlessConfig
}

// isRunningInAzureFunctions detects the Azure Functions custom handler host
func isRunningInAzureFunctions() bool {
	return os.Getenv("FUNCTIONS_CUSTOMHANDLER_PORT") != "" || os.Getenv("WEBSITE_SITE_NAME") != ""
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

func functionName() string {
	if name := os.Getenv("WEBSITE_SITE_NAME"); name != "" {
		return name
	}
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME")
}

// IsServerlessMode returns true if running under a serverless host
func IsServerlessMode() bool {
	cfg := GetServerlessConfig()
	return cfg.IsAzureFunctions || cfg.IsLambda
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if IsServerlessMode() {
		return "serverless"
	}
	return "server"
}
