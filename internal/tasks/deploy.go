package tasks

import (
	"fmt"
	"path/filepath"
)

// Placeholder values that indicate a deployment target was never configured
const (
	PlaceholderFunctionApp   = "your-function-app-name"
	PlaceholderResourceGroup = "your-resource-group"
)

// ValidateDeployTarget rejects unset or placeholder deployment parameters
func ValidateDeployTarget(functionApp, resourceGroup string) error {
	if functionApp == "" || functionApp == PlaceholderFunctionApp {
		return fmt.Errorf("FUNCTION_APP_NAME not set: usage: tasks az-deploy -function-app <name> -resource-group <group>")
	}
	if resourceGroup == "" || resourceGroup == PlaceholderResourceGroup {
		return fmt.Errorf("RESOURCE_GROUP not set: usage: tasks az-deploy -function-app <name> -resource-group <group>")
	}
	return nil
}

// AzDeploy packages the app and deploys it to Azure Functions via the
// Azure CLI
func (r *Runner) AzDeploy(functionApp, resourceGroup string) error {
	r.logger.Info("Deploying to Azure Functions...")

	if err := ValidateDeployTarget(functionApp, resourceGroup); err != nil {
		return err
	}

	// Create package first
	if err := r.AzPackage(); err != nil {
		return err
	}

	r.logger.Infof("Deploying to %s in %s...", functionApp, resourceGroup)
	err := r.run("az", "functionapp", "deployment", "source", "config-zip",
		"--resource-group", resourceGroup,
		"--name", functionApp,
		"--src", PackageName,
		"--build-remote", "true",
	)
	if err != nil {
		return err
	}

	r.logger.Info("Deployment complete!")
	return nil
}

// TfInit initializes Terraform in the terraform directory
func (r *Runner) TfInit() error {
	r.logger.Info("Initializing Terraform...")

	if err := r.runIn(r.terraformDir(), "terraform", "init"); err != nil {
		return err
	}

	r.logger.Info("Terraform initialized!")
	return nil
}

// TfPlan runs a Terraform plan
func (r *Runner) TfPlan() error {
	r.logger.Info("Running Terraform plan...")
	return r.runIn(r.terraformDir(), "terraform", "plan")
}

// TfApply applies the Terraform configuration
func (r *Runner) TfApply() error {
	r.logger.Info("Applying Terraform configuration...")

	if err := r.runIn(r.terraformDir(), "terraform", "apply"); err != nil {
		return err
	}

	r.logger.Info("Terraform applied!")
	return nil
}

func (r *Runner) terraformDir() string {
	return filepath.Join(r.workDir, "terraform")
}
