package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/andrewkandzuba/azure-function-chat-api/internal/config"
	"github.com/andrewkandzuba/azure-function-chat-api/internal/tasks"
)

const helpText = `
Available commands:

  tasks setup          - Set up local development environment
  tasks clean          - Clean build artifacts and coverage output
  tasks test           - Run tests
  tasks coverage       - Run tests with coverage report
  tasks lint           - Run linting checks
  tasks format         - Format code with gofmt
  tasks func-start     - Start Azure Function locally
  tasks az-package     - Create deployment package for Azure
  tasks az-deploy      - Deploy to Azure Functions using Azure CLI
                         -function-app <name> -resource-group <group>
  tasks tf-init        - Initialize Terraform
  tasks tf-plan        - Run Terraform plan
  tasks tf-apply       - Apply Terraform configuration
  tasks all            - Run format, lint, and test

Examples:
  tasks setup
  tasks test
  tasks az-deploy -function-app my-app -resource-group my-rg
`

func main() {
	var (
		functionApp   = flag.String("function-app", "", "Azure Function App name")
		resourceGroup = flag.String("resource-group", "", "Azure Resource Group name")
		workDir       = flag.String("dir", ".", "Project root directory")
		verbose       = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Usage = showHelp

	// The command comes first, its flags after, so flags are parsed from
	// the arguments following the command name.
	args := os.Args[1:]
	command := ""
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command = args[0]
		args = args[1:]
	}
	if err := flag.CommandLine.Parse(args); err != nil {
		os.Exit(1)
	}

	// Setup logger
	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if command == "" || command == "help" {
		showHelp()
		return
	}

	runner := tasks.NewRunner(logger, *workDir)

	var err error
	switch command {
	case "setup":
		err = runner.Setup()
	case "clean":
		err = runner.Clean()
	case "test":
		err = runner.Test()
	case "coverage":
		err = runner.Coverage()
	case "lint":
		err = runner.Lint()
	case "format":
		err = runner.Format()
	case "func-start":
		err = runner.FuncStart()
	case "az-package":
		err = runner.AzPackage()
	case "az-deploy":
		app := *functionApp
		if app == "" {
			app = config.GetEnv("FUNCTION_APP_NAME", tasks.PlaceholderFunctionApp)
		}
		group := *resourceGroup
		if group == "" {
			group = config.GetEnv("RESOURCE_GROUP", tasks.PlaceholderResourceGroup)
		}
		err = runner.AzDeploy(app, group)
	case "tf-init":
		err = runner.TfInit()
	case "tf-plan":
		err = runner.TfPlan()
	case "tf-apply":
		err = runner.TfApply()
	case "all":
		err = runner.All()
	default:
		logger.Errorf("Unknown command: %s", command)
		showHelp()
		os.Exit(1)
	}

	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Print(helpText)
}
