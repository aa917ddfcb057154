package handlers

// @title Azure Function Chat API
// @version 1.0
// @description A minimal serverless chat echo API with structured validation and logging

// @contact.name API Support
// @contact.url https://github.com/andrewkandzuba/azure-function-chat-api

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey FunctionKey
// @in header
// @name x-functions-key
// @description Function-level access key issued by the hosting platform.

// @tag.name chat
// @tag.description Chat message operations

// @tag.name health
// @tag.description Health and monitoring operations
