package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/andrewkandzuba/azure-function-chat-api/internal/handlers"
	"github.com/andrewkandzuba/azure-function-chat-api/pkg/function"
)

var (
	chatHandler   *handlers.ChatHandler
	healthHandler *handlers.HealthHandler
)

func init() {
	chatHandler = handlers.NewChatHandler()
	healthHandler = handlers.NewHealthHandler()
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Convert API Gateway event to generic request
	req := &function.Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
	}

	// Route the request
	var resp *function.Response
	var err error

	switch {
	case req.Method == "POST" && req.Path == "/api/chat":
		resp, err = chatHandler.Handle(ctx, req)
	case req.Method == "GET" && req.Path == "/api/health":
		resp, err = healthHandler.Handle(ctx, req)
	default:
		resp = &function.Response{
			StatusCode: 404,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       []byte(`{"error": "Not found"}`),
		}
	}

	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error": "Internal server error"}`,
		}, nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}, nil
}

func main() {
	awslambda.Start(handler)
}
