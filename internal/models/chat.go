package models

import (
	"time"
)

// Common constants
const (
	// StatusSuccess is the status value of every successful chat response
	StatusSuccess = "success"

	// StatusHealthy is the status value of every health response
	StatusHealthy = "healthy"

	// DefaultUserID is used when a chat request omits the user_id field
	DefaultUserID = "anonymous"

	// EchoPrefix is prepended to the received message to form the response text
	EchoPrefix = "Echo: "

	// TimestampLayout is an ISO-8601 UTC instant without a timezone offset
	TimestampLayout = "2006-01-02T15:04:05.999999"
)

// ChatRequest represents the JSON payload of a chat API request
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	UserID  string `json:"user_id"`
}

// ChatResponse represents a successful chat API response
type ChatResponse struct {
	Status          string `json:"status"`
	UserID          string `json:"user_id"`
	MessageReceived string `json:"message_received"`
	Response        string `json:"response"`
	Timestamp       string `json:"timestamp"`
}

// ErrorResponse represents the uniform failure response shape
type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewChatResponse builds the echo response for a validated chat request
func NewChatResponse(req *ChatRequest) *ChatResponse {
	return &ChatResponse{
		Status:          StatusSuccess,
		UserID:          req.UserID,
		MessageReceived: req.Message,
		Response:        EchoPrefix + req.Message,
		Timestamp:       Timestamp(),
	}
}

// NewErrorResponse builds an error response with the current timestamp
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Error:     message,
		Timestamp: Timestamp(),
	}
}

// NewHealthResponse builds a healthy status response with the current timestamp
func NewHealthResponse() *HealthResponse {
	return &HealthResponse{
		Status:    StatusHealthy,
		Timestamp: Timestamp(),
	}
}

// Timestamp returns the current UTC instant formatted as a naive ISO-8601
// string, matching the timestamps emitted by Azure Functions hosts.
func Timestamp() string {
	return time.Now().UTC().Format(TimestampLayout)
}
