package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andrewkandzuba/azure-function-chat-api/internal/config"
	"github.com/andrewkandzuba/azure-function-chat-api/internal/models"
	"github.com/andrewkandzuba/azure-function-chat-api/pkg/function"
)

// TestHealthCheck verifies the health endpoint contract
func TestHealthCheck(t *testing.T) {
	router := newTestRouter(&config.Config{})

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp models.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("Expected status 'healthy', got %q", resp.Status)
	}
	if resp.Timestamp == "" {
		t.Error("Expected timestamp to be present")
	}
}

// TestHealthHandleDescriptor verifies the host-agnostic health handler
func TestHealthHandleDescriptor(t *testing.T) {
	handler := NewHealthHandler()

	resp, err := handler.Handle(context.Background(), &function.Request{
		Method: "GET",
		Path:   "/api/health",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var healthResp models.HealthResponse
	if err := json.Unmarshal(resp.Body, &healthResp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if healthResp.Status != "healthy" {
		t.Errorf("Expected status 'healthy', got %q", healthResp.Status)
	}
}
