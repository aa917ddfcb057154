package models

import (
	"strings"
	"testing"
	"time"
)

// TestParseChatRequest verifies payload parsing and user_id defaulting
func TestParseChatRequest(t *testing.T) {
	req, err := ParseChatRequest([]byte(`{"message": "Hello, Azure!", "user_id": "test_user_123"}`))
	if err != nil {
		t.Fatalf("Expected successful parse, got error: %v", err)
	}
	if req.Message != "Hello, Azure!" {
		t.Errorf("Expected message 'Hello, Azure!', got %q", req.Message)
	}
	if req.UserID != "test_user_123" {
		t.Errorf("Expected user_id 'test_user_123', got %q", req.UserID)
	}
}

// TestParseChatRequestDefaultsUserID verifies the anonymous default applies
// only when the user_id key is absent
func TestParseChatRequestDefaultsUserID(t *testing.T) {
	req, err := ParseChatRequest([]byte(`{"message": "hi"}`))
	if err != nil {
		t.Fatalf("Expected successful parse, got error: %v", err)
	}
	if req.UserID != DefaultUserID {
		t.Errorf("Expected user_id %q, got %q", DefaultUserID, req.UserID)
	}

	// An explicit empty string is kept as sent
	req, err = ParseChatRequest([]byte(`{"message": "hi", "user_id": ""}`))
	if err != nil {
		t.Fatalf("Expected successful parse, got error: %v", err)
	}
	if req.UserID != "" {
		t.Errorf("Expected empty user_id to be kept, got %q", req.UserID)
	}
}

// TestParseChatRequestMalformed verifies unparseable bodies are rejected
func TestParseChatRequestMalformed(t *testing.T) {
	bodies := [][]byte{
		[]byte(`{invalid json`),
		[]byte(``),
		[]byte(`"just a string"`),
		[]byte(`[1, 2, 3]`),
		[]byte(`{"message": 42}`),
	}

	for _, body := range bodies {
		if _, err := ParseChatRequest(body); err == nil {
			t.Errorf("Expected parse error for body %q", string(body))
		}
	}
}

// TestValidateChatRequest verifies the message field contract
func TestValidateChatRequest(t *testing.T) {
	valid := &ChatRequest{Message: "hello", UserID: "u1"}
	if err := ValidateChatRequest(valid); err != nil {
		t.Errorf("Expected valid request, got error: %v", err)
	}

	empty := &ChatRequest{Message: "", UserID: "u1"}
	err := ValidateChatRequest(empty)
	if err == nil {
		t.Error("Expected validation error for empty message")
	}
	if !IsValidationError(err) {
		t.Errorf("Expected a validation error type, got %T", err)
	}
}

// TestNewChatResponse verifies the echo response shape
func TestNewChatResponse(t *testing.T) {
	resp := NewChatResponse(&ChatRequest{Message: "Hello, Azure!", UserID: "test_user_123"})

	if resp.Status != StatusSuccess {
		t.Errorf("Expected status %q, got %q", StatusSuccess, resp.Status)
	}
	if resp.UserID != "test_user_123" {
		t.Errorf("Expected user_id 'test_user_123', got %q", resp.UserID)
	}
	if resp.MessageReceived != "Hello, Azure!" {
		t.Errorf("Expected message_received 'Hello, Azure!', got %q", resp.MessageReceived)
	}
	if resp.Response != "Echo: Hello, Azure!" {
		t.Errorf("Expected response 'Echo: Hello, Azure!', got %q", resp.Response)
	}
	if resp.Timestamp == "" {
		t.Error("Expected timestamp to be set")
	}
}

// TestNewHealthResponse verifies the health response shape
func TestNewHealthResponse(t *testing.T) {
	resp := NewHealthResponse()

	if resp.Status != StatusHealthy {
		t.Errorf("Expected status %q, got %q", StatusHealthy, resp.Status)
	}
	if resp.Timestamp == "" {
		t.Error("Expected timestamp to be set")
	}
}

// TestTimestampFormat verifies timestamps are naive UTC ISO-8601 instants
func TestTimestampFormat(t *testing.T) {
	ts := Timestamp()

	if strings.ContainsAny(ts, "Z+") {
		t.Errorf("Expected no timezone suffix, got %q", ts)
	}

	parsed, err := time.Parse(TimestampLayout, ts)
	if err != nil {
		t.Fatalf("Timestamp %q does not match layout: %v", ts, err)
	}

	if d := time.Since(parsed.UTC()); d < -time.Minute || d > time.Minute {
		t.Errorf("Timestamp %q is not close to the current UTC time", ts)
	}
}
