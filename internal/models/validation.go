package models

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance for request payloads
var validate = validator.New()

// ParseChatRequest decodes a raw JSON body into a ChatRequest and applies
// field defaults. It returns an error only when the body cannot be parsed
// as a JSON object matching the payload shape; field-level validation is
// left to ValidateChatRequest so callers can distinguish a malformed body
// from a missing required field.
func ParseChatRequest(body []byte) (*ChatRequest, error) {
	var req ChatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}

	// The default for user_id applies only when the key is absent; an
	// explicit empty string is kept as sent.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if _, ok := raw["user_id"]; !ok {
		req.UserID = DefaultUserID
	}

	return &req, nil
}

// ValidateChatRequest checks that a parsed chat request satisfies the
// payload contract. The only required field is message, which rejects
// both absent and empty-string values.
func ValidateChatRequest(req *ChatRequest) error {
	return validate.Struct(req)
}

// IsValidationError reports whether an error came from payload validation
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(validator.ValidationErrors)
	return ok
}
