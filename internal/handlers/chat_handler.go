package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/andrewkandzuba/azure-function-chat-api/internal/models"
	"github.com/andrewkandzuba/azure-function-chat-api/pkg/function"
)

// ChatHandler handles chat API requests
type ChatHandler struct{}

// NewChatHandler creates a new chat handler
func NewChatHandler() *ChatHandler {
	return &ChatHandler{}
}

// @Summary Send a chat message
// @Description Accepts a JSON chat message and returns an echo response
// @Tags chat
// @Accept json
// @Produce json
// @Param message body models.ChatRequest true "Chat message"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	resp, err := h.Handle(c.Request.Context(), ginRequest(c))
	writeResponse(c, resp, err)
}

// Handle implements the chat contract over the host-agnostic request
// descriptor: parse the JSON body, validate the payload, echo the message.
func (h *ChatHandler) Handle(ctx context.Context, req *function.Request) (*function.Response, error) {
	logrus.WithFields(logrus.Fields{
		"method":  req.Method,
		"path":    req.Path,
		"headers": req.Headers,
	}).Info("Chat API endpoint triggered")

	chatReq, err := models.ParseChatRequest(req.Body)
	if err != nil {
		logrus.WithError(err).Error("Invalid JSON in request")
		return jsonResponse(http.StatusBadRequest, models.NewErrorResponse("Invalid JSON format"))
	}

	logrus.WithField("request_body", chatReq).Info("Request body parsed")

	if err := models.ValidateChatRequest(chatReq); err != nil {
		logrus.Warn("Empty message received")
		return jsonResponse(http.StatusBadRequest, models.NewErrorResponse("Message field is required"))
	}

	logrus.WithFields(logrus.Fields{
		"user_id": chatReq.UserID,
		"message": chatReq.Message,
	}).Info("Processing chat message")

	resp := models.NewChatResponse(chatReq)

	logrus.WithField("response", resp).Info("Chat response created")

	return jsonResponse(http.StatusOK, resp)
}

// jsonResponse marshals a payload into a descriptor response. A marshal
// failure is the unexpected-failure path: the cause is logged and the
// caller receives the generic 500 body.
func jsonResponse(status int, payload interface{}) (*function.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).Error("Error processing request")
		body, _ = json.Marshal(models.NewErrorResponse("Internal server error"))
		status = http.StatusInternalServerError
	}

	return &function.Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}, nil
}
