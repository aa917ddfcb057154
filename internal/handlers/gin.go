package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/andrewkandzuba/azure-function-chat-api/internal/models"
	"github.com/andrewkandzuba/azure-function-chat-api/pkg/function"
)

// ginRequest converts a gin request into the host-agnostic descriptor,
// decoupling the handler core from the HTTP framework.
func ginRequest(c *gin.Context) *function.Request {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
	}

	headers := make(map[string]string, len(c.Request.Header))
	for name := range c.Request.Header {
		headers[name] = c.Request.Header.Get(name)
	}

	queryParams := make(map[string]string)
	for name, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			queryParams[name] = values[0]
		}
	}

	return &function.Request{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		Headers:     headers,
		QueryParams: queryParams,
		Body:        body,
	}
}

// writeResponse writes a descriptor response back through gin. A handler
// error is the unexpected-failure path: logged, never exposed.
func writeResponse(c *gin.Context, resp *function.Response, err error) {
	if err != nil {
		logrus.WithError(err).Error("Error processing request")
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse("Internal server error"))
		return
	}

	for name, value := range resp.Headers {
		if name == "Content-Type" {
			continue
		}
		c.Header(name, value)
	}

	c.Data(resp.StatusCode, "application/json", resp.Body)
}
