package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/andrewkandzuba/azure-function-chat-api/internal/models"
)

// FunctionKeyHeader is the header the Functions host uses to carry the
// function-level access key.
const FunctionKeyHeader = "x-functions-key"

// FunctionKeyQueryParam is the query parameter alternative to the header.
const FunctionKeyQueryParam = "code"

// FunctionKey enforces the host's function-level access key on a route.
// An empty configured key means anonymous access, which matches local
// development under the Functions host.
func FunctionKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}

		provided := c.GetHeader(FunctionKeyHeader)
		if provided == "" {
			provided = c.Query(FunctionKeyQueryParam)
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			logrus.WithFields(logrus.Fields{
				"request_id": c.GetString(RequestIDKey),
				"path":       c.Request.URL.Path,
				"client_ip":  c.ClientIP(),
			}).Warn("Function key validation failed")

			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.NewErrorResponse("Unauthorized"))
			return
		}

		c.Next()
	}
}
