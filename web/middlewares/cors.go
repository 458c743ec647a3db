package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cors restricts cross-origin access to the configured allowlist. A "*"
// entry allows any origin (development mode).
func Cors(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if allowOrigin(c.Writer, origin, allowedOrigins) {
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func allowOrigin(w gin.ResponseWriter, origin string, allowed []string) bool {
	for _, a := range allowed {
		if a == "*" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			return true
		}
		if a == origin {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			return true
		}
	}
	return false
}
