package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hrmslite.com/hrmslite/web/common"
)

// respondError writes a business-rule outcome with its mapped status.
// Store-level failures are logged and reported generically instead of
// leaking internal detail.
func respondError(c *gin.Context, err error) {
	status := common.StatusFor(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		msg = "An unexpected error occurred"
		if status == http.StatusServiceUnavailable {
			msg = "Service temporarily unavailable"
		}
	}
	c.JSON(status, common.NewErrorResponse(msg))
}
