package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chatscai10/employee-management-system-sub002/pkg/response"
)

// BodyLimit 全域請求體大小限制中介層
// maxBytes: 允許的最大請求體位元組數（如 1<<20 = 1MB）
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, 10005, "請求體過大")
				return
			}
		}
	}
}
