package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

var skipPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// Logger emits one access-log line per request: client ip, request line,
// status, and elapsed time.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skipPaths[path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		log.Printf("%s - \"%s %s HTTP/1.1\" %d %.3fs",
			c.ClientIP(), c.Request.Method, path, c.Writer.Status(), duration.Seconds())
	}
}
