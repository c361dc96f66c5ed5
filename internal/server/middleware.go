package server

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestID keeps the incoming request id or assigns a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			u, err := uuid.NewV4()
			if err != nil {
				log.Printf("cannot generate request id: %s", err)
			} else {
				id = u.String()
			}
		}

		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Printf("%s %s %d %s request_id=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.GetString(requestIDHeader),
		)
	}
}
