package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/mahamudulhasan-me/bristo-boss-server/internal/httperr"
)

// Recovery returns a middleware that recovers from handler panics.
// httperr.Failed values keep their status and message; anything else is
// logged and answered with a generic 500 so a store or processor failure
// never crashes the request.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				if failed, ok := err.(httperr.Failed); ok {
					if failed.Status >= 500 {
						log.Printf("recovery: %v", failed)
					}
					c.AbortWithStatusJSON(failed.Status, gin.H{"error": true, "message": failed.Message})
					return
				}

				log.Printf("recovery: panic: %v", err)
				c.AbortWithStatusJSON(500, gin.H{"error": true, "message": "internal server error"})
			}
		}()
		c.Next()
	}
}
