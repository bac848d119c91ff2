package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimiter caps requests per client IP using an in-memory store. rate is
// the limiter period syntax, e.g. "100-M" for 100 requests per minute.
func RateLimiter(rate string) (gin.HandlerFunc, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, err
	}
	instance := limiter.New(memory.NewStore(), parsed)
	return mgin.NewMiddleware(instance, mgin.WithErrorHandler(func(c *gin.Context, err error) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "rate limiter failure"})
	})), nil
}
