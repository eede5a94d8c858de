package middleware

import (
	"bytes"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omsai/pos-backend/internal/domain/entity"
	"github.com/omsai/pos-backend/internal/domain/repository"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response when a billing request is retried
// with the same Idempotency-Key, so a double-tapped "Generate Bill" button
// cannot consume two bill numbers. Requests without the header pass through.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "POST" && c.Request.Method != "PUT" && c.Request.Method != "PATCH" {
			c.Next()
			return
		}

		idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
		if idempotencyKey == "" {
			c.Next()
			return
		}

		existing, err := config.Repo.GetByKey(c.Request.Context(), idempotencyKey)
		if err != nil {
			c.Next()
			return
		}

		if existing != nil && !existing.IsExpired() {
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.ResponseCode, "application/json", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		// Capture the response
		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		// Only cache successful responses; a rejected bill may legitimately be
		// resubmitted with the same key after the operator fixes it.
		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			ikey := &entity.IdempotencyKey{
				Key:          idempotencyKey,
				Endpoint:     c.Request.Method + " " + c.FullPath(),
				ResponseCode: c.Writer.Status(),
				ResponseBody: blw.body.String(),
				ExpiresAt:    time.Now().Add(IdempotencyKeyTTL),
			}

			_ = config.Repo.Create(c.Request.Context(), ikey)
		}
	}
}
