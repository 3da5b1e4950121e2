package middleware

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type CacheConfig struct {
	TTL       time.Duration
	KeyPrefix string
}

// cachedResponse is the envelope stored in Redis.
type cachedResponse struct {
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Cache serves identical GET requests from Redis. Rating writes do not
// invalidate entries; staleness is bounded by the TTL, which is short
// enough for recommendation lists.
func Cache(client *redis.Client, config *CacheConfig, logger *logrus.Logger) gin.HandlerFunc {
	if client == nil {
		logger.Warn("Redis client not available, response caching disabled")
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || skipCaching(c.Request.URL.Path) {
			c.Next()
			return
		}

		key := cacheKey(c, config.KeyPrefix)

		if payload, err := client.Get(c.Request.Context(), key).Bytes(); err == nil {
			var response cachedResponse
			if err := json.Unmarshal(payload, &response); err == nil {
				c.Header("X-Cache", "HIT")
				c.Data(response.StatusCode, response.ContentType, response.Body)
				c.Abort()
				return
			}
		}

		writer := &cacheWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Header("X-Cache", "MISS")

		c.Next()

		status := writer.Status()
		if status < 200 || status >= 300 || len(writer.body) == 0 {
			return
		}

		payload, err := json.Marshal(cachedResponse{
			StatusCode:  status,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body,
		})
		if err != nil {
			return
		}

		if err := client.Set(c.Request.Context(), key, payload, config.TTL).Err(); err != nil {
			logger.WithError(err).WithField("key", key).Debug("Failed to cache response")
		}
	}
}

type cacheWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *cacheWriter) Write(data []byte) (int, error) {
	w.body = append(w.body, data...)
	return w.ResponseWriter.Write(data)
}

func cacheKey(c *gin.Context, prefix string) string {
	if prefix == "" {
		prefix = "httpcache"
	}
	raw := c.Request.URL.Path + "?" + c.Request.URL.RawQuery
	return fmt.Sprintf("%s:%x", prefix, md5.Sum([]byte(raw)))
}

func skipCaching(path string) bool {
	return path == "/health" || path == "/metrics" || strings.HasPrefix(path, "/debug")
}
