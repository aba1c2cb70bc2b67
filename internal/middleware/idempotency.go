package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bakery-service/internal/domain/dto"
	"github.com/guttosm/bakery-service/internal/i18n"
	"github.com/rs/zerolog/log"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key (RFC standard).
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the idempotency cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the TTL for cached idempotency responses.
	IdempotencyKeyTTL = 5 * time.Minute
	// defaultIdempotencyEntries bounds the number of remembered responses.
	defaultIdempotencyEntries = 10000
)

// replayedHeaders are the response headers restored on replay.
var replayedHeaders = []string{"Content-Type", CartSessionHeader}

// cachedResponse stores a cached HTTP response for idempotency.
type cachedResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Timestamp  time.Time
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   *idempotencyCache
	TTL     time.Duration
	Enabled bool
}

// DefaultIdempotencyConfig returns default idempotency configuration.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   newIdempotencyCache(IdempotencyKeyTTL, defaultIdempotencyEntries),
		TTL:     IdempotencyKeyTTL,
		Enabled: true,
	}
}

// Stop releases the cache sweeper.
func (cfg IdempotencyConfig) Stop() {
	if cfg.Cache != nil {
		cfg.Cache.Stop()
	}
}

// Idempotency returns a middleware that replays the first successful response for a repeated
// Idempotency-Key. A duplicate that arrives while the first request is still running waits
// for it and replays its response, so a double-clicked "Add to Cart" creates one line, not two.
// Keys are scoped to the cart session so two shoppers cannot collide.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		cacheKey := generateCacheKey(key, c.GetHeader(CartSessionHeader), c.Request)

		for {
			cachedResp, wait, owner := cfg.Cache.Acquire(cacheKey)
			switch {
			case cachedResp != nil:
				replay(c, cachedResp)
				return
			case owner:
				execute(c, cfg.Cache, cacheKey)
				return
			}

			// A duplicate of a request still in progress: wait for its outcome.
			select {
			case <-wait:
			case <-c.Request.Context().Done():
				abortWaitTimeout(c)
				return
			}
		}
	}
}

// replay writes a stored response.
func replay(c *gin.Context, cachedResp *cachedResponse) {
	log.Debug().
		Str("request_id", GetRequestID(c)).
		Str("path", c.Request.URL.Path).
		Msg("Replaying idempotent response")
	for k, v := range cachedResp.Headers {
		c.Header(k, v)
	}
	c.Header(IdempotencyReplayedHeader, "true")
	c.Data(cachedResp.StatusCode, cachedResp.Headers["Content-Type"], cachedResp.Body)
	c.Abort()
}

// execute runs the handler chain as the key's owner and remembers a 2xx response.
// Other outcomes are not stored, so a waiting duplicate runs the request itself.
func execute(c *gin.Context, cache *idempotencyCache, cacheKey string) {
	var stored *cachedResponse
	defer func() {
		cache.Release(cacheKey, stored)
	}()

	writer := &responseWriter{
		ResponseWriter: c.Writer,
		body:           &bytes.Buffer{},
	}
	c.Writer = writer

	c.Next()

	status := writer.Status()
	if status < 200 || status >= 300 {
		return
	}
	headers := make(map[string]string, len(replayedHeaders))
	for _, h := range replayedHeaders {
		if v := writer.Header().Get(h); v != "" {
			headers[h] = v
		}
	}
	stored = &cachedResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       writer.body.Bytes(),
	}
}

func abortWaitTimeout(c *gin.Context) {
	message := "request timeout"
	if translator := i18n.GetTranslator(); translator != nil {
		message = translator.Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
	}
	errorResp := dto.NewError(dto.ErrCodeTimeout, message).WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusGatewayTimeout, errorResp)
}

// generateCacheKey hashes the idempotency key with the session and request details.
func generateCacheKey(idempotencyKey, sessionID string, req *http.Request) string {
	hasher := sha256.New()
	hasher.Write([]byte(idempotencyKey))
	hasher.Write([]byte{0})
	hasher.Write([]byte(sessionID))
	hasher.Write([]byte{0})
	hasher.Write([]byte(req.Method))
	hasher.Write([]byte(req.URL.Path))

	if req.Body != nil {
		bodyBytes, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		hasher.Write(bodyBytes)
	}

	return hex.EncodeToString(hasher.Sum(nil))
}

// responseWriter captures the response body for caching.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
