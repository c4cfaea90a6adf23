package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-adp-views/internal/viewmodel"
	"github.com/noah-isme/sma-adp-views/pkg/middleware/requestid"
)

const (
	responseMetaKey = "response_meta"
	startedAtKey    = "response_meta_started_at"
	cacheHitKey     = "cache_hit"
	pageStateKey    = "state"
	requestIDKey    = "request_id"
	processingKey   = "processing_time_ms"
)

// WithResponseMeta starts the meta map view handlers attach to their envelopes. It is seeded
// with the request id and a start time for processing_time_ms.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		meta := map[string]interface{}{}
		if id := requestid.Value(c); id != "" {
			meta[requestIDKey] = id
		}
		c.Set(responseMetaKey, meta)
		c.Set(startedAtKey, time.Now())
		c.Next()
	}
}

// SetCacheHit records whether the page came from the view cache.
func SetCacheHit(c *gin.Context, hit bool) {
	ensureMeta(c)[cacheHitKey] = hit
}

// SetPageState records the state of the rendered page.
func SetPageState(c *gin.Context, state viewmodel.PageState) {
	ensureMeta(c)[pageStateKey] = state
}

// ExtractMeta returns the meta map with processing_time_ms filled in.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	meta := ensureMeta(c)
	if start, ok := c.Value(startedAtKey).(time.Time); ok {
		meta[processingKey] = time.Since(start).Milliseconds()
	}
	return meta
}

func ensureMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return map[string]interface{}{}
	}
	if meta, ok := c.Value(responseMetaKey).(map[string]interface{}); ok {
		return meta
	}
	meta := make(map[string]interface{})
	c.Set(responseMetaKey, meta)
	return meta
}
