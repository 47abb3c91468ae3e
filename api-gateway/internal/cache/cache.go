package cache

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// ResponseCache keeps successful GET bodies per route family and drops the
// whole family whenever a mutation passes through it, so the browser's
// refetch-after-mutate cycle always sees fresh data.
type ResponseCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client) *ResponseCache {
	return &ResponseCache{rdb: rdb, ttl: 5 * time.Minute}
}

// key scopes entries by the identity AuthMiddleware resolved. The backend
// filters most families by the bearer token (a patient's profile, a
// department's tickets), so two users hitting the same URI must never share
// an entry.
func (rc *ResponseCache) key(family, userID, uri string) string {
	return "gw:cache:" + family + ":" + userID + ":" + uri
}

func (rc *ResponseCache) indexKey(family string) string {
	return "gw:cache_index:" + family
}

// Middleware serves cached GETs and invalidates the family on any other
// method after the proxy has handled it.
func (rc *ResponseCache) Middleware(family string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if c.Request.Method != http.MethodGet {
			c.Next()
			rc.Invalidate(ctx, family)
			return
		}

		key := rc.key(family, c.GetString("userId"), c.Request.URL.RequestURI())
		if payload, err := rc.rdb.Get(ctx, key).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json", payload)
			c.Abort()
			return
		}

		capture := &bodyCapture{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = capture
		c.Next()

		if capture.Status() == http.StatusOK && capture.buf.Len() > 0 {
			if err := rc.rdb.Set(ctx, key, capture.buf.Bytes(), rc.ttl).Err(); err != nil {
				log.Printf("[CACHE] Failed to store %s: %v", key, err)
				return
			}
			rc.rdb.SAdd(ctx, rc.indexKey(family), key)
			rc.rdb.Expire(ctx, rc.indexKey(family), rc.ttl)
		}
	}
}

// Invalidate drops every cached entry of a family.
func (rc *ResponseCache) Invalidate(ctx context.Context, family string) {
	index := rc.indexKey(family)
	keys, err := rc.rdb.SMembers(ctx, index).Result()
	if err != nil {
		log.Printf("[CACHE] Failed to list %s: %v", index, err)
		return
	}
	if len(keys) > 0 {
		if err := rc.rdb.Del(ctx, keys...).Err(); err != nil {
			log.Printf("[CACHE] Failed to invalidate %s: %v", family, err)
		}
	}
	rc.rdb.Del(ctx, index)
}

// bodyCapture tees the proxied response body so it can be cached after the
// handler chain finishes.
type bodyCapture struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCapture) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
