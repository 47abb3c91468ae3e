package proxy

import (
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// CreateProxy forwards a route family to the hospital backend, rewriting the
// gateway-facing prefix into the backend's own path layout. Responses are
// flushed periodically so large attachment and report downloads stream
// instead of buffering whole.
func CreateProxy(targetHost, stripPrefix, addPrefix string) gin.HandlerFunc {
	target, err := url.Parse(targetHost)
	if err != nil {
		log.Fatalf("Invalid backend URL %q: %v", targetHost, err)
	}

	rp := &httputil.ReverseProxy{
		Director: func(req *http.Request) {
			req.Header.Set("X-Forwarded-Host", req.Host)
			req.Header.Del("X-Forwarded-For")

			req.URL.Scheme = target.Scheme
			req.URL.Host = target.Host
			req.URL.Path = rewritePath(req.URL.Path, stripPrefix, addPrefix)
			req.Host = target.Host
		},
		FlushInterval: 100 * time.Millisecond,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.Printf("[PROXY] %s %s: %v", r.Method, r.URL.Path, err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"error":"Backend unavailable"}`))
		},
	}

	return func(c *gin.Context) {
		rp.ServeHTTP(c.Writer, c.Request)
	}
}

// rewritePath swaps the gateway prefix for the backend one, keeping the tail
// of the path intact.
func rewritePath(path, stripPrefix, addPrefix string) string {
	tail := strings.TrimPrefix(path, stripPrefix)
	switch {
	case strings.HasSuffix(addPrefix, "/") && strings.HasPrefix(tail, "/"):
		return addPrefix + strings.TrimPrefix(tail, "/")
	case !strings.HasSuffix(addPrefix, "/") && !strings.HasPrefix(tail, "/") && tail != "":
		return addPrefix + "/" + tail
	default:
		return addPrefix + tail
	}
}
