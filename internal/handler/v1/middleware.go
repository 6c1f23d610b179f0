package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ayushbridge/ayushbridge/internal/config"
	"github.com/ayushbridge/ayushbridge/internal/domain"
	"github.com/ayushbridge/ayushbridge/internal/service"
	"github.com/ayushbridge/ayushbridge/pkg/auth"
	"github.com/ayushbridge/ayushbridge/pkg/metrics"
)

const identityKey = "session_identity"

// RequireAuth verifies the bearer token and stores the session identity in
// the request context. A missing or malformed header is reported as 401;
// a well-formed but expired or tampered token as 403. Both deny.
func RequireAuth(authSvc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "no token provided"})
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "no token"})
			return
		}

		identity, err := authSvc.Verify(token)
		if err != nil {
			if errors.Is(err, auth.ErrTokenMalformed) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "malformed token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "invalid token"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

func sessionIdentity(c *gin.Context) domain.Claims {
	v, _ := c.Get(identityKey)
	identity, _ := v.(domain.Claims)
	return identity
}

// Metrics instruments every request with the request counter, latency
// histogram and in-flight gauge.
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		collector.InFlightGauge.Inc()

		c.Next()

		collector.InFlightGauge.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		collector.RequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		collector.RequestDuration.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(started).Seconds())
	}
}

// Tracing opens a span per request.
func Tracing(serviceName string) gin.HandlerFunc {
	tracer := otel.Tracer(serviceName)
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), c.Request.Method+" "+c.FullPath())
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		span.SetAttributes(attribute.Int("http.status_code", c.Writer.Status()))
	}
}

// CORS mirrors the permissive policy of the original server.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	origins := strings.Join(cfg.AllowedOrigins, ", ")
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(int(cfg.MaxAge.Seconds()))

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origins)
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Max-Age", maxAge)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
