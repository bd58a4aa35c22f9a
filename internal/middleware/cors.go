package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls which origins may call the API.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowPermissive  bool // allow localhost and private subnets
	AllowCredentials bool
}

// DefaultCORSConfig returns a strict config in production and a
// permissive one everywhere else.
func DefaultCORSConfig(environment string) CORSConfig {
	if environment == "production" {
		return CORSConfig{
			AllowedOrigins:   []string{},
			AllowPermissive:  false,
			AllowCredentials: true,
		}
	}
	return CORSConfig{
		AllowedOrigins:   []string{},
		AllowPermissive:  true,
		AllowCredentials: true,
	}
}

// CORS handles cross-origin requests per the given config.
func (m Middleware) CORS(cfg CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && (allowed[origin] || (cfg.AllowPermissive && isLocalOrigin(origin))) {
			c.Header("Access-Control-Allow-Origin", origin)
			if cfg.AllowCredentials {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func isLocalOrigin(origin string) bool {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(origin, "http://"), "https://")
	host := trimmed
	if i := strings.IndexByte(trimmed, ':'); i >= 0 {
		host = trimmed[:i]
	}
	return host == "localhost" || host == "127.0.0.1" ||
		strings.HasPrefix(host, "192.168.") || strings.HasPrefix(host, "10.")
}
