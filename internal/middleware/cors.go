package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// wildcardOrigin matches origins of the form scheme://<label>suffix where
// <label> is a single hostname label. Patterns look like
// "https://*.example.com".
type wildcardOrigin struct {
	scheme string
	suffix string
}

// parseWildcardOrigin parses a wildcard origin pattern. Returns nil if the
// pattern is not a valid wildcard (exact origins are handled separately).
func parseWildcardOrigin(pattern string) *wildcardOrigin {
	var scheme string
	switch {
	case strings.HasPrefix(pattern, "https://"):
		scheme = "https://"
	case strings.HasPrefix(pattern, "http://"):
		scheme = "http://"
	default:
		return nil
	}

	rest := strings.TrimPrefix(pattern, scheme)
	if !strings.HasPrefix(rest, "*.") {
		return nil
	}
	suffix := rest[1:] // keep the leading dot
	if strings.Contains(suffix, "*") {
		return nil
	}
	// The wildcard must cover a subdomain of a real domain, so the suffix
	// needs at least two labels (".example.com", not ".com").
	if strings.Count(suffix, ".") < 2 {
		return nil
	}
	return &wildcardOrigin{scheme: scheme, suffix: suffix}
}

// matches reports whether origin is scheme + one label + suffix.
func (w *wildcardOrigin) matches(origin string) bool {
	if !strings.HasPrefix(origin, w.scheme) {
		return false
	}
	host := strings.TrimPrefix(origin, w.scheme)
	if !strings.HasSuffix(host, w.suffix) {
		return false
	}
	label := strings.TrimSuffix(host, w.suffix)
	return label != "" && !strings.ContainsAny(label, "./")
}

// CORS handles cross-origin requests. CORS_ALLOWED_ORIGINS is a
// comma-separated list of exact origins and wildcard patterns; when unset all
// origins are allowed.
func CORS() gin.HandlerFunc {
	allowedOriginsStr := os.Getenv("CORS_ALLOWED_ORIGINS")
	allowAll := allowedOriginsStr == ""

	var exactOrigins []string
	var wildcards []*wildcardOrigin
	if !allowAll {
		for _, pattern := range strings.Split(allowedOriginsStr, ",") {
			pattern = strings.TrimSpace(pattern)
			if w := parseWildcardOrigin(pattern); w != nil {
				wildcards = append(wildcards, w)
				continue
			}
			exactOrigins = append(exactOrigins, pattern)
		}
	}

	originAllowed := func(origin string) bool {
		for _, allowed := range exactOrigins {
			if origin == allowed {
				return true
			}
		}
		for _, w := range wildcards {
			if w.matches(origin) {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else if originAllowed(origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		} else if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
