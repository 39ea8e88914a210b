package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetClientIP returns the originating client address, preferring proxy headers.
func GetClientIP(c *gin.Context) string {
	// X-Forwarded-For may carry a chain; the first entry is the client.
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 && strings.TrimSpace(ips[0]) != "" {
			return strings.TrimSpace(ips[0])
		}
	}

	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr is "ip:port"; strip the port if present.
	ip := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		return host
	}
	return ip
}
