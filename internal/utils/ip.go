package utils

import (
	"net"

	"github.com/gin-gonic/gin"
)

// GetRealIP returns the client address used for rate limiting and logs.
// Forwarding headers (X-Forwarded-For, X-Real-IP) are honoured only when the direct peer is a
// trusted proxy, as configured on the engine with SetTrustedProxies.
func GetRealIP(c *gin.Context) string {
	ip := c.ClientIP()
	if ip != "" {
		return ip
	}

	// ClientIP gives up on malformed RemoteAddr values; fall back to whatever host part exists
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
