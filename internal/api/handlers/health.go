package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/osa911/contactapi/internal/api/dto/common"
)

// timestampLayout is RFC 3339 in UTC with millisecond precision
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type HealthHandler struct {
	message string
	now     func() time.Time

	mu   sync.Mutex
	last time.Time
}

func NewHealthHandler(brandName string) *HealthHandler {
	return &HealthHandler{
		message: brandName + " API is running",
		now:     time.Now,
	}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, common.HealthResponse{
		Success:   true,
		Message:   h.message,
		Timestamp: h.timestamp().Format(timestampLayout),
	})
}

// timestamp never goes backwards between calls, even if the wall clock is stepped back
func (h *HealthHandler) timestamp() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now().UTC().Truncate(time.Millisecond)
	if now.Before(h.last) {
		return h.last
	}
	h.last = now
	return now
}
