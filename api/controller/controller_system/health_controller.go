package controller_system

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger 存储连通性探测
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	store   Pinger
	timeout time.Duration
}

func NewHealthController(store Pinger, timeout time.Duration) *HealthController {
	return &HealthController{store: store, timeout: timeout}
}

func (c *HealthController) Healthz(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), c.timeout)
	defer cancel()

	if err := c.store.Ping(pingCtx); err != nil {
		_ = ctx.Error(err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
