package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/decikit/decikit/internal/logging"
	"github.com/decikit/decikit/internal/middleware"
	"github.com/decikit/decikit/internal/monitoring"
	"github.com/decikit/decikit/internal/service"
	"github.com/decikit/decikit/internal/shared/id"
	"github.com/decikit/decikit/internal/types"
)

// Version is reported by the root and health endpoints.
const Version = "0.1.0"

const defaultDiscoverLimit = 5

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	log      *logging.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, log *logging.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		metrics:  metrics,
		log:      log,
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "decikit",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	snap := h.metrics.GetSnapshot()

	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"version":          Version,
		"uptime_seconds":   h.metrics.UptimeSeconds(),
		"service_registry": h.registry.Stats(),
		"requests": gin.H{
			"total":  snap.TotalRequests,
			"errors": snap.TotalErrors,
		},
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// DiscoverServices discovers relevant services for a query
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultDiscoverLimit
	}

	services := h.registry.Discover(req.Query, limit)

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Query,
		"services": services,
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	serviceID := req.ToolID
	if i := strings.IndexByte(serviceID, '.'); i > 0 {
		serviceID = serviceID[:i]
	}

	rid := c.GetString(middleware.RequestIDKey)
	ip := c.ClientIP()
	callCtx := &types.Context{RequestID: &rid, ClientIP: &ip}
	callID := id.NewCallID()

	timer := monitoring.NewTimer(h.metrics, serviceID, req.ToolID)
	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, callCtx)
	if err != nil {
		timer.Stop("error")
		h.log.Warn("tool execution failed",
			zap.String("tool_id", req.ToolID),
			zap.String("request_id", rid),
			zap.String("call_id", callID.String()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.log.Debug("tool executed",
		zap.String("tool_id", req.ToolID),
		zap.String("request_id", rid),
		zap.String("call_id", callID.String()),
		zap.Bool("success", result.Success),
	)

	if result.Success {
		timer.Stop("success")
	} else {
		timer.Stop("failure")
	}

	c.JSON(http.StatusOK, result)
}
