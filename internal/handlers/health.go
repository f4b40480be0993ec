package handlers

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// HealthChecker defines the interface for checking service health.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// RedisHealthChecker adapts redis.Client to HealthChecker interface.
type RedisHealthChecker struct {
	client *redis.Client
}

// NewRedisHealthChecker creates a new Redis health checker.
func NewRedisHealthChecker(client *redis.Client) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// Ping checks Redis connectivity.
func (r *RedisHealthChecker) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// HealthHandler reports the health of the service and its link store.
type HealthHandler struct {
	linkStore HealthChecker
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(linkStore HealthChecker) *HealthHandler {
	return &HealthHandler{linkStore: linkStore}
}

// HealthResponse is the response for the health check endpoint.
type HealthResponse struct {
	Body struct {
		Status    string `json:"status"`
		LinkStore string `json:"linkStore"`
	}
}

// Check performs a health check of the application and its dependencies.
func (h *HealthHandler) Check(ctx context.Context, _ *struct{}) (*HealthResponse, error) {
	resp := &HealthResponse{}
	resp.Body.Status = "ok"

	if err := h.linkStore.Ping(ctx); err != nil {
		resp.Body.LinkStore = "unhealthy"
		resp.Body.Status = "degraded"
	} else {
		resp.Body.LinkStore = "healthy"
	}

	return resp, nil
}
