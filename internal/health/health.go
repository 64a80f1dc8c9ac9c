package health

import (
	"context"
	"time"

	"aqua-backend/internal/storage"
)

type HealthChecker struct {
	backend storage.Backend
}

type HealthStatus struct {
	Status  string        `json:"status"`
	Storage StorageHealth `json:"storage"`
}

type StorageHealth struct {
	Backend      string `json:"backend"`
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

func NewHealthChecker(backend storage.Backend) *HealthChecker {
	return &HealthChecker{backend: backend}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	storageHealth := h.checkStorage()

	status := "healthy"
	if storageHealth.Status != "healthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status:  status,
		Storage: storageHealth,
	}
}

func (h *HealthChecker) checkStorage() StorageHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.backend.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return StorageHealth{
			Backend:      h.backend.Name(),
			Status:       "unhealthy",
			ResponseTime: responseTime,
		}
	}

	return StorageHealth{
		Backend:      h.backend.Name(),
		Status:       "healthy",
		ResponseTime: responseTime,
	}
}
