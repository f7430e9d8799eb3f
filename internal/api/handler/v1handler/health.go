package v1handler

import (
	"context"
	"phishguard/internal/api/specs/v1specs"
)

// Health reports whether scaler, classifier and attributor are loaded.
func (h *Handler) Health(_ context.Context) (v1specs.HealthRes, error) {
	if h.deps.Assessor != nil && h.deps.Assessor.Ready() {
		return &v1specs.Health{
			Status:      v1specs.HealthStatusHealthy,
			ModelLoaded: true,
			Message:     "AI Phishing Detection System is ready",
		}, nil
	}

	return &v1specs.HealthInternalServerError{
		Status:  v1specs.HealthStatusUnhealthy,
		Message: "Models not loaded",
	}, nil
}
