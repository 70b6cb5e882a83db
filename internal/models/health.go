package models

type Health struct {
	Status    string `json:"status" validate:"required"`
	Timestamp string `json:"timestamp,omitempty"`
}

func (h *Health) IsHealthy() bool {
	return h.Status == "healthy"
}
