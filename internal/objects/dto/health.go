package dto

type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
	Sessions  int    `json:"sessions"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
