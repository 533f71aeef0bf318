package health

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Fivegen-LLC/wol-agent/internal/constants"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/httpserver"
	"github.com/Fivegen-LLC/wol-agent/internal/objects/dto"
)

const statusHealthy = "healthy"

type (
	// ISessionCounter reports the number of live login artifacts held in memory.
	ISessionCounter interface {
		Count() int
	}

	Handler struct {
		sessionCounter ISessionCounter
		startedAt      time.Time
		now            func() time.Time
	}
)

func NewHandler(sessionCounter ISessionCounter, startedAt time.Time, now func() time.Time) *Handler {
	return &Handler{
		sessionCounter: sessionCounter,
		startedAt:      startedAt,
		now:            now,
	}
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	now := h.now()
	httpserver.WriteJSON(w, http.StatusOK, dto.HealthResponse{
		Status:    statusHealthy,
		Version:   constants.ServiceVersion,
		Uptime:    FormatUptime(now.Sub(h.startedAt)),
		Timestamp: now.UTC().Format(time.RFC3339),
		Sessions:  h.sessionCounter.Count(),
	})
}

// FormatUptime renders d as "Hh Mm Ss", hours are not folded into days.
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := int64(d / time.Second)
	return fmt.Sprintf("%dh %dm %ds", total/3600, total%3600/60, total%60)
}
