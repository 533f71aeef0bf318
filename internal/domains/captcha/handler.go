package captcha

import (
	"fmt"
	"net/http"

	"github.com/Fivegen-LLC/wol-agent/internal/domains/httpserver"
	"github.com/Fivegen-LLC/wol-agent/internal/entities"
	"github.com/Fivegen-LLC/wol-agent/internal/objects/dto"
)

type (
	ICaptchaService interface {
		Create() (issued entities.IssuedCaptcha, err error)
	}

	Handler struct {
		captchaService ICaptchaService
	}
)

func NewHandler(captchaService ICaptchaService) *Handler {
	return &Handler{
		captchaService: captchaService,
	}
}

// GetCaptcha issues a fresh challenge. Refreshing is just asking for another one.
func (h *Handler) GetCaptcha(w http.ResponseWriter, _ *http.Request) {
	issued, err := h.captchaService.Create()
	if err != nil {
		httpserver.WriteError(w, fmt.Errorf("GetCaptcha: %w", err))
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, dto.CaptchaResponse{
		CaptchaID:    issued.ID,
		CaptchaImage: issued.ImageURL,
	})
}
