package allowlist

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Fivegen-LLC/wol-agent/internal/domains/httpserver"
	"github.com/Fivegen-LLC/wol-agent/internal/entities"
	"github.com/Fivegen-LLC/wol-agent/internal/objects/dto"
)

type (
	IAllowlistService interface {
		IsMember(ip string) bool
		Add(value string) (canonical string, added bool, err error)
		Remove(value string) (canonical string, err error)
		List() entities.AllowlistEntries
	}

	IClientIPResolver interface {
		ClientIP(r *http.Request) string
	}

	Handler struct {
		allowlistService IAllowlistService
		clientIPResolver IClientIPResolver

		validate *validator.Validate
	}
)

func NewHandler(allowlistService IAllowlistService, clientIPResolver IClientIPResolver) *Handler {
	return &Handler{
		allowlistService: allowlistService,
		clientIPResolver: clientIPResolver,

		validate: validator.New(),
	}
}

func (h *Handler) List(w http.ResponseWriter, _ *http.Request) {
	httpserver.WriteJSON(w, http.StatusOK, h.allowlistService.List().ToDto())
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func() {
		if err != nil {
			httpserver.WriteError(w, err)
		}
	}()

	var requestBody dto.WhitelistChangeRequest
	if err = httpserver.DecodeAndValidate(r, h.validate, &requestBody); err != nil {
		err = fmt.Errorf("Add: %w", err)
		return
	}

	canonical, added, err := h.allowlistService.Add(requestBody.IP)
	if err != nil {
		err = fmt.Errorf("Add: %w", err)
		return
	}

	message := fmt.Sprintf("%s added to whitelist", canonical)
	if !added {
		message = fmt.Sprintf("%s is already in whitelist", canonical)
	}

	httpserver.WriteJSON(w, http.StatusOK, dto.WhitelistChangeResponse{
		Success:   true,
		Message:   message,
		IP:        canonical,
		Whitelist: h.allowlistService.List().Values(),
	})
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func() {
		if err != nil {
			httpserver.WriteError(w, err)
		}
	}()

	var requestBody dto.WhitelistChangeRequest
	if err = httpserver.DecodeAndValidate(r, h.validate, &requestBody); err != nil {
		err = fmt.Errorf("Remove: %w", err)
		return
	}

	canonical, err := h.allowlistService.Remove(requestBody.IP)
	if err != nil {
		err = fmt.Errorf("Remove: %w", err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, dto.WhitelistChangeResponse{
		Success:   true,
		Message:   fmt.Sprintf("%s removed from whitelist", canonical),
		IP:        canonical,
		Whitelist: h.allowlistService.List().Values(),
	})
}

// Check tells the caller whether its own address is trusted.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	clientIP := h.clientIPResolver.ClientIP(r)
	response := dto.WhitelistCheckResponse{
		ClientIP:    clientIP,
		InWhitelist: h.allowlistService.IsMember(clientIP),
		Message:     "IP is not in whitelist",
	}
	if response.InWhitelist {
		response.Message = "IP is in whitelist"
	}

	httpserver.WriteJSON(w, http.StatusOK, response)
}
