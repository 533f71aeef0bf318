package wol

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/wol-agent/internal/domains/httpserver"
	"github.com/Fivegen-LLC/wol-agent/internal/entities"
	"github.com/Fivegen-LLC/wol-agent/internal/objects/dto"
)

type (
	IWakeService interface {
		Wake(ctx context.Context, params entities.WakeParams) (result entities.WakeResult)
	}

	IClientIPResolver interface {
		ClientIP(r *http.Request) string
	}

	Handler struct {
		wakeService      IWakeService
		interfaceService IInterfaceService
		clientIPResolver IClientIPResolver

		validate *validator.Validate
	}
)

func NewHandler(wakeService IWakeService, interfaceService IInterfaceService, clientIPResolver IClientIPResolver) *Handler {
	return &Handler{
		wakeService:      wakeService,
		interfaceService: interfaceService,
		clientIPResolver: clientIPResolver,

		validate: validator.New(),
	}
}

// Wake sends a magic packet through the default interface.
func (h *Handler) Wake(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func() {
		if err != nil {
			httpserver.WriteError(w, err)
		}
	}()

	var requestBody dto.WakeRequest
	if err = httpserver.DecodeAndValidate(r, h.validate, &requestBody); err != nil {
		err = fmt.Errorf("Wake: %w", err)
		return
	}

	h.writeResult(w, h.wakeService.Wake(r.Context(), entities.WakeParams{
		MacAddress: requestBody.MacAddress,
		ClientIP:   h.clientIPResolver.ClientIP(r),
	}))
}

// WakeAdvanced sends a magic packet with an optional interface, broadcast address and port.
func (h *Handler) WakeAdvanced(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func() {
		if err != nil {
			httpserver.WriteError(w, err)
		}
	}()

	var requestBody dto.AdvancedWakeRequest
	if err = httpserver.DecodeAndValidate(r, h.validate, &requestBody); err != nil {
		err = fmt.Errorf("WakeAdvanced: %w", err)
		return
	}

	h.writeResult(w, h.wakeService.Wake(r.Context(), entities.WakeParams{
		MacAddress:       requestBody.MacAddress,
		InterfaceName:    lo.FromPtr(requestBody.Interface),
		BroadcastAddress: lo.FromPtr(requestBody.BroadcastAddress),
		Port:             lo.FromPtr(requestBody.Port),
		ClientIP:         h.clientIPResolver.ClientIP(r),
	}))
}

// ListInterfaces returns the current interface inventory.
func (h *Handler) ListInterfaces(w http.ResponseWriter, _ *http.Request) {
	interfaces, err := h.interfaceService.ListInterfaces()
	if err != nil {
		httpserver.WriteError(w, fmt.Errorf("ListInterfaces: %w", err))
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, interfaces.ToDto())
}

func (h *Handler) writeResult(w http.ResponseWriter, result entities.WakeResult) {
	if result.Success {
		httpserver.WriteJSON(w, http.StatusOK, result.ToDto())
		return
	}

	httpserver.WriteJSON(w, httpserver.StatusForError(result.Err), result.ToDto())
}
