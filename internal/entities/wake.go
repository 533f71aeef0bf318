package entities

import (
	"time"

	"github.com/Fivegen-LLC/wol-agent/internal/objects/dto"
)

type WakeParams struct {
	MacAddress       string
	InterfaceName    string
	BroadcastAddress string
	Port             int
	ClientIP         string
}

// WakeResult describes a single send attempt. Err holds the classified
// failure (see internal/errs) and is never serialized.
type WakeResult struct {
	Success           bool
	Message           string
	MacAddress        string
	InterfaceUsed     string
	BroadcastUsed     string
	BroadcastFallback bool
	Port              int
	Err               error
}

type WakeEvent struct {
	MacAddress       string    `json:"mac_address"`
	InterfaceUsed    string    `json:"interface_used,omitempty"`
	BroadcastAddress string    `json:"broadcast_address,omitempty"`
	Port             int       `json:"port,omitempty"`
	Success          bool      `json:"success"`
	Message          string    `json:"message"`
	ClientIP         string    `json:"client_ip,omitempty"`
	At               time.Time `json:"at"`
}

func NewWakeEvent(params WakeParams, result WakeResult, at time.Time) WakeEvent {
	return WakeEvent{
		MacAddress:       result.MacAddress,
		InterfaceUsed:    result.InterfaceUsed,
		BroadcastAddress: result.BroadcastUsed,
		Port:             result.Port,
		Success:          result.Success,
		Message:          result.Message,
		ClientIP:         params.ClientIP,
		At:               at.UTC(),
	}
}

func (r WakeResult) ToDto() dto.WakeResponse {
	resp := dto.WakeResponse{
		Success:           r.Success,
		Message:           r.Message,
		MacAddress:        r.MacAddress,
		BroadcastFallback: r.BroadcastFallback,
	}
	if r.InterfaceUsed != "" {
		iface := r.InterfaceUsed
		resp.InterfaceUsed = &iface
	}
	if r.BroadcastUsed != "" {
		broadcast := r.BroadcastUsed
		resp.BroadcastAddress = &broadcast
	}
	if r.Port != 0 {
		port := r.Port
		resp.Port = &port
	}

	return resp
}
