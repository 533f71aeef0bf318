package dto

type WakeRequest struct {
	MacAddress string `json:"mac_address" validate:"required"`
}

type AdvancedWakeRequest struct {
	MacAddress       string  `json:"mac_address" validate:"required"`
	Interface        *string `json:"interface,omitempty" validate:"omitempty,min=1,max=64"`
	BroadcastAddress *string `json:"broadcast_address,omitempty" validate:"omitempty,ipv4"`
	Port             *int    `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
}

type WakeResponse struct {
	Success           bool    `json:"success"`
	Message           string  `json:"message"`
	MacAddress        string  `json:"mac_address"`
	InterfaceUsed     *string `json:"interface_used"`
	BroadcastAddress  *string `json:"broadcast_address"`
	BroadcastFallback bool    `json:"broadcast_fallback"`
	Port              *int    `json:"port,omitempty"`
}
