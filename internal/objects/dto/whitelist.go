package dto

type WhitelistEntry struct {
	IP          string `json:"ip"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type WhitelistResponse struct {
	Whitelist []WhitelistEntry `json:"whitelist"`
	Count     int              `json:"count"`
}

// WhitelistChangeRequest is validated leniently here; the allowlist itself
// decides whether the value is an address or a network.
type WhitelistChangeRequest struct {
	IP string `json:"ip" validate:"required,max=64"`
}

type WhitelistChangeResponse struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	IP        string   `json:"ip"`
	Whitelist []string `json:"whitelist,omitempty"`
}

type WhitelistCheckResponse struct {
	ClientIP    string `json:"client_ip"`
	InWhitelist bool   `json:"in_whitelist"`
	Message     string `json:"message"`
}
