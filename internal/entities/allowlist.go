package entities

import (
	"time"

	"github.com/Fivegen-LLC/wol-agent/internal/objects/dto"
)

const (
	AllowlistEntryAddress = "address"
	AllowlistEntryNetwork = "network"
)

// AllowlistSnapshot is the on-disk layout of the allowlist file.
type AllowlistSnapshot struct {
	Whitelist []string  `json:"whitelist"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AllowlistEntry struct {
	Value       string
	Type        string
	Description string
}

type AllowlistEntries []AllowlistEntry

func (e AllowlistEntry) ToDto() dto.WhitelistEntry {
	return dto.WhitelistEntry{
		IP:          e.Value,
		Type:        e.Type,
		Description: e.Description,
	}
}

func (e AllowlistEntries) ToDto() dto.WhitelistResponse {
	entries := make([]dto.WhitelistEntry, 0, len(e))
	for _, entry := range e {
		entries = append(entries, entry.ToDto())
	}

	return dto.WhitelistResponse{
		Whitelist: entries,
		Count:     len(entries),
	}
}

func (e AllowlistEntries) Values() []string {
	values := make([]string, 0, len(e))
	for _, entry := range e {
		values = append(values, entry.Value)
	}

	return values
}
