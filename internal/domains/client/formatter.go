package client

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/wol-agent/internal/errs"
	"github.com/Fivegen-LLC/wol-agent/internal/objects/dto"
)

const pngDataURLPrefix = "data:image/png;base64,"

var (
	interfaceHeader = table.Row{"#", "NAME", "IP", "NETMASK", "BROADCAST", "MAC"}
	whitelistHeader = table.Row{"#", "ENTRY", "TYPE", "DESCRIPTION"}
)

// FormatInterfaces renders the interface inventory as a table.
func FormatInterfaces(resp dto.InterfacesResponse) string {
	t := table.NewWriter()
	t.AppendHeader(interfaceHeader)
	for i, iface := range resp.Interfaces {
		t.AppendRow(table.Row{
			i + 1,
			iface.Name,
			iface.IPAddress,
			iface.Netmask,
			lo.FromPtr(iface.Broadcast),
			lo.FromPtr(iface.MacAddress),
		})
	}
	t.AppendFooter(table.Row{"", "total", resp.Count})

	return t.Render()
}

// FormatWhitelist renders allowlist entries as a table.
func FormatWhitelist(resp dto.WhitelistResponse) string {
	t := table.NewWriter()
	t.AppendHeader(whitelistHeader)
	for i, entry := range resp.Whitelist {
		t.AppendRow(table.Row{i + 1, entry.IP, entry.Type, entry.Description})
	}
	t.AppendFooter(table.Row{"", "total", resp.Count})

	return t.Render()
}

func FormatWake(resp dto.WakeResponse) string {
	t := table.NewWriter()
	t.AppendRows([]table.Row{
		{"success", resp.Success},
		{"message", resp.Message},
		{"mac address", resp.MacAddress},
		{"interface", lo.FromPtr(resp.InterfaceUsed)},
		{"broadcast", lo.FromPtr(resp.BroadcastAddress)},
		{"broadcast fallback", resp.BroadcastFallback},
	})

	return t.Render()
}

// DecodeCaptchaImage extracts PNG bytes from the data URL served with a challenge.
func DecodeCaptchaImage(dataURL string) (image []byte, err error) {
	encoded, ok := strings.CutPrefix(dataURL, pngDataURLPrefix)
	if !ok {
		return nil, fmt.Errorf("DecodeCaptchaImage: %w: unexpected image format", errs.ErrInvalidParameters)
	}

	if image, err = base64.StdEncoding.DecodeString(encoded); err != nil {
		return nil, fmt.Errorf("DecodeCaptchaImage: %w", err)
	}

	return image, nil
}
