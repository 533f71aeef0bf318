package entities

import (
	"github.com/Fivegen-LLC/wol-agent/internal/objects/dto"
)

// NetworkInterface is a snapshot of one host interface, built fresh on every inventory query.
type NetworkInterface struct {
	Name       string
	IPAddress  string
	Netmask    string
	Broadcast  string
	MacAddress string
}

type NetworkInterfaces []NetworkInterface

func (i NetworkInterface) HasBroadcast() bool {
	return i.Broadcast != ""
}

func (i NetworkInterface) ToDto() dto.NetworkInterface {
	iface := dto.NetworkInterface{
		Name:      i.Name,
		IPAddress: i.IPAddress,
		Netmask:   i.Netmask,
	}
	if i.Broadcast != "" {
		broadcast := i.Broadcast
		iface.Broadcast = &broadcast
	}
	if i.MacAddress != "" {
		mac := i.MacAddress
		iface.MacAddress = &mac
	}

	return iface
}

func (i NetworkInterfaces) ToDto() dto.InterfacesResponse {
	interfaces := make([]dto.NetworkInterface, 0, len(i))
	for _, iface := range i {
		interfaces = append(interfaces, iface.ToDto())
	}

	return dto.InterfacesResponse{
		Interfaces: interfaces,
		Count:      len(interfaces),
	}
}
