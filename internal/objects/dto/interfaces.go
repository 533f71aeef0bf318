package dto

type NetworkInterface struct {
	Name       string  `json:"name"`
	IPAddress  string  `json:"ip_address"`
	Netmask    string  `json:"netmask"`
	Broadcast  *string `json:"broadcast"`
	MacAddress *string `json:"mac_address"`
}

type InterfacesResponse struct {
	Interfaces []NetworkInterface `json:"interfaces"`
	Count      int                `json:"count"`
}
