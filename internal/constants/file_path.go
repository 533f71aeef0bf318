package constants

const (
	DefaultLogfilePath   = "/var/log/wol/wol_agent.log"
	DefaultWhitelistPath = "/etc/wol/whitelist.json"
)
