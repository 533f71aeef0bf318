package constants

const (
	// out events.
	MQWakeEvent = "wol.events.wake"
)
