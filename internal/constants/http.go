package constants

const (
	RouteHealth         = "/health"
	RouteWake           = "/wake"
	RouteWakeAdvanced   = "/wake/advanced"
	RouteInterfaces     = "/interfaces"
	RouteCaptcha        = "/api/captcha"
	RouteCaptchaRefresh = "/captcha/refresh"
	RouteLogin          = "/api/login"
	RouteLogout         = "/api/logout"

	RouteWhitelist       = "/api/whitelist"
	RouteWhitelistAdd    = "/api/whitelist/add"
	RouteWhitelistRemove = "/api/whitelist/remove"
	RouteWhitelistCheck  = "/api/whitelist/check"

	// legacy aliases served by the single-file releases.
	RouteLegacyWhitelist       = "/whitelist"
	RouteLegacyWhitelistAdd    = "/whitelist/add"
	RouteLegacyWhitelistRemove = "/whitelist/remove"
	RouteLegacyWhitelistCheck  = "/whitelist/check"
)

const (
	HeaderRequestID     = "X-Request-ID"
	HeaderForwardedFor  = "X-Forwarded-For"
	HeaderRealIP        = "X-Real-IP"
	HeaderAuthorization = "Authorization"
	HeaderAuthenticate  = "WWW-Authenticate"
)
