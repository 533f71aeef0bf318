package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Fivegen-LLC/wol-agent/infrastructure"
	"github.com/Fivegen-LLC/wol-agent/internal/constants"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/httpserver"
)

func registerRoutes(router *mux.Router, injector infrastructure.IInjector) {
	gateService := injector.InjectGateService()
	wakeHandler := injector.InjectWakeHandler()
	authHandler := injector.InjectAuthHandler()
	captchaHandler := injector.InjectCaptchaHandler()
	allowlistHandler := injector.InjectAllowlistHandler()
	healthHandler := injector.InjectHealthHandler()

	router.Use(
		httpserver.RecoverMiddleware,
		httpserver.AccessLogMiddleware(gateService.ClientIP),
		httpserver.SecurityHeadersMiddleware,
	)

	// open routes
	router.HandleFunc(constants.RouteHealth, healthHandler.Health).Methods(http.MethodGet)
	router.HandleFunc(constants.RouteCaptcha, captchaHandler.GetCaptcha).Methods(http.MethodGet)
	router.HandleFunc(constants.RouteCaptchaRefresh, captchaHandler.GetCaptcha).Methods(http.MethodGet)
	router.HandleFunc(constants.RouteLogin, authHandler.Login).Methods(http.MethodPost)
	router.HandleFunc(constants.RouteLogout, authHandler.Logout).Methods(http.MethodPost)

	// wake routes, trusted address or token
	router.Handle(constants.RouteWake, gateService.RequireAccess(http.HandlerFunc(wakeHandler.Wake))).Methods(http.MethodPost)
	router.Handle(constants.RouteWakeAdvanced, gateService.RequireAccess(http.HandlerFunc(wakeHandler.WakeAdvanced))).Methods(http.MethodPost)
	router.Handle(constants.RouteInterfaces, gateService.RequireAccess(http.HandlerFunc(wakeHandler.ListInterfaces))).Methods(http.MethodGet)

	// whitelist routes, management needs a token
	for _, routes := range []struct {
		list, add, remove, check string
	}{
		{
			list:   constants.RouteWhitelist,
			add:    constants.RouteWhitelistAdd,
			remove: constants.RouteWhitelistRemove,
			check:  constants.RouteWhitelistCheck,
		},
		{
			list:   constants.RouteLegacyWhitelist,
			add:    constants.RouteLegacyWhitelistAdd,
			remove: constants.RouteLegacyWhitelistRemove,
			check:  constants.RouteLegacyWhitelistCheck,
		},
	} {
		router.Handle(routes.list, gateService.RequireToken(http.HandlerFunc(allowlistHandler.List))).Methods(http.MethodGet)
		router.Handle(routes.add, gateService.RequireToken(http.HandlerFunc(allowlistHandler.Add))).Methods(http.MethodPost)
		router.Handle(routes.remove, gateService.RequireToken(http.HandlerFunc(allowlistHandler.Remove))).Methods(http.MethodPost)
		router.HandleFunc(routes.check, allowlistHandler.Check).Methods(http.MethodGet)
	}
}
