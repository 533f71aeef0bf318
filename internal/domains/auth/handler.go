package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/wol-agent/internal/constants"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/gate"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/httpserver"
	"github.com/Fivegen-LLC/wol-agent/internal/entities"
	"github.com/Fivegen-LLC/wol-agent/internal/objects/dto"
)

const (
	messageLoginSucceeded   = "Login successful"
	messageCaptchaRejected  = "Captcha is incorrect or expired"
	messageCredentialsWrong = "Invalid username or password"
	messageLoggedOut        = "Logged out"
)

type (
	ICaptchaService interface {
		Verify(id, text string) bool
	}

	ICredentialService interface {
		VerifyCredentials(username, password string) bool
	}

	ICredentialIssuer interface {
		IssueCredential(username string) (credential entities.Credential, err error)
		RevokeCredential(value string) (err error)
		CookieName() string
	}

	IClientIPResolver interface {
		ClientIP(r *http.Request) string
	}

	Handler struct {
		captchaService    ICaptchaService
		credentialService ICredentialService
		credentialIssuer  ICredentialIssuer
		clientIPResolver  IClientIPResolver

		validate *validator.Validate
	}
)

func NewHandler(captchaService ICaptchaService, credentialService ICredentialService, credentialIssuer ICredentialIssuer, clientIPResolver IClientIPResolver) *Handler {
	return &Handler{
		captchaService:    captchaService,
		credentialService: credentialService,
		credentialIssuer:  credentialIssuer,
		clientIPResolver:  clientIPResolver,

		validate: validator.New(),
	}
}

// Login consumes the captcha first and only then checks credentials.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func() {
		if err != nil {
			httpserver.WriteError(w, err)
		}
	}()

	var requestBody dto.LoginRequest
	if err = httpserver.DecodeAndValidate(r, h.validate, &requestBody); err != nil {
		err = fmt.Errorf("Login: %w", err)
		return
	}

	clientIP := h.clientIPResolver.ClientIP(r)
	if !h.captchaService.Verify(requestBody.CaptchaID, requestBody.CaptchaText) {
		log.Warn().
			Str("client ip", clientIP).
			Msg("Login: captcha rejected")

		httpserver.WriteJSON(w, http.StatusOK, dto.LoginResponse{
			Success: false,
			Message: messageCaptchaRejected,
		})
		return
	}

	if !h.credentialService.VerifyCredentials(requestBody.Username, requestBody.Password) {
		log.Warn().
			Str("client ip", clientIP).
			Msg("Login: invalid credentials")

		w.Header().Set(constants.HeaderAuthenticate, "Bearer")
		httpserver.WriteJSON(w, http.StatusUnauthorized, dto.LoginResponse{
			Success: false,
			Message: messageCredentialsWrong,
		})
		return
	}

	credential, err := h.credentialIssuer.IssueCredential(requestBody.Username)
	if err != nil {
		err = fmt.Errorf("Login: %w", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     credential.CookieName,
		Value:    credential.Value,
		Path:     "/",
		Expires:  credential.ExpiresAt,
		MaxAge:   int(time.Until(credential.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteStrictMode,
	})

	log.Info().
		Str("username", requestBody.Username).
		Str("client ip", clientIP).
		Str("credential type", credential.Type).
		Msg("Login: operator logged in")

	httpserver.WriteJSON(w, http.StatusOK, dto.LoginResponse{
		Success:     true,
		Message:     messageLoginSucceeded,
		AccessToken: lo.ToPtr(credential.Value),
		TokenType:   lo.ToPtr(credential.Type),
	})
}

// Logout drops the credential cookie and revokes server-side state where there is any.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	cookieName := h.credentialIssuer.CookieName()
	if credential := gate.ExtractCredential(r, cookieName); lo.IsNotEmpty(credential) {
		if err := h.credentialIssuer.RevokeCredential(credential); err != nil {
			log.Warn().Err(err).Msg("Logout: revoke credential error")
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteStrictMode,
	})

	httpserver.WriteJSON(w, http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: messageLoggedOut,
	})
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
