package client

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/wol-agent/internal/constants"
	"github.com/Fivegen-LLC/wol-agent/internal/errs"
	"github.com/Fivegen-LLC/wol-agent/internal/objects/dto"
)

const requestTimeout = time.Second * 10

// Service is the operator-side client of the wake-on-lan service.
type Service struct {
	client *resty.Client
}

func NewService(baseURL, token string) *Service {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json")

	if lo.IsNotEmpty(token) {
		client.SetAuthToken(token)
	}

	return &Service{
		client: client,
	}
}

func (s *Service) Health() (resp dto.HealthResponse, err error) {
	if err = s.do(http.MethodGet, constants.RouteHealth, nil, &resp); err != nil {
		return resp, fmt.Errorf("Health: %w", err)
	}

	return resp, nil
}

func (s *Service) GetCaptcha() (resp dto.CaptchaResponse, err error) {
	if err = s.do(http.MethodGet, constants.RouteCaptcha, nil, &resp); err != nil {
		return resp, fmt.Errorf("GetCaptcha: %w", err)
	}

	return resp, nil
}

// Login reports a rejected captcha or bad credentials as an error carrying the server message.
func (s *Service) Login(request dto.LoginRequest) (resp dto.LoginResponse, err error) {
	httpResp, err := s.client.R().
		SetBody(request).
		SetResult(&resp).
		SetError(&resp).
		Post(constants.RouteLogin)
	if err != nil {
		return resp, fmt.Errorf("Login: %w", err)
	}

	switch {
	case httpResp.StatusCode() == http.StatusUnauthorized:
		return resp, fmt.Errorf("Login: %w: %s", errs.ErrInvalidCredentials, resp.Message)

	case httpResp.IsError():
		return resp, fmt.Errorf("Login: %w", apiError(httpResp, resp.Message))

	case !resp.Success:
		return resp, fmt.Errorf("Login: %w: %s", errs.ErrCaptchaMismatchOrExpired, resp.Message)
	}

	s.client.SetAuthToken(lo.FromPtr(resp.AccessToken))
	return resp, nil
}

func (s *Service) Logout() (err error) {
	var resp dto.MessageResponse
	if err = s.do(http.MethodPost, constants.RouteLogout, nil, &resp); err != nil {
		return fmt.Errorf("Logout: %w", err)
	}

	return nil
}

func (s *Service) Wake(macAddress string) (resp dto.WakeResponse, err error) {
	if resp, err = s.wake(constants.RouteWake, dto.WakeRequest{MacAddress: macAddress}); err != nil {
		return resp, fmt.Errorf("Wake: %w", err)
	}

	return resp, nil
}

func (s *Service) WakeAdvanced(request dto.AdvancedWakeRequest) (resp dto.WakeResponse, err error) {
	if resp, err = s.wake(constants.RouteWakeAdvanced, request); err != nil {
		return resp, fmt.Errorf("WakeAdvanced: %w", err)
	}

	return resp, nil
}

func (s *Service) ListInterfaces() (resp dto.InterfacesResponse, err error) {
	if err = s.do(http.MethodGet, constants.RouteInterfaces, nil, &resp); err != nil {
		return resp, fmt.Errorf("ListInterfaces: %w", err)
	}

	return resp, nil
}

func (s *Service) ListWhitelist() (resp dto.WhitelistResponse, err error) {
	if err = s.do(http.MethodGet, constants.RouteWhitelist, nil, &resp); err != nil {
		return resp, fmt.Errorf("ListWhitelist: %w", err)
	}

	return resp, nil
}

func (s *Service) AddWhitelist(ip string) (resp dto.WhitelistChangeResponse, err error) {
	if err = s.do(http.MethodPost, constants.RouteWhitelistAdd, dto.WhitelistChangeRequest{IP: ip}, &resp); err != nil {
		return resp, fmt.Errorf("AddWhitelist: %w", err)
	}

	return resp, nil
}

func (s *Service) RemoveWhitelist(ip string) (resp dto.WhitelistChangeResponse, err error) {
	if err = s.do(http.MethodPost, constants.RouteWhitelistRemove, dto.WhitelistChangeRequest{IP: ip}, &resp); err != nil {
		return resp, fmt.Errorf("RemoveWhitelist: %w", err)
	}

	return resp, nil
}

func (s *Service) CheckWhitelist() (resp dto.WhitelistCheckResponse, err error) {
	if err = s.do(http.MethodGet, constants.RouteWhitelistCheck, nil, &resp); err != nil {
		return resp, fmt.Errorf("CheckWhitelist: %w", err)
	}

	return resp, nil
}

// wake decodes failed attempts too, the service answers them with a WakeResponse body.
func (s *Service) wake(path string, request any) (resp dto.WakeResponse, err error) {
	var errBody struct {
		dto.WakeResponse
		Detail string `json:"detail"`
	}
	httpResp, err := s.client.R().
		SetBody(request).
		SetResult(&resp).
		SetError(&errBody).
		Post(path)
	if err != nil {
		return resp, fmt.Errorf("wake: %w", err)
	}

	if httpResp.IsError() {
		return errBody.WakeResponse, apiError(httpResp, lo.Ternary(lo.IsNotEmpty(errBody.Detail), errBody.Detail, errBody.Message))
	}

	return resp, nil
}

func (s *Service) do(method, path string, body, result any) (err error) {
	var errBody dto.ErrorResponse
	request := s.client.R().
		SetResult(result).
		SetError(&errBody)
	if body != nil {
		request.SetBody(body)
	}

	httpResp, err := request.Execute(method, path)
	if err != nil {
		return fmt.Errorf("do: %w", err)
	}

	if httpResp.IsError() {
		return apiError(httpResp, errBody.Detail)
	}

	return nil
}

func apiError(resp *resty.Response, detail string) error {
	if lo.IsEmpty(detail) {
		detail = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: %d %s", errs.ErrAPIError, resp.StatusCode(), detail)
}
