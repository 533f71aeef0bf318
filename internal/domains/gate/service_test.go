package gate_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Fivegen-LLC/wol-agent/internal/domains/gate"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/gate/gate_mocks"
	"github.com/Fivegen-LLC/wol-agent/internal/entities"
	"github.com/Fivegen-LLC/wol-agent/internal/errs"
)

const (
	testToken      = "valid-token"
	testCookieName = "access_token"
)

type serviceFields struct {
	allowlistService *gate_mocks.MockIAllowlistService
	authenticator    *gate_mocks.MockIAuthenticator
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		allowlistService: gate_mocks.NewMockIAllowlistService(t),
		authenticator:    gate_mocks.NewMockIAuthenticator(t),
	}
}

func newRequest(remoteAddr string, headers map[string]string) *http.Request {
	request := httptest.NewRequest(http.MethodGet, "/wake", nil)
	request.RemoteAddr = remoteAddr
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	return request
}

func TestService_ClientIP(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name         string
		trustProxy   bool
		headers      map[string]string
		remoteAddr   string
		expectedAddr string
	}{
		{
			name:         "first forwarded hop",
			trustProxy:   true,
			headers:      map[string]string{"X-Forwarded-For": " 203.0.113.7 , 10.0.0.1", "X-Real-IP": "198.51.100.2"},
			remoteAddr:   "10.0.0.1:5555",
			expectedAddr: "203.0.113.7",
		},
		{
			name:         "real ip when no forwarded for",
			trustProxy:   true,
			headers:      map[string]string{"X-Real-IP": "198.51.100.2"},
			remoteAddr:   "10.0.0.1:5555",
			expectedAddr: "198.51.100.2",
		},
		{
			name:         "peer address",
			trustProxy:   true,
			remoteAddr:   "192.168.1.20:40000",
			expectedAddr: "192.168.1.20",
		},
		{
			name:         "ipv6 peer address",
			trustProxy:   true,
			remoteAddr:   "[::1]:40000",
			expectedAddr: "::1",
		},
		{
			name:         "headers ignored when untrusted",
			headers:      map[string]string{"X-Forwarded-For": "127.0.0.1", "X-Real-IP": "127.0.0.1"},
			remoteAddr:   "203.0.113.9:1234",
			expectedAddr: "203.0.113.9",
		},
		{
			name:         "remote addr without port",
			remoteAddr:   "203.0.113.9",
			expectedAddr: "203.0.113.9",
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			service := gate.NewService(f.allowlistService, f.authenticator, testCase.trustProxy)
			assert.Equal(t, testCase.expectedAddr, service.ClientIP(newRequest(testCase.remoteAddr, testCase.headers)))
		})
	}
}

func TestExtractCredential(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name     string
		header   string
		cookie   string
		expected string
	}{
		{name: "bearer header", header: "Bearer abc", expected: "abc"},
		{name: "case insensitive scheme", header: "bearer abc", expected: "abc"},
		{name: "header wins over cookie", header: "Bearer abc", cookie: "def", expected: "abc"},
		{name: "cookie fallback", cookie: "def", expected: "def"},
		{name: "basic scheme falls back to cookie", header: "Basic Zm9vOmJhcg==", cookie: "def", expected: "def"},
		{name: "empty bearer value", header: "Bearer ", expected: ""},
		{name: "nothing", expected: ""},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if testCase.header != "" {
				request.Header.Set("Authorization", testCase.header)
			}
			if testCase.cookie != "" {
				request.AddCookie(&http.Cookie{Name: testCookieName, Value: testCase.cookie})
			}

			assert.Equal(t, testCase.expected, gate.ExtractCredential(request, testCookieName))
		})
	}
}

func TestService_Decide(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name     string
		headers  map[string]string
		prepare  func(f *serviceFields)
		expected entities.AccessDecision
	}{
		{
			name: "whitelisted short circuits before credential check",
			headers: map[string]string{
				"Authorization": "Bearer " + testToken,
			},
			prepare: func(f *serviceFields) {
				f.allowlistService.EXPECT().
					IsMember("192.168.1.20").
					Return(true).
					Times(1)
			},
			expected: entities.AccessDecision{Level: entities.AccessWhitelisted, ClientIP: "192.168.1.20"},
		},
		{
			name: "token authenticated",
			headers: map[string]string{
				"Authorization": "Bearer " + testToken,
			},
			prepare: func(f *serviceFields) {
				f.allowlistService.EXPECT().
					IsMember("192.168.1.20").
					Return(false).
					Times(1)

				f.authenticator.EXPECT().
					CookieName().
					Return(testCookieName).
					Times(1)

				f.authenticator.EXPECT().
					Authenticate(testToken).
					Return("admin", nil).
					Times(1)
			},
			expected: entities.AccessDecision{Level: entities.AccessTokenAuthenticated, Username: "admin", ClientIP: "192.168.1.20"},
		},
		{
			name: "invalid token",
			headers: map[string]string{
				"Authorization": "Bearer expired",
			},
			prepare: func(f *serviceFields) {
				f.allowlistService.EXPECT().
					IsMember("192.168.1.20").
					Return(false).
					Times(1)

				f.authenticator.EXPECT().
					CookieName().
					Return(testCookieName).
					Times(1)

				f.authenticator.EXPECT().
					Authenticate("expired").
					Return("", errs.ErrInvalidToken).
					Times(1)
			},
			expected: entities.AccessDecision{Level: entities.AccessUnauthenticated, ClientIP: "192.168.1.20"},
		},
		{
			name: "no credentials",
			prepare: func(f *serviceFields) {
				f.allowlistService.EXPECT().
					IsMember("192.168.1.20").
					Return(false).
					Times(1)

				f.authenticator.EXPECT().
					CookieName().
					Return(testCookieName).
					Times(1)
			},
			expected: entities.AccessDecision{Level: entities.AccessUnauthenticated, ClientIP: "192.168.1.20"},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			service := gate.NewService(f.allowlistService, f.authenticator, false)
			decision := service.Decide(newRequest("192.168.1.20:5000", testCase.headers))
			assert.Equal(t, testCase.expected, decision)
		})
	}
}

func TestService_Middlewares(t *testing.T) {
	t.Parallel()

	errRejected := errors.New("rejected")
	testTable := []struct {
		name           string
		whitelisted    bool
		token          string
		tokenValid     bool
		expectedWake   int
		expectedManage int
	}{
		{name: "whitelisted without token", whitelisted: true, expectedWake: http.StatusOK, expectedManage: http.StatusForbidden},
		{name: "whitelisted with token", whitelisted: true, token: testToken, tokenValid: true, expectedWake: http.StatusOK, expectedManage: http.StatusOK},
		{name: "whitelisted with bad token", whitelisted: true, token: "bad", expectedWake: http.StatusOK, expectedManage: http.StatusForbidden},
		{name: "token only", token: testToken, tokenValid: true, expectedWake: http.StatusOK, expectedManage: http.StatusOK},
		{name: "bad token", token: "bad", expectedWake: http.StatusUnauthorized, expectedManage: http.StatusUnauthorized},
		{name: "anonymous", expectedWake: http.StatusUnauthorized, expectedManage: http.StatusUnauthorized},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			f.allowlistService.EXPECT().
				IsMember("10.0.0.5").
				Return(testCase.whitelisted).
				Maybe()

			f.authenticator.EXPECT().
				CookieName().
				Return(testCookieName).
				Maybe()

			if testCase.token != "" {
				username, err := "", errRejected
				if testCase.tokenValid {
					username, err = "admin", nil
				}
				f.authenticator.EXPECT().
					Authenticate(testCase.token).
					Return(username, err).
					Maybe()
			}

			service := gate.NewService(f.allowlistService, f.authenticator, false)
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			headers := map[string]string{}
			if testCase.token != "" {
				headers["Authorization"] = "Bearer " + testCase.token
			}

			wakeRecorder := httptest.NewRecorder()
			service.RequireAccess(next).ServeHTTP(wakeRecorder, newRequest("10.0.0.5:1000", headers))
			assert.Equal(t, testCase.expectedWake, wakeRecorder.Code)

			manageRecorder := httptest.NewRecorder()
			service.RequireToken(next).ServeHTTP(manageRecorder, newRequest("10.0.0.5:1000", headers))
			assert.Equal(t, testCase.expectedManage, manageRecorder.Code)

			if manageRecorder.Code == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", manageRecorder.Header().Get("WWW-Authenticate"))
			}
		})
	}
}
