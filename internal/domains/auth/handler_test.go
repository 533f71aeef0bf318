package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/wol-agent/internal/domains/auth"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/auth/auth_mocks"
	"github.com/Fivegen-LLC/wol-agent/internal/entities"
	"github.com/Fivegen-LLC/wol-agent/internal/objects/dto"
)

const loginBody = `{"username":"admin","password":"s3cret","captcha_id":"cid","captcha_text":"ab3d"}`

type handlerFields struct {
	captchaService    *auth_mocks.MockICaptchaService
	credentialService *auth_mocks.MockICredentialService
	credentialIssuer  *auth_mocks.MockICredentialIssuer
	clientIPResolver  *auth_mocks.MockIClientIPResolver
}

func newHandlerFields(t *testing.T) *handlerFields {
	return &handlerFields{
		captchaService:    auth_mocks.NewMockICaptchaService(t),
		credentialService: auth_mocks.NewMockICredentialService(t),
		credentialIssuer:  auth_mocks.NewMockICredentialIssuer(t),
		clientIPResolver:  auth_mocks.NewMockIClientIPResolver(t),
	}
}

func (f *handlerFields) handler() *auth.Handler {
	return auth.NewHandler(f.captchaService, f.credentialService, f.credentialIssuer, f.clientIPResolver)
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name           string
		body           string
		prepare        func(f *handlerFields)
		expectedStatus int
		expectedOK     bool
		expectedToken  string
	}{
		{
			name: "wrong captcha never checks credentials",
			body: loginBody,
			prepare: func(f *handlerFields) {
				f.clientIPResolver.EXPECT().ClientIP(mock.Anything).Return("10.0.0.2").Times(1)
				f.captchaService.EXPECT().
					Verify("cid", "ab3d").
					Return(false).
					Times(1)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong credentials",
			body: loginBody,
			prepare: func(f *handlerFields) {
				f.clientIPResolver.EXPECT().ClientIP(mock.Anything).Return("10.0.0.2").Times(1)
				f.captchaService.EXPECT().
					Verify("cid", "ab3d").
					Return(true).
					Times(1)

				f.credentialService.EXPECT().
					VerifyCredentials("admin", "s3cret").
					Return(false).
					Times(1)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "success",
			body: loginBody,
			prepare: func(f *handlerFields) {
				f.clientIPResolver.EXPECT().ClientIP(mock.Anything).Return("10.0.0.2").Times(1)
				f.captchaService.EXPECT().
					Verify("cid", "ab3d").
					Return(true).
					Times(1)

				f.credentialService.EXPECT().
					VerifyCredentials("admin", "s3cret").
					Return(true).
					Times(1)

				f.credentialIssuer.EXPECT().
					IssueCredential("admin").
					Return(entities.Credential{
						Value:      "signed-token",
						Type:       "bearer",
						CookieName: "access_token",
						ExpiresAt:  time.Now().Add(time.Hour),
					}, nil).
					Times(1)
			},
			expectedStatus: http.StatusOK,
			expectedOK:     true,
			expectedToken:  "signed-token",
		},
		{
			name:           "missing captcha fields",
			body:           `{"username":"admin","password":"s3cret"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newHandlerFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(testCase.body))
			f.handler().Login(recorder, request)

			require.Equal(t, testCase.expectedStatus, recorder.Code)
			if testCase.expectedStatus == http.StatusBadRequest {
				return
			}

			var response dto.LoginResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
			assert.Equal(t, testCase.expectedOK, response.Success)
			assert.NotEmpty(t, response.Message)

			if !testCase.expectedOK {
				assert.Nil(t, response.AccessToken)
				assert.Empty(t, recorder.Result().Cookies())
				return
			}

			require.NotNil(t, response.AccessToken)
			assert.Equal(t, testCase.expectedToken, *response.AccessToken)
			assert.Equal(t, "bearer", *response.TokenType)

			cookies := recorder.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, "access_token", cookies[0].Name)
			assert.True(t, cookies[0].HttpOnly)
		})
	}
}

func TestHandler_Login_CredentialMessagesDoNotLeakField(t *testing.T) {
	t.Parallel()

	messages := make([]string, 0, 2)
	for _, body := range []string{
		`{"username":"root","password":"s3cret","captcha_id":"cid","captcha_text":"ab3d"}`,
		`{"username":"admin","password":"wrong","captcha_id":"cid","captcha_text":"ab3d"}`,
	} {
		f := newHandlerFields(t)
		f.clientIPResolver.EXPECT().ClientIP(mock.Anything).Return("10.0.0.2").Times(1)
		f.captchaService.EXPECT().Verify("cid", "ab3d").Return(true).Times(1)
		f.credentialService.EXPECT().VerifyCredentials(mock.Anything, mock.Anything).Return(false).Times(1)

		recorder := httptest.NewRecorder()
		f.handler().Login(recorder, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body)))

		var response dto.LoginResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		messages = append(messages, response.Message)
	}

	assert.Equal(t, messages[0], messages[1])
}

func TestHandler_Logout(t *testing.T) {
	t.Parallel()

	f := newHandlerFields(t)
	f.credentialIssuer.EXPECT().
		CookieName().
		Return("session_id").
		Times(1)

	f.credentialIssuer.EXPECT().
		RevokeCredential("sid-1").
		Return(nil).
		Times(1)

	request := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	request.AddCookie(&http.Cookie{Name: "session_id", Value: "sid-1"})

	recorder := httptest.NewRecorder()
	f.handler().Logout(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_id", cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}
