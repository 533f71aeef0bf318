package captcha_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/wol-agent/internal/domains/captcha"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/captcha/captcha_mocks"
	"github.com/Fivegen-LLC/wol-agent/internal/entities"
	"github.com/Fivegen-LLC/wol-agent/internal/objects/dto"
)

func TestHandler_GetCaptcha(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name           string
		prepare        func(m *captcha_mocks.MockICaptchaService)
		expectedStatus int
	}{
		{
			name: "issued",
			prepare: func(m *captcha_mocks.MockICaptchaService) {
				m.EXPECT().
					Create().
					Return(entities.IssuedCaptcha{ID: "cid", ImageURL: "data:image/png;base64,AAAA"}, nil).
					Times(1)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "failure",
			prepare: func(m *captcha_mocks.MockICaptchaService) {
				m.EXPECT().
					Create().
					Return(entities.IssuedCaptcha{}, errTestError).
					Times(1)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			captchaService := captcha_mocks.NewMockICaptchaService(t)
			testCase.prepare(captchaService)

			recorder := httptest.NewRecorder()
			captcha.NewHandler(captchaService).GetCaptcha(recorder, httptest.NewRequest(http.MethodGet, "/api/captcha", nil))
			require.Equal(t, testCase.expectedStatus, recorder.Code)

			if testCase.expectedStatus != http.StatusOK {
				return
			}

			var response dto.CaptchaResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
			assert.Equal(t, "cid", response.CaptchaID)
			assert.Equal(t, "data:image/png;base64,AAAA", response.CaptchaImage)
		})
	}
}
