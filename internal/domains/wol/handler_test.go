package wol_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/wol-agent/internal/domains/wol"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/wol/wol_mocks"
	"github.com/Fivegen-LLC/wol-agent/internal/entities"
	"github.com/Fivegen-LLC/wol-agent/internal/errs"
	"github.com/Fivegen-LLC/wol-agent/internal/objects/dto"
)

type handlerFields struct {
	wakeService      *wol_mocks.MockIWakeService
	interfaceService *wol_mocks.MockIInterfaceService
	clientIPResolver *wol_mocks.MockIClientIPResolver
}

func newHandlerFields(t *testing.T) *handlerFields {
	return &handlerFields{
		wakeService:      wol_mocks.NewMockIWakeService(t),
		interfaceService: wol_mocks.NewMockIInterfaceService(t),
		clientIPResolver: wol_mocks.NewMockIClientIPResolver(t),
	}
}

func (f *handlerFields) handler() *wol.Handler {
	return wol.NewHandler(f.wakeService, f.interfaceService, f.clientIPResolver)
}

func TestHandler_Wake(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name           string
		body           string
		prepare        func(f *handlerFields)
		expectedStatus int
		expectedBody   func(t *testing.T, body []byte)
	}{
		{
			name: "success",
			body: `{"mac_address":"aa:bb:cc:dd:ee:ff"}`,
			prepare: func(f *handlerFields) {
				f.clientIPResolver.EXPECT().
					ClientIP(mock.Anything).
					Return("192.168.1.50").
					Times(1)

				f.wakeService.EXPECT().
					Wake(mock.Anything, entities.WakeParams{MacAddress: "aa:bb:cc:dd:ee:ff", ClientIP: "192.168.1.50"}).
					Return(entities.WakeResult{
						Success:       true,
						Message:       "Magic packet sent to AA:BB:CC:DD:EE:FF",
						MacAddress:    testMac,
						InterfaceUsed: "eth0",
						BroadcastUsed: "192.168.1.255",
						Port:          9,
					}).
					Times(1)
			},
			expectedStatus: http.StatusOK,
			expectedBody: func(t *testing.T, body []byte) {
				var response dto.WakeResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.True(t, response.Success)
				assert.Equal(t, "eth0", *response.InterfaceUsed)
				assert.Equal(t, "192.168.1.255", *response.BroadcastAddress)
			},
		},
		{
			name: "invalid mac",
			body: `{"mac_address":"zz"}`,
			prepare: func(f *handlerFields) {
				f.clientIPResolver.EXPECT().
					ClientIP(mock.Anything).
					Return("192.168.1.50").
					Times(1)

				f.wakeService.EXPECT().
					Wake(mock.Anything, mock.Anything).
					Return(entities.WakeResult{
						Message:    "Invalid parameters: invalid mac address \"zz\"",
						MacAddress: "zz",
						Err:        errs.ErrInvalidParameters,
					}).
					Times(1)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody: func(t *testing.T, body []byte) {
				var response dto.WakeResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.False(t, response.Success)
				assert.Nil(t, response.InterfaceUsed)
			},
		},
		{
			name:           "missing mac",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "no default interface",
			body: `{"mac_address":"aa:bb:cc:dd:ee:ff"}`,
			prepare: func(f *handlerFields) {
				f.clientIPResolver.EXPECT().
					ClientIP(mock.Anything).
					Return("192.168.1.50").
					Times(1)

				f.wakeService.EXPECT().
					Wake(mock.Anything, mock.Anything).
					Return(entities.WakeResult{
						Message: "Unable to determine the default network interface",
						Err:     errs.ErrNoDefaultInterface,
					}).
					Times(1)
			},
			expectedStatus: http.StatusUnprocessableEntity,
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
			request := httptest.NewRequest(http.MethodPost, "/wake", strings.NewReader(testCase.body))
			f.handler().Wake(recorder, request)

			assert.Equal(t, testCase.expectedStatus, recorder.Code)
			if testCase.expectedBody != nil {
				testCase.expectedBody(t, recorder.Body.Bytes())
			}
		})
	}
}

func TestHandler_WakeAdvanced(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name           string
		body           string
		prepare        func(f *handlerFields)
		expectedStatus int
	}{
		{
			name: "all optional fields",
			body: `{"mac_address":"aa:bb:cc:dd:ee:ff","interface":"eth1","broadcast_address":"10.0.0.255","port":7}`,
			prepare: func(f *handlerFields) {
				f.clientIPResolver.EXPECT().
					ClientIP(mock.Anything).
					Return("10.0.0.2").
					Times(1)

				f.wakeService.EXPECT().
					Wake(mock.Anything, entities.WakeParams{
						MacAddress:       "aa:bb:cc:dd:ee:ff",
						InterfaceName:    "eth1",
						BroadcastAddress: "10.0.0.255",
						Port:             7,
						ClientIP:         "10.0.0.2",
					}).
					Return(entities.WakeResult{Success: true, MacAddress: testMac, InterfaceUsed: "eth1", BroadcastUsed: "10.0.0.255", Port: 7}).
					Times(1)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "broadcast is not ipv4",
			body:           `{"mac_address":"aa:bb:cc:dd:ee:ff","broadcast_address":"example.com"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "port out of range",
			body:           `{"mac_address":"aa:bb:cc:dd:ee:ff","port":65536}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown interface",
			body: `{"mac_address":"aa:bb:cc:dd:ee:ff","interface":"eth9"}`,
			prepare: func(f *handlerFields) {
				f.clientIPResolver.EXPECT().
					ClientIP(mock.Anything).
					Return("10.0.0.2").
					Times(1)

				f.wakeService.EXPECT().
					Wake(mock.Anything, mock.Anything).
					Return(entities.WakeResult{Message: "Network interface \"eth9\" does not exist", Err: errs.ErrInterfaceNotFound}).
					Times(1)
			},
			expectedStatus: http.StatusNotFound,
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
			request := httptest.NewRequest(http.MethodPost, "/wake/advanced", strings.NewReader(testCase.body))
			f.handler().WakeAdvanced(recorder, request)

			assert.Equal(t, testCase.expectedStatus, recorder.Code)
		})
	}
}

func TestHandler_ListInterfaces(t *testing.T) {
	t.Parallel()

	f := newHandlerFields(t)
	f.interfaceService.EXPECT().
		ListInterfaces().
		Return(entities.NetworkInterfaces{eth0, tun0}, nil).
		Times(1)

	recorder := httptest.NewRecorder()
	f.handler().ListInterfaces(recorder, httptest.NewRequest(http.MethodGet, "/interfaces", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var response dto.InterfacesResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Count)
	assert.Equal(t, "eth0", response.Interfaces[0].Name)
	assert.Nil(t, response.Interfaces[1].Broadcast)
	assert.Nil(t, response.Interfaces[1].MacAddress)
}
