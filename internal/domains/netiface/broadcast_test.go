package netiface_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/wol-agent/internal/domains/netiface"
	"github.com/Fivegen-LLC/wol-agent/internal/entities"
	"github.com/Fivegen-LLC/wol-agent/internal/errs"
)

func TestCalculateBroadcast(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name          string
		ip            string
		mask          string
		expected      string
		expectedError error
	}{
		{name: "class c", ip: "192.168.1.10", mask: "255.255.255.0", expected: "192.168.1.255"},
		{name: "prefix form", ip: "10.1.2.3", mask: "16", expected: "10.1.255.255"},
		{name: "slash prefix form", ip: "172.16.5.4", mask: "/12", expected: "172.31.255.255"},
		{name: "host mask", ip: "192.168.1.10", mask: "255.255.255.255", expected: "192.168.1.10"},
		{name: "zero mask", ip: "192.168.1.10", mask: "0.0.0.0", expected: "255.255.255.255"},
		{name: "odd prefix", ip: "192.168.1.130", mask: "255.255.255.192", expected: "192.168.1.191"},
		{name: "non contiguous mask", ip: "192.168.1.10", mask: "255.0.255.0", expectedError: errs.ErrInvalidNetmask},
		{name: "garbage mask", ip: "192.168.1.10", mask: "abc", expectedError: errs.ErrInvalidNetmask},
		{name: "prefix out of range", ip: "192.168.1.10", mask: "33", expectedError: errs.ErrInvalidNetmask},
		{name: "empty mask", ip: "192.168.1.10", mask: "", expectedError: errs.ErrInvalidNetmask},
		{name: "ipv6 address", ip: "fe80::1", mask: "64", expectedError: errs.ErrInvalidParameters},
		{name: "invalid address", ip: "300.1.1.1", mask: "24", expectedError: errs.ErrInvalidParameters},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			broadcast, err := netiface.CalculateBroadcast(testCase.ip, testCase.mask)
			if testCase.expectedError != nil {
				require.ErrorIs(t, err, testCase.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, broadcast)
		})
	}
}

func TestResolveBroadcast(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name             string
		iface            entities.NetworkInterface
		explicit         string
		expected         string
		expectedFallback bool
	}{
		{
			name:     "explicit wins",
			iface:    entities.NetworkInterface{Name: "eth0", IPAddress: "192.168.1.10", Netmask: "255.255.255.0", Broadcast: "192.168.1.255"},
			explicit: "10.0.0.255",
			expected: "10.0.0.255",
		},
		{
			name:     "os reported",
			iface:    entities.NetworkInterface{Name: "eth0", IPAddress: "192.168.1.10", Netmask: "255.255.255.0", Broadcast: "192.168.1.127"},
			expected: "192.168.1.127",
		},
		{
			name:     "computed from netmask",
			iface:    entities.NetworkInterface{Name: "tun0", IPAddress: "10.8.0.6", Netmask: "255.255.255.0"},
			expected: "10.8.0.255",
		},
		{
			name:             "limited broadcast fallback",
			iface:            entities.NetworkInterface{Name: "weird0", IPAddress: "10.8.0.6", Netmask: "bogus"},
			expected:         "255.255.255.255",
			expectedFallback: true,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			broadcast, fallback := netiface.ResolveBroadcast(testCase.iface, testCase.explicit)
			assert.Equal(t, testCase.expected, broadcast)
			assert.Equal(t, testCase.expectedFallback, fallback)
		})
	}
}
