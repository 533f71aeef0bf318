package magicpacket_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/wol-agent/internal/domains/magicpacket"
	"github.com/Fivegen-LLC/wol-agent/internal/errs"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name          string
		raw           string
		expected      string
		expectedError error
	}{
		{name: "colon separated", raw: "aa:bb:cc:dd:ee:ff", expected: "AA:BB:CC:DD:EE:FF"},
		{name: "dash separated", raw: "AA-BB-CC-DD-EE-FF", expected: "AA:BB:CC:DD:EE:FF"},
		{name: "no separators", raw: "aabbccddeeff", expected: "AA:BB:CC:DD:EE:FF"},
		{name: "mixed separators", raw: "00:11-22:33-44:55", expected: "00:11:22:33:44:55"},
		{name: "surrounding spaces", raw: "  001122334455 ", expected: "00:11:22:33:44:55"},
		{name: "empty", raw: "", expectedError: errs.ErrInvalidMacAddress},
		{name: "too short", raw: "AA:BB:CC:DD:EE", expectedError: errs.ErrInvalidMacAddress},
		{name: "too long", raw: "AA:BB:CC:DD:EE:FF:00", expectedError: errs.ErrInvalidMacAddress},
		{name: "non hex digit", raw: "GG:BB:CC:DD:EE:FF", expectedError: errs.ErrInvalidMacAddress},
		{name: "dotted form", raw: "aabb.ccdd.eeff", expectedError: errs.ErrInvalidMacAddress},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			addr, err := magicpacket.Parse(testCase.raw)
			if testCase.expectedError != nil {
				require.ErrorIs(t, err, testCase.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, addr.String())
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	payload, err := magicpacket.New("aa:bb:cc:dd:ee:ff")
	require.NoError(t, err)
	require.Len(t, payload, magicpacket.Size)
	assert.Equal(t, 102, magicpacket.Size)

	assert.Equal(t, bytes.Repeat([]byte{0xFF}, 6), payload[:6])
	mac := []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	for i := range 16 {
		offset := 6 + i*6
		assert.Equal(t, mac, payload[offset:offset+6], "repetition %d", i)
	}
}

func TestNew_SameAddressSamePayload(t *testing.T) {
	t.Parallel()

	first, err := magicpacket.New("AA-BB-CC-DD-EE-FF")
	require.NoError(t, err)
	second, err := magicpacket.New("aabbccddeeff")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNew_InvalidAddress(t *testing.T) {
	t.Parallel()

	payload, err := magicpacket.New("not-a-mac")
	require.ErrorIs(t, err, errs.ErrInvalidMacAddress)
	assert.Nil(t, payload)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	normalized, err := magicpacket.Normalize("0a-1b-2c-3d-4e-5f")
	require.NoError(t, err)
	assert.Equal(t, "0A:1B:2C:3D:4E:5F", normalized)

	_, err = magicpacket.Normalize("0a-1b")
	require.ErrorIs(t, err, errs.ErrInvalidMacAddress)
}
