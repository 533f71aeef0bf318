package captcha_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/wol-agent/internal/domains/captcha"
)

func TestPNGRenderer_Render(t *testing.T) {
	t.Parallel()

	imageURL, err := captcha.NewPNGRenderer().Render("AB3D")
	require.NoError(t, err)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(imageURL, prefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(imageURL, prefix))
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, captcha.ImageWidth, decoded.Bounds().Dx())
	assert.Equal(t, captcha.ImageHeight, decoded.Bounds().Dy())
}
