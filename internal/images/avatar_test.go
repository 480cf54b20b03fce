package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessor_RejectsOversizedFile(t *testing.T) {
	proc := NewProcessor(1)
	oversized := make([]byte, 2*1024*1024)

	err := proc.Validate("huge.png", oversized)
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
	assert.Contains(t, err.Error(), "1 MB limit")
}

func TestProcessor_RejectsNonImage(t *testing.T) {
	proc := NewProcessor(5)

	err := proc.Validate("notes.txt", []byte("definitely not an image"))
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
}

func TestProcessor_AcceptsPNG(t *testing.T) {
	proc := NewProcessor(5)

	assert.NoError(t, proc.Validate("avatar.png", pngBytes(t, 64, 64)))
}

func TestProcessor_ProcessReturnsWebPDataURL(t *testing.T) {
	proc := NewProcessor(5)

	ref, err := proc.Process("avatar.png", pngBytes(t, 64, 64))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "data:image/webp;base64,"))
}

func TestProcessor_ProcessDownscalesLargeImages(t *testing.T) {
	proc := NewProcessor(5)

	ref, err := proc.Process("big.png", pngBytes(t, 1024, 512))
	require.NoError(t, err)
	assert.NotEmpty(t, ref)
}

func TestDownscale(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		wantW int
		wantH int
	}{
		{name: "landscape", w: 1024, h: 512, wantW: 256, wantH: 128},
		{name: "portrait", w: 512, h: 1024, wantW: 128, wantH: 256},
		{name: "small untouched", w: 100, h: 50, wantW: 100, wantH: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			dst := downscale(src, AvatarMaxDimension)
			assert.Equal(t, tt.wantW, dst.Bounds().Dx())
			assert.Equal(t, tt.wantH, dst.Bounds().Dy())
		})
	}
}
