// Package images validates and processes avatar uploads at the UI boundary,
// before the identity store sees anything but a resolved reference.
package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"net/http"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"devconnect/internal/models"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

const (
	// AvatarMaxDimension is the edge length avatars are downscaled to.
	AvatarMaxDimension = 256
	avatarWebPQuality  = 80
)

// Processor validates avatar files against a size ceiling and normalizes
// them to small webp images.
type Processor struct {
	maxSizeBytes int64
}

// NewProcessor creates a Processor with the given ceiling in megabytes.
func NewProcessor(maxSizeMB int) *Processor {
	return &Processor{maxSizeBytes: int64(maxSizeMB) * 1024 * 1024}
}

// Validate checks the size ceiling and that content is a decodable image.
// Failures are VALIDATION_ERROR app errors.
func (p *Processor) Validate(filename string, content []byte) error {
	if int64(len(content)) > p.maxSizeBytes {
		return models.NewValidationError(
			fmt.Sprintf("avatar file %q exceeds the %d MB limit", filename, p.maxSizeBytes/(1024*1024)))
	}
	contentType := http.DetectContentType(content)
	if !strings.HasPrefix(contentType, "image/") {
		return models.NewValidationError(
			fmt.Sprintf("avatar file %q is not an image (detected %s)", filename, contentType))
	}
	if _, _, err := image.Decode(bytes.NewReader(content)); err != nil {
		return models.NewValidationError(
			fmt.Sprintf("avatar file %q could not be decoded: %v", filename, err))
	}
	return nil
}

// Process validates content and returns a data-URL reference to a downscaled
// webp rendition, suitable for merging into the user record as avatar_url.
func (p *Processor) Process(filename string, content []byte) (string, error) {
	if err := p.Validate(filename, content); err != nil {
		return "", err
	}

	src, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return "", models.NewValidationError(fmt.Sprintf("decoding avatar: %v", err))
	}

	dst := downscale(src, AvatarMaxDimension)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: avatarWebPQuality}); err != nil {
		return "", fmt.Errorf("encoding avatar webp: %w", err)
	}
	return "data:image/webp;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func downscale(src image.Image, maxDim int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return src
	}
	if w > h {
		h = h * maxDim / w
		w = maxDim
	} else {
		w = w * maxDim / h
		h = maxDim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}
