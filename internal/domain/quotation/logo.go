package quotation

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

const maxLogoWidth = 600

// NormalizeLogo decodes an uploaded logo, downscales oversized images and
// re-encodes to PNG so the renderer always receives one in-memory format.
func NormalizeLogo(r io.Reader) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, invalidInput("logo must be a valid PNG, JPEG or GIF image")
	}
	if img.Bounds().Dx() > maxLogoWidth {
		img = imaging.Resize(img, maxLogoWidth, 0, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode logo: %w", err)
	}
	return buf.Bytes(), nil
}
