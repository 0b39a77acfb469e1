package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	photoMaxWidth  = 1600
	photoMaxHeight = 1600
	webpQuality    = 80
)

// NormalizePhoto decodes a jpeg/png/webp payload, downsizes it to fit
// the photo bounds and re-encodes as WebP. Returns the encoded bytes,
// content type and file extension.
func NormalizePhoto(raw []byte) (data []byte, contentType, ext string, err error) {
	img, err := decodeImage(raw)
	if err != nil {
		return nil, "", "", err
	}

	bounds := img.Bounds()
	if bounds.Dx() > photoMaxWidth || bounds.Dy() > photoMaxHeight {
		img = imaging.Fit(img, photoMaxWidth, photoMaxHeight, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, "", "", fmt.Errorf("webp encode failed: %w", err)
	}
	return out.Bytes(), "image/webp", "webp", nil
}

// decodeImage sniffs the MIME type and decodes jpeg/png/webp
func decodeImage(raw []byte) (image.Image, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := raw
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(raw))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(raw))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(raw))
	default:
		return nil, fmt.Errorf("unsupported image type: %s", ct)
	}
}
