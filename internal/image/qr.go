package imagepkg

import (
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

// QRImage returns a size×size QR code for text.
func QRImage(text string, size int) (image.Image, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return q.Image(size), nil
}
