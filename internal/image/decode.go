package imagepkg

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/youruser/pixtopdf/internal/collect"
)

// ErrUnreadable matches every DecodeError.
var ErrUnreadable = errors.New("image could not be read")

// DecodeError names the selected file that could not be opened or decoded.
type DecodeError struct {
	Index int
	Name  string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("image #%d (%s): %v", e.Index+1, e.Name, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrUnreadable, e.Err}
}

// decodeInput opens the handle and decodes it, applying the EXIF orientation
// the way a browser does when it draws the image.
func decodeInput(in collect.ImageInput) (image.Image, error) {
	if in.Open == nil {
		return nil, errors.New("no data")
	}
	rc, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	img, err := imaging.Decode(rc, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	return img, nil
}
