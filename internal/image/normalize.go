package imagepkg

import (
	"bytes"
	"context"
	"image"
	"math"
	"runtime"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/youruser/pixtopdf/internal/collect"
)

const (
	DefaultMaxWidth  = 1024
	DefaultMaxHeight = 1024

	// Quality is the fixed JPEG quality of every normalized image.
	Quality = 70
)

// Normalized is one selected image after resizing and re-encoding.
type Normalized struct {
	Index  int
	Name   string
	JPEG   []byte
	Width  int
	Height int
}

// ScaledSize returns the size of a w×h image fitted into maxW×maxH. Only the
// longer side is checked against its bound; the other side follows the same
// factor. Sizes already within bounds are returned unchanged.
func ScaledSize(w, h, maxW, maxH int) (int, int) {
	if w > h {
		if w > maxW {
			return maxW, scaleSide(h, maxW, w)
		}
		return w, h
	}
	if h > maxH {
		return scaleSide(w, maxH, h), maxH
	}
	return w, h
}

func scaleSide(side, num, den int) int {
	v := int(math.Round(float64(side) * float64(num) / float64(den)))
	if v < 1 {
		v = 1
	}
	return v
}

// Normalize decodes in, fits it into maxW×maxH and re-encodes it as JPEG.
func Normalize(in collect.ImageInput, maxW, maxH int) (Normalized, error) {
	if maxW <= 0 {
		maxW = DefaultMaxWidth
	}
	if maxH <= 0 {
		maxH = DefaultMaxHeight
	}
	src, err := decodeInput(in)
	if err != nil {
		return Normalized{}, err
	}

	b := src.Bounds()
	w, h := ScaledSize(b.Dx(), b.Dy(), maxW, maxH)
	var out image.Image = src
	if w != b.Dx() || h != b.Dy() {
		out = imaging.Resize(src, w, h, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, out, imaging.JPEG, imaging.JPEGQuality(Quality)); err != nil {
		return Normalized{}, err
	}
	return Normalized{Name: in.Name, JPEG: buf.Bytes(), Width: w, Height: h}, nil
}

// NormalizeAll normalizes every input with at most workers running at once.
// Results keep the input order. The first failure cancels the remaining work
// and is returned as a *DecodeError.
func NormalizeAll(ctx context.Context, inputs []collect.ImageInput, maxW, maxH, workers int) ([]Normalized, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	out := make([]Normalized, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := Normalize(in, maxW, maxH)
			if err != nil {
				return &DecodeError{Index: i, Name: in.Name, Err: err}
			}
			n.Index = i
			out[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
