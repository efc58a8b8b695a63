package collect

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/youruser/pixtopdf/internal/util"
)

// ImageInput is a handle to one selected image. Open is called once by the
// normalizer.
type ImageInput struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FromPath reads a local file.
func FromPath(p string) ImageInput {
	return ImageInput{
		Name: filepath.Base(p),
		Open: func() (io.ReadCloser, error) { return os.Open(p) },
	}
}

// FromBytes wraps an in-memory image.
func FromBytes(name string, b []byte) ImageInput {
	return ImageInput{
		Name: name,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(b)), nil },
	}
}

// FromFileHeader wraps a multipart upload.
func FromFileHeader(fh *multipart.FileHeader) ImageInput {
	return ImageInput{
		Name: fh.Filename,
		Open: func() (io.ReadCloser, error) { return fh.Open() },
	}
}

// FromURL fetches the image when opened.
func FromURL(ctx context.Context, rawURL string, timeout time.Duration) ImageInput {
	name := path.Base(strings.SplitN(rawURL, "?", 2)[0])
	return ImageInput{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			b, err := util.GetBytes(ctx, rawURL, timeout)
			if err != nil {
				return nil, err
			}
			return io.NopCloser(bytes.NewReader(b)), nil
		},
	}
}

// IsURL reports whether s should be fetched rather than read from disk.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
