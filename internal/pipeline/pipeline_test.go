package pipeline

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"io"
	"log"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/pixtopdf/internal/collect"
	"github.com/youruser/pixtopdf/internal/deliver"
	"github.com/youruser/pixtopdf/internal/document"
	imagepkg "github.com/youruser/pixtopdf/internal/image"
)

var fixedNow = func() time.Time { return time.Date(2024, 3, 5, 14, 7, 0, 0, time.Local) }

func testOptions() Options {
	return Options{
		MaxWidth:  imagepkg.DefaultMaxWidth,
		MaxHeight: imagepkg.DefaultMaxHeight,
		Workers:   2,
		Logger:    log.New(io.Discard, "", 0),
		Now:       fixedNow,
	}
}

func jpegInput(t *testing.T, name string, w, h int) collect.ImageInput {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, imaging.Encode(buf, imaging.New(w, h, color.NRGBA{G: 0x99, A: 0xff}), imaging.JPEG))
	return collect.FromBytes(name, buf.Bytes())
}

func kinds(doc document.Document) []document.Kind {
	out := make([]document.Kind, len(doc.Pages))
	for i, p := range doc.Pages {
		out[i] = p.Kind
	}
	return out
}

func TestCreate(t *testing.T) {
	files := []collect.ImageInput{
		jpegInput(t, "first.jpg", 2048, 1536),
		jpegInput(t, "second.jpg", 600, 900),
	}
	img, notes := document.KindImage, document.KindNotes

	tests := []struct {
		name      string
		notes     string
		placement string
		fileName  string
		wantKinds []document.Kind
		wantName  string
	}{
		{"notes first", "A\nB", "first", "", []document.Kind{notes, img, img}, "PIXtoPDF_03.05.24_2.07PM.pdf"},
		{"notes last", "A\nB", "last", "", []document.Kind{img, img, notes}, "PIXtoPDF_03.05.24_2.07PM.pdf"},
		{"blank notes", "  \n ", "first", "vacation", []document.Kind{img, img}, "vacation.pdf"},
		{"no notes", "", "last", "vacation.PDF", []document.Kind{img, img}, "vacation.PDF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := collect.Collect(files, tt.notes, tt.placement, tt.fileName)
			require.NoError(t, err)

			res, err := Create(context.Background(), req, testOptions())
			require.NoError(t, err)
			assert.Equal(t, tt.wantKinds, kinds(res.Document))
			assert.Equal(t, tt.wantName, res.Artifact.Name)

			var imageNames []string
			for _, p := range res.Document.Pages {
				if p.Kind == document.KindImage {
					imageNames = append(imageNames, p.Name)
				}
			}
			assert.Equal(t, []string{"first.jpg", "second.jpg"}, imageNames)

			data := res.Artifact.Data
			r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
			require.NoError(t, err)
			assert.Equal(t, len(tt.wantKinds), r.NumPage())
		})
	}
}

func TestCreateResizes(t *testing.T) {
	req, err := collect.Collect([]collect.ImageInput{jpegInput(t, "big.jpg", 3000, 1500)}, "", "last", "")
	require.NoError(t, err)

	res, err := Create(context.Background(), req, testOptions())
	require.NoError(t, err)
	require.Len(t, res.Document.Pages, 1)
	assert.Equal(t, 1024, res.Document.Pages[0].Width)
	assert.Equal(t, 512, res.Document.Pages[0].Height)
}

func TestCreateDecodeFailure(t *testing.T) {
	files := []collect.ImageInput{
		jpegInput(t, "ok.jpg", 10, 10),
		collect.FromBytes("corrupt.heic", []byte("????")),
	}
	req, err := collect.Collect(files, "notes", "first", "")
	require.NoError(t, err)

	_, err = Create(context.Background(), req, testOptions())
	require.ErrorIs(t, err, imagepkg.ErrUnreadable)
	assert.Contains(t, err.Error(), "corrupt.heic")
}

func TestCreateNoFiles(t *testing.T) {
	_, err := Create(context.Background(), collect.Request{}, testOptions())
	require.ErrorIs(t, err, collect.ErrNoFiles)
}

type recordingDownloader struct {
	got deliver.Artifact
	err error
}

func (r *recordingDownloader) Download(_ context.Context, a deliver.Artifact) error {
	r.got = a
	return r.err
}

func TestRun(t *testing.T) {
	req, err := collect.Collect([]collect.ImageInput{jpegInput(t, "a.jpg", 20, 20)}, "", "last", "scan")
	require.NoError(t, err)

	d := &recordingDownloader{}
	res, err := Run(context.Background(), req, testOptions(), deliver.Dispatcher{Capability: deliver.DownloadOnly, Downloader: d})
	require.NoError(t, err)
	assert.Equal(t, "scan.pdf", d.got.Name)
	assert.Equal(t, res.Artifact.Data, d.got.Data)

	d.err = errors.New("read-only filesystem")
	_, err = Run(context.Background(), req, testOptions(), deliver.Dispatcher{Downloader: d})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delivering scan.pdf")
}
