package imagepkg

import (
	"bytes"
	"image"
	"log"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// darkest returns the lowest red/green/blue channel found in r.
func darkest(img image.Image, r image.Rectangle) uint32 {
	lowest := uint32(0xffff)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			for _, c := range []uint32{cr, cg, cb} {
				if c < lowest {
					lowest = c
				}
			}
		}
	}
	return lowest
}

func TestRenderNotesPage(t *testing.T) {
	page, err := RenderNotesPage("  Hello  \nWorld", NotesOptions{})
	require.NoError(t, err)
	assert.Equal(t, NotesPageWidth, page.Width)
	assert.Equal(t, NotesPageHeight, page.Height)

	img := decodeJPEG(t, page.JPEG)
	assert.Equal(t, image.Rect(0, 0, NotesPageWidth, NotesPageHeight), img.Bounds())

	// first line sits on the y=30 baseline, second on y=50
	assert.Less(t, darkest(img, image.Rect(20, 16, 80, 31)), uint32(0x8000))
	assert.Less(t, darkest(img, image.Rect(20, 36, 80, 51)), uint32(0x8000))
	// nothing drawn left of the margin or in the body of the page
	assert.Greater(t, darkest(img, image.Rect(0, 0, 15, NotesPageHeight)), uint32(0xe000))
	assert.Greater(t, darkest(img, image.Rect(100, 200, 500, 700)), uint32(0xe000))
}

func TestRenderNotesPageClipsOverflow(t *testing.T) {
	lines := strings.Repeat("line\n", 100)
	page, err := RenderNotesPage(lines, NotesOptions{})
	require.NoError(t, err)
	img := decodeJPEG(t, page.JPEG)
	assert.Equal(t, NotesPageHeight, img.Bounds().Dy())
}

func TestRenderNotesPageQR(t *testing.T) {
	corner := image.Rect(NotesPageWidth-qrMargin-qrSize, NotesPageHeight-qrMargin-qrSize, NotesPageWidth-qrMargin, NotesPageHeight-qrMargin)

	plain, err := RenderNotesPage("remember the milk", NotesOptions{})
	require.NoError(t, err)
	assert.Greater(t, darkest(decodeJPEG(t, plain.JPEG), corner), uint32(0xe000))

	stamped, err := RenderNotesPage("remember the milk", NotesOptions{QR: true})
	require.NoError(t, err)
	assert.Less(t, darkest(decodeJPEG(t, stamped.JPEG), corner), uint32(0x4000))
}

func TestRenderNotesPageQRTooLong(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)

	page, err := RenderNotesPage(strings.Repeat("x", 5000), NotesOptions{QR: true, Logger: logger})
	require.NoError(t, err)
	assert.NotEmpty(t, page.JPEG)
	assert.Contains(t, logs.String(), "notes qr skipped")
}

func TestRenderNotesPageConcurrent(t *testing.T) {
	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)
	pages := make([]NotesPage, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pages[i], errs[i] = RenderNotesPage(strings.Repeat("Hello world gjqpy\n", 5+i), NotesOptions{})
		}()
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		img := decodeJPEG(t, pages[i].JPEG)
		assert.Less(t, darkest(img, image.Rect(20, 16, 120, 31)), uint32(0x8000))
	}
}
