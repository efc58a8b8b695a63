package imagepkg

import (
	"bytes"
	"image"
	"image/color"
	"log"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Notes page geometry, in pixels of an A4 page at 72 dpi.
const (
	NotesPageWidth  = 595
	NotesPageHeight = 842

	notesLeft       = 20
	notesTop        = 30
	notesLineHeight = 20
	notesFontSize   = 16
	notesQuality    = 92

	qrSize   = 160
	qrMargin = 20
)

// NotesPage is the rasterized notes page.
type NotesPage struct {
	JPEG   []byte
	Width  int
	Height int
}

// NotesOptions tweak the notes page.
type NotesOptions struct {
	// QR stamps a QR code of the notes text in the bottom-right corner.
	QR     bool
	Logger *log.Logger
}

var (
	fontOnce  sync.Once
	notesFont *opentype.Font
	fontErr   error
)

// newNotesFace returns a fresh face for one render. The parsed font is shared;
// faces are not safe for concurrent use, so each caller closes its own.
func newNotesFace() (font.Face, error) {
	fontOnce.Do(func() {
		notesFont, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fontErr
	}
	return opentype.NewFace(notesFont, &opentype.FaceOptions{
		Size:    notesFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// RenderNotesPage draws text on a white A4 canvas, one trimmed line per row.
// Lines are not wrapped; whatever falls outside the page is clipped.
func RenderNotesPage(text string, opts NotesOptions) (NotesPage, error) {
	ff, err := newNotesFace()
	if err != nil {
		return NotesPage{}, err
	}
	defer ff.Close()
	canvas := imaging.New(NotesPageWidth, NotesPageHeight, color.White)

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.Black),
		Face: ff,
	}
	y := notesTop
	for _, line := range strings.Split(text, "\n") {
		d.Dot = fixed.P(notesLeft, y)
		d.DrawString(strings.TrimSpace(line))
		y += notesLineHeight
	}

	if opts.QR {
		canvas = stampQR(canvas, strings.TrimSpace(text), opts.Logger)
	}

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, canvas, imaging.JPEG, imaging.JPEGQuality(notesQuality)); err != nil {
		return NotesPage{}, err
	}
	return NotesPage{JPEG: buf.Bytes(), Width: NotesPageWidth, Height: NotesPageHeight}, nil
}

func stampQR(canvas *image.NRGBA, text string, logger *log.Logger) *image.NRGBA {
	q, err := QRImage(text, qrSize)
	if err != nil {
		if logger == nil {
			logger = log.Default()
		}
		logger.Println("notes qr skipped:", err)
		return canvas
	}
	pt := image.Pt(NotesPageWidth-qrMargin-qrSize, NotesPageHeight-qrMargin-qrSize)
	return imaging.Paste(canvas, q, pt)
}
