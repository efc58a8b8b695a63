package document

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// Page geometry in millimetres on an A4 portrait page.
const (
	imageX     = 10
	imageY     = 10
	imageWidth = 190

	a4Width  = 210
	a4Height = 297
)

var ErrEmptyDocument = errors.New("document has no pages")

// Meta is written into the PDF info dictionary.
type Meta struct {
	Title     string
	Creator   string
	CreatedAt time.Time
}

// Render encodes doc as an A4 PDF. Image pages are drawn 190mm wide at a 10mm
// offset with the height following the aspect ratio; the notes page covers the
// whole sheet.
func Render(doc Document, meta Meta) ([]byte, error) {
	if len(doc.Pages) == 0 {
		return nil, ErrEmptyDocument
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(meta.Title, true)
	pdf.SetCreator(meta.Creator, true)
	if !meta.CreatedAt.IsZero() {
		pdf.SetCreationDate(meta.CreatedAt)
	}

	opts := fpdf.ImageOptions{ImageType: "JPG"}
	for i, p := range doc.Pages {
		pdf.AddPage()
		name := fmt.Sprintf("page-%d", i)
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(p.JPEG))
		if p.Kind == KindNotes {
			pdf.ImageOptions(name, 0, 0, a4Width, a4Height, false, opts, 0, "")
		} else {
			// zero height keeps the aspect ratio
			pdf.ImageOptions(name, imageX, imageY, imageWidth, 0, false, opts, 0, "")
		}
		if pdf.Err() {
			return nil, fmt.Errorf("page %d (%s): %w", i+1, p.Name, pdf.Error())
		}
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}
