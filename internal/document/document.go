// Package document orders normalized images and the optional notes page
// into pages and renders them as a PDF.
package document

import (
	"github.com/youruser/pixtopdf/internal/collect"
	imagepkg "github.com/youruser/pixtopdf/internal/image"
)

// Kind tells image pages and the notes page apart.
type Kind int

const (
	KindImage Kind = iota
	KindNotes
)

// Page is one page of the document. JPEG holds the encoded raster drawn on it.
type Page struct {
	Kind   Kind
	Name   string
	JPEG   []byte
	Width  int
	Height int
}

// Document is the ordered page list. At most one page is KindNotes and it is
// either the first or the last page.
type Document struct {
	Pages []Page
}

// ImageCount returns the number of image pages.
func (d Document) ImageCount() int {
	n := 0
	for _, p := range d.Pages {
		if p.Kind == KindImage {
			n++
		}
	}
	return n
}

// Assemble lays out images in selection order and puts notes, if any, before
// or after all of them.
func Assemble(images []imagepkg.Normalized, notes *imagepkg.NotesPage, placement collect.Placement) Document {
	pages := make([]Page, 0, len(images)+1)
	var notesPage Page
	if notes != nil {
		notesPage = Page{Kind: KindNotes, Name: "notes", JPEG: notes.JPEG, Width: notes.Width, Height: notes.Height}
	}
	if notes != nil && placement == collect.PlacementFirst {
		pages = append(pages, notesPage)
	}
	for _, img := range images {
		pages = append(pages, Page{Kind: KindImage, Name: img.Name, JPEG: img.JPEG, Width: img.Width, Height: img.Height})
	}
	if notes != nil && placement == collect.PlacementLast {
		pages = append(pages, notesPage)
	}
	return Document{Pages: pages}
}
