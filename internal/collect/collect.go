// Package collect gathers the inputs of a single "create document" action:
// the selected images, the notes text with its placement and the optional
// output file name.
package collect

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoFiles          = errors.New("no files selected")
	ErrInvalidPlacement = errors.New("invalid notes placement")
)

// Placement says where the notes page goes relative to the image pages.
type Placement int

const (
	PlacementLast Placement = iota
	PlacementFirst
)

// DefaultPlacement is used by surfaces when the caller did not choose one.
const DefaultPlacement = "last"

func (p Placement) String() string {
	if p == PlacementFirst {
		return "first"
	}
	return "last"
}

// ParsePlacement accepts "first" or "last" in any case.
func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first":
		return PlacementFirst, nil
	case "last":
		return PlacementLast, nil
	}
	return 0, fmt.Errorf("%w: %q (want first or last)", ErrInvalidPlacement, s)
}

// Notes is the free-text block attached to a document.
type Notes struct {
	Text      string
	Placement Placement
}

// Present reports whether the notes produce a page. Whitespace-only text does not.
func (n Notes) Present() bool {
	return strings.TrimSpace(n.Text) != ""
}

// Request is everything the pipeline needs for one document.
type Request struct {
	Files    []ImageInput
	Notes    Notes
	FileName string
}

// Collect validates the raw inputs and builds a Request. It never opens the
// image handles.
func Collect(files []ImageInput, notes, placement, fileName string) (Request, error) {
	if len(files) == 0 {
		return Request{}, ErrNoFiles
	}
	p, err := ParsePlacement(placement)
	if err != nil {
		return Request{}, err
	}
	return Request{
		Files:    files,
		Notes:    Notes{Text: notes, Placement: p},
		FileName: strings.TrimSpace(fileName),
	}, nil
}
