// Package deliver hands a finished document to the user: through a native
// share action when the runtime can share, otherwise as a saved or
// downloaded file.
package deliver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

const MIMEType = "application/pdf"

var (
	ErrShareRejected = errors.New("share rejected")
	ErrNoDownloader  = errors.New("no downloader configured")
	ErrInvalidMode   = errors.New("invalid delivery mode")
)

// Artifact is the serialized document and its resolved file name.
type Artifact struct {
	Name string
	Data []byte
}

func (a Artifact) MIMEType() string { return MIMEType }

// Capability is decided once per invocation.
type Capability int

const (
	DownloadOnly Capability = iota
	ShareCapable
)

func (c Capability) String() string {
	if c == ShareCapable {
		return "share"
	}
	return "download"
}

// Mode is the configured delivery preference.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeShare    Mode = "share"
	ModeDownload Mode = "download"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeShare, ModeDownload:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Resolve applies the mode to a detected capability.
func (m Mode) Resolve(detected Capability) Capability {
	switch m {
	case ModeShare:
		return ShareCapable
	case ModeDownload:
		return DownloadOnly
	}
	return detected
}

type Sharer interface {
	Share(ctx context.Context, a Artifact) error
}

type Downloader interface {
	Download(ctx context.Context, a Artifact) error
}

// Dispatcher routes an artifact by capability. A failed or cancelled share is
// logged and swallowed; it never falls back to a download.
type Dispatcher struct {
	Capability Capability
	Sharer     Sharer
	Downloader Downloader
	Logger     *log.Logger
}

func (d Dispatcher) Dispatch(ctx context.Context, a Artifact) error {
	if d.Capability == ShareCapable && d.Sharer != nil {
		if err := d.Sharer.Share(ctx, a); err != nil {
			d.logger().Println(fmt.Errorf("%w: %s: %v", ErrShareRejected, a.Name, err))
		}
		return nil
	}
	if d.Downloader == nil {
		return ErrNoDownloader
	}
	return d.Downloader.Download(ctx, a)
}

func (d Dispatcher) logger() *log.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return log.Default()
}
