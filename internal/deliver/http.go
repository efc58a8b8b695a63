package deliver

import (
	"context"
	"mime"
	"net/http"
	"strconv"
)

// ResponseDownloader answers with the document as an attachment.
type ResponseDownloader struct {
	W http.ResponseWriter
}

func (d ResponseDownloader) Download(_ context.Context, a Artifact) error {
	return writeResponse(d.W, a, "attachment")
}

// ResponseSharer answers with the document inline so the mobile browser opens
// it in its viewer, where the system share sheet is available.
type ResponseSharer struct {
	W http.ResponseWriter
}

func (s ResponseSharer) Share(_ context.Context, a Artifact) error {
	return writeResponse(s.W, a, "inline")
}

func writeResponse(w http.ResponseWriter, a Artifact, disposition string) error {
	h := w.Header()
	h.Set("Content-Type", a.MIMEType())
	h.Set("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": a.Name}))
	h.Set("Content-Length", strconv.Itoa(len(a.Data)))
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(a.Data)
	return err
}
