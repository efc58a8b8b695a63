package api

import (
	_ "embed"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/pixtopdf/internal/collect"
	"github.com/youruser/pixtopdf/internal/deliver"
	imagepkg "github.com/youruser/pixtopdf/internal/image"
	"github.com/youruser/pixtopdf/internal/pipeline"
)

//go:embed web/index.html
var indexHTML []byte

const defaultMaxUpload = 64 << 20

// Handler serves the document form and builds documents from its posts.
type Handler struct {
	Options pipeline.Options
	// Mode overrides user-agent detection unless it is deliver.ModeAuto.
	Mode           deliver.Mode
	MaxUploadBytes int64
	Logger         *log.Logger
}

func (h *Handler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return log.Default()
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// createDocument takes multipart fields files (repeated), notes,
// notes_position, file_name and an optional delivery override, and answers
// with the PDF.
func (h *Handler) createDocument(c *gin.Context) {
	limit := h.MaxUploadBytes
	if limit <= 0 {
		limit = defaultMaxUpload
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	form, err := c.MultipartForm()
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var inputs []collect.ImageInput
	if form != nil {
		for _, fh := range form.File["files"] {
			inputs = append(inputs, collect.FromFileHeader(fh))
		}
	}

	placement := c.PostForm("notes_position")
	if placement == "" {
		placement = collect.DefaultPlacement
	}
	req, err := collect.Collect(inputs, c.PostForm("notes"), placement, c.PostForm("file_name"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode := h.Mode
	if v := c.PostForm("delivery"); v != "" {
		if mode, err = deliver.ParseMode(v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	res, err := pipeline.Create(c.Request.Context(), req, h.Options)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, imagepkg.ErrUnreadable) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	d := deliver.Dispatcher{
		Capability: mode.Resolve(deliver.DetectUserAgent(c.Request.UserAgent())),
		Sharer:     deliver.ResponseSharer{W: c.Writer},
		Downloader: deliver.ResponseDownloader{W: c.Writer},
		Logger:     h.logger(),
	}
	if err := d.Dispatch(c.Request.Context(), res.Artifact); err != nil {
		h.logger().Println("download of", res.Artifact.Name, "failed:", err)
	}
}
