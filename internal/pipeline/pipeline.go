// Package pipeline turns a collected request into a delivered PDF:
// normalize images and render notes in parallel, assemble, name, render and
// dispatch.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/youruser/pixtopdf/internal/collect"
	"github.com/youruser/pixtopdf/internal/config"
	"github.com/youruser/pixtopdf/internal/deliver"
	"github.com/youruser/pixtopdf/internal/document"
	imagepkg "github.com/youruser/pixtopdf/internal/image"
	"github.com/youruser/pixtopdf/internal/naming"
)

type Options struct {
	AppName   string
	MaxWidth  int
	MaxHeight int
	Workers   int
	NotesQR   bool
	Logger    *log.Logger
	// Now defaults to time.Now; the default file name uses it.
	Now func() time.Time
}

// OptionsFromConfig maps the loaded config onto pipeline options.
func OptionsFromConfig(cfg config.Config, logger *log.Logger) Options {
	return Options{
		AppName:   cfg.AppName,
		MaxWidth:  cfg.Image.MaxWidth,
		MaxHeight: cfg.Image.MaxHeight,
		Workers:   cfg.Workers,
		NotesQR:   cfg.Notes.QR,
		Logger:    logger,
	}
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// Result is the produced artifact plus the page layout it was rendered from.
type Result struct {
	Artifact deliver.Artifact
	Document document.Document
}

// Create builds the PDF for req without delivering it.
func Create(ctx context.Context, req collect.Request, opts Options) (Result, error) {
	if len(req.Files) == 0 {
		return Result{}, collect.ErrNoFiles
	}

	var (
		images []imagepkg.Normalized
		notes  *imagepkg.NotesPage
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		images, err = imagepkg.NormalizeAll(gctx, req.Files, opts.MaxWidth, opts.MaxHeight, opts.Workers)
		return err
	})
	if req.Notes.Present() {
		g.Go(func() error {
			page, err := imagepkg.RenderNotesPage(req.Notes.Text, imagepkg.NotesOptions{QR: opts.NotesQR, Logger: opts.Logger})
			if err != nil {
				return fmt.Errorf("rendering notes: %w", err)
			}
			notes = &page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	doc := document.Assemble(images, notes, req.Notes.Placement)
	now := opts.now()
	appName := opts.AppName
	if appName == "" {
		appName = naming.DefaultAppName
	}
	name := naming.FileName(req.FileName, appName, now)

	data, err := document.Render(doc, document.Meta{Title: name, Creator: appName, CreatedAt: now})
	if err != nil {
		return Result{}, fmt.Errorf("rendering %s: %w", name, err)
	}
	opts.logger().Printf("created %s: %d pages, %d images, %d bytes", name, len(doc.Pages), doc.ImageCount(), len(data))

	return Result{
		Artifact: deliver.Artifact{Name: name, Data: data},
		Document: doc,
	}, nil
}

// Run creates the document and hands it to d.
func Run(ctx context.Context, req collect.Request, opts Options, d deliver.Dispatcher) (Result, error) {
	res, err := Create(ctx, req, opts)
	if err != nil {
		return Result{}, err
	}
	if err := d.Dispatch(ctx, res.Artifact); err != nil {
		return res, fmt.Errorf("delivering %s: %w", res.Artifact.Name, err)
	}
	return res, nil
}
