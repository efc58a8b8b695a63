package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/youruser/pixtopdf/internal/collect"
	"github.com/youruser/pixtopdf/internal/deliver"
	"github.com/youruser/pixtopdf/internal/pipeline"
)

type createFlags struct {
	notes     string
	notesFile string
	placement string
	name      string
	outDir    string
	delivery  string
	qr        bool
}

func newCreateCmd(a *app) *cobra.Command {
	f := &createFlags{}
	cmd := &cobra.Command{
		Use:   "create [images or URLs...]",
		Short: "Create a PDF from images and optional notes",
		Long: `Create resizes every image to fit 1024x1024, keeps the given order, and
writes one PDF. Notes become a separate page placed first or last.
Without --name the file is called PIXtoPDF_MM.DD.YY_H.MMAM.pdf.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, a, f, args)
		},
	}
	cmd.Flags().StringVar(&f.notes, "notes", "", "notes text")
	cmd.Flags().StringVar(&f.notesFile, "notes-file", "", "read notes from a file (- for stdin)")
	cmd.Flags().StringVar(&f.placement, "placement", collect.DefaultPlacement, "notes page position: first or last")
	cmd.Flags().StringVar(&f.name, "name", "", "output file name (.pdf is appended if missing)")
	cmd.Flags().StringVar(&f.outDir, "out", "", "directory for the saved PDF (default from config)")
	cmd.Flags().StringVar(&f.delivery, "delivery", "", "auto, share or download (default from config)")
	cmd.Flags().BoolVar(&f.qr, "qr", false, "stamp a QR code of the notes on the notes page")
	return cmd
}

func runCreate(cmd *cobra.Command, a *app, f *createFlags, args []string) error {
	ctx := cmd.Context()
	cfg := a.cfg

	inputs := make([]collect.ImageInput, 0, len(args))
	for _, arg := range args {
		if collect.IsURL(arg) {
			inputs = append(inputs, collect.FromURL(ctx, arg, cfg.Fetch.Timeout))
		} else {
			inputs = append(inputs, collect.FromPath(arg))
		}
	}

	notes := f.notes
	if f.notesFile != "" {
		b, err := readNotes(cmd.InOrStdin(), f.notesFile)
		if err != nil {
			return fmt.Errorf("reading notes: %w", err)
		}
		notes = string(b)
	}

	req, err := collect.Collect(inputs, notes, f.placement, f.name)
	if errors.Is(err, collect.ErrNoFiles) {
		return fmt.Errorf("please select images to create a PDF: %w", err)
	}
	if err != nil {
		return err
	}

	modeStr := cfg.Delivery.Mode
	if f.delivery != "" {
		modeStr = f.delivery
	}
	mode, err := deliver.ParseMode(modeStr)
	if err != nil {
		return err
	}
	outDir := cfg.Delivery.OutputDir
	if f.outDir != "" {
		outDir = f.outDir
	}

	logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	downloader := &deliver.DirDownloader{Dir: outDir}
	d := deliver.Dispatcher{
		Capability: mode.Resolve(deliver.DetectLocal(runtime.GOOS, exec.LookPath, cfg.Delivery.ShareCommand)),
		Sharer:     deliver.NewCommandSharer(cfg.Delivery.ShareCommand),
		Downloader: downloader,
		Logger:     logger,
	}

	opts := pipeline.OptionsFromConfig(cfg, logger)
	if f.qr {
		opts.NotesQR = true
	}

	res, err := pipeline.Run(ctx, req, opts, d)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.Document.Outline())
	if downloader.Path != "" {
		fmt.Fprintf(out, "saved: %s\n", downloader.Path)
	} else {
		fmt.Fprintf(out, "handed to share: %s\n", res.Artifact.Name)
	}
	return nil
}

func readNotes(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
