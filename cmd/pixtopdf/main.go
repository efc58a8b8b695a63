// Package main is the pixtopdf command: build one PDF from images and notes,
// from the command line or through a small web form.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/youruser/pixtopdf/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

// app carries state shared by the subcommands once flags are parsed.
type app struct {
	cfgFile string
	cfg     config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pixtopdf",
		Short: "Turn images and notes into a single PDF",
		Long: `pixtopdf resizes the selected images, optionally adds a page of notes
before or after them, and produces one PDF. On a phone the document is handed
to the share sheet; elsewhere it is saved or downloaded.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./pixtopdf.yaml or ~/.config/pixtopdf/pixtopdf.yaml)")

	root.AddCommand(newCreateCmd(a), newServeCmd(a), newConfigCmd(a), newVersionCmd())
	return root
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	v := config.New(a.cfgFile)
	if err := config.ReadFile(v, a.cfgFile != ""); err != nil {
		return err
	}
	if used := v.ConfigFileUsed(); used != "" && a.cfgFile == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", used)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
