package deliver

import (
	"context"
	"log"

	"github.com/youruser/pixtopdf/internal/util"
)

// DirDownloader saves the artifact into Dir under its resolved name.
type DirDownloader struct {
	Dir    string
	Logger *log.Logger

	// Path is set to the written file after a successful Download.
	Path string
}

func (d *DirDownloader) Download(_ context.Context, a Artifact) error {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	path, err := util.WriteFileIn(dir, a.Name, a.Data)
	if err != nil {
		return err
	}
	d.Path = path
	if d.Logger != nil {
		d.Logger.Println("saved", path)
	}
	return nil
}
