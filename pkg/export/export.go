package export

import (
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/plankworks/cabd/pkg/model"
)

// ExportAll writes the SVG and PNG snapshots plus the cutlist TSV into dir,
// using the given base name. The two image renders are independent, so they
// run concurrently.
func ExportAll(dir, base string, shapes []model.Shape, panels []model.CutlistPanel, opts Options) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		return SaveSVG(filepath.Join(dir, base+".svg"), shapes, opts)
	})
	g.Go(func() error {
		return SavePNG(filepath.Join(dir, base+".png"), shapes, opts)
	})
	g.Go(func() error {
		return os.WriteFile(filepath.Join(dir, base+".tsv"), []byte(CutlistTSV(panels)), 0644)
	})
	return g.Wait()
}
