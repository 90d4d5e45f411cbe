package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/plankworks/cabd/pkg/config"
	"github.com/plankworks/cabd/pkg/cutlist"
	"github.com/plankworks/cabd/pkg/export"
	"github.com/plankworks/cabd/pkg/geometry"
	"github.com/plankworks/cabd/pkg/layout"
	"github.com/plankworks/cabd/pkg/library"
	"github.com/plankworks/cabd/pkg/model"
	"github.com/plankworks/cabd/pkg/session"
	"github.com/plankworks/cabd/pkg/ui"
)

const usage = `Usage: cabd <command> [options]

A parametric furniture module designer.

Commands:
  view      open the interactive editor (default)
  cutlist   print the production cutlist
  export    write SVG, PNG and TSV snapshots
  plan      pack the cutlist onto raw sheets and estimate material
  save      save the config into the design library
  list      list or search the design library

Run 'cabd <command> -help' for command options.
`

func main() {
	args := os.Args[1:]
	cmd := "view"
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		cmd = args[0]
		args = args[1:]
	}

	var err error
	switch cmd {
	case "view":
		err = runView(args)
	case "cutlist":
		err = runCutlist(args)
	case "export":
		err = runExport(args)
	case "plan":
		err = runPlan(args)
	case "save":
		err = runSave(args)
	case "list":
		err = runList(args)
	case "help", "-help", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cabd: %v\n", err)
		os.Exit(1)
	}
}

// configFlag registers the shared -config flag on a flag set.
func configFlag(fs *flag.FlagSet) *string {
	return fs.String("config", config.DefaultFileName, "Path to the module config file")
}

func loadConfig(path string) (model.ModuleConfig, error) {
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return model.ModuleConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func runView(args []string) error {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	cfgPath := configFlag(fs)
	watch := fs.Bool("watch", true, "Reload when the config file changes on disk")
	fs.Parse(args)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}

	store := session.New(cfg, geometry.Point{})
	m := ui.NewModel(store, *cfgPath)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if *watch {
		w, err := config.Watch(*cfgPath, 200*time.Millisecond,
			func(c model.ModuleConfig) { p.Send(ui.ConfigChangedMsg{Config: c}) },
			func(error) {})
		if err == nil {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

func runCutlist(args []string) error {
	fs := flag.NewFlagSet("cutlist", flag.ExitOnError)
	cfgPath := configFlag(fs)
	asTSV := fs.Bool("tsv", false, "Emit tab-separated values instead of a table")
	fs.Parse(args)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	panels := cutlist.GeneratePanels(cfg)

	if *asTSV {
		fmt.Print(export.CutlistTSV(panels))
		return nil
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	fmt.Println(ui.RenderCutlist(panels, width))
	return nil
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	cfgPath := configFlag(fs)
	dir := fs.String("dir", ".", "Output directory")
	base := fs.String("name", "module", "Base name for the output files")
	scale := fs.Float64("scale", 0.25, "Millimeters to pixels scale for the images")
	fs.Parse(args)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}

	shapes := layout.Generate(cfg, geometry.Point{})
	panels := cutlist.GeneratePanels(cfg)
	if err := export.ExportAll(*dir, *base, shapes, panels, export.Options{Scale: *scale}); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Printf("wrote %s.{svg,png,tsv} to %s\n", *base, *dir)
	return nil
}

func runPlan(args []string) error {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	cfgPath := configFlag(fs)
	kerf := fs.Float64("kerf", cutlist.DefaultKerfMm, "Saw kerf in millimeters")
	waste := fs.Float64("waste", 15, "Waste allowance percentage for the purchase estimate")
	fs.Parse(args)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	panels := cutlist.GeneratePanels(cfg)
	plan := cutlist.PackSheets(panels, *kerf)
	est := cutlist.EstimateUsage(panels, *waste)

	fmt.Printf("Sheets (%.0fx%.0fmm): %d\n", model.SheetWidthMm, model.SheetHeightMm, len(plan.Sheets))
	for i, sheet := range plan.Sheets {
		fmt.Printf("  sheet %d: %d pieces, %.0f%% used\n", i+1, len(sheet.Placements), sheet.Efficiency()*100)
	}
	if len(plan.Unplaced) > 0 {
		fmt.Printf("Unplaced (oversize) pieces: %d\n", len(plan.Unplaced))
		for _, p := range plan.Unplaced {
			fmt.Printf("  %s %.0fx%.0fmm\n", p.Name, p.WidthMm, p.HeightMm)
		}
	}
	fmt.Printf("Panel area: %.2f sqm, mean panel %.2f sqm (stddev %.2f)\n",
		est.TotalAreaSqM, est.MeanPanelAreaSqM, est.StdDevPanelAreaSqM)
	fmt.Printf("Estimated purchase: %d sheets (%.0f%% waste allowance)\n", est.SheetsWithWaste, est.WastePercent)
	return nil
}

func runSave(args []string) error {
	fs := flag.NewFlagSet("save", flag.ExitOnError)
	cfgPath := configFlag(fs)
	dbPath := fs.String("db", defaultDBPath(), "Path to the design library database")
	name := fs.String("as", "", "Design name (required)")
	fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("save: -as name is required")
	}
	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}

	db, err := library.Open(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	d, err := db.Save(*name, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("saved %q (%s, %.0fx%.0fmm)\n", d.Name, d.Archetype, d.Config.WidthMm, d.Config.HeightMm)
	return nil
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dbPath := fs.String("db", defaultDBPath(), "Path to the design library database")
	query := fs.String("find", "", "Fuzzy-match designs by name")
	fs.Parse(args)

	db, err := library.Open(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	designs, err := db.Find(*query)
	if err != nil {
		return err
	}
	if len(designs) == 0 {
		fmt.Println("no designs saved")
		return nil
	}
	for _, d := range designs {
		fmt.Printf("%-24s %-12s %5.0fx%-5.0f %s\n",
			d.Name, d.Archetype, d.Config.WidthMm, d.Config.HeightMm,
			d.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "cabd.db"
	}
	return filepath.Join(home, ".cabd", "designs.db")
}
