package cutlist

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/plankworks/cabd/pkg/model"
)

// Estimate summarizes material usage for a cutlist: how many standard sheets
// to buy and how the panel sizes are distributed. The waste factor covers
// kerf loss and offcuts that the area sum alone underestimates.
type Estimate struct {
	PanelCount      int     `json:"panel_count"`
	TotalAreaSqM    float64 `json:"total_area_sqm"`
	SheetAreaSqM    float64 `json:"sheet_area_sqm"`
	SheetsExact     float64 `json:"sheets_exact"`
	SheetsMin       int     `json:"sheets_min"`
	SheetsWithWaste int     `json:"sheets_with_waste"`
	WastePercent    float64 `json:"waste_percent"`

	MeanPanelAreaSqM   float64 `json:"mean_panel_area_sqm"`
	StdDevPanelAreaSqM float64 `json:"stddev_panel_area_sqm"`
	OversizeCount      int     `json:"oversize_count"` // panels failing the sheet-fit check
}

const sqmmPerSqM = 1e6

// EstimateUsage computes the purchase estimate for a cutlist at the given
// waste percentage (e.g. 15 for 15%).
func EstimateUsage(panels []model.CutlistPanel, wastePercent float64) Estimate {
	e := Estimate{WastePercent: wastePercent}

	var areas []float64
	var total float64
	for _, p := range panels {
		area := p.WidthMm * p.HeightMm / sqmmPerSqM
		for i := 0; i < p.Quantity; i++ {
			areas = append(areas, area)
			total += area
		}
		e.PanelCount += p.Quantity
		if !p.FitsInSheet {
			e.OversizeCount += p.Quantity
		}
	}
	e.TotalAreaSqM = total
	e.SheetAreaSqM = model.SheetWidthMm * model.SheetHeightMm / sqmmPerSqM

	if len(areas) > 0 {
		e.MeanPanelAreaSqM = stat.Mean(areas, nil)
		e.StdDevPanelAreaSqM = stat.StdDev(areas, nil)
		if math.IsNaN(e.StdDevPanelAreaSqM) {
			e.StdDevPanelAreaSqM = 0
		}
	}

	if e.SheetAreaSqM > 0 {
		e.SheetsExact = total / e.SheetAreaSqM
		e.SheetsMin = int(math.Ceil(e.SheetsExact))
		e.SheetsWithWaste = int(math.Ceil(e.SheetsExact * (1 + wastePercent/100)))
		if e.SheetsWithWaste < e.SheetsMin {
			e.SheetsWithWaste = e.SheetsMin
		}
	}
	return e
}
