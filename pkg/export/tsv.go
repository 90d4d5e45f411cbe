package export

import (
	"fmt"
	"strings"

	"github.com/plankworks/cabd/pkg/model"
)

// CutlistTSV renders the cutlist as tab-separated text, one row per panel
// group. This is the format spreadsheet apps and the clipboard path consume.
func CutlistTSV(panels []model.CutlistPanel) string {
	var b strings.Builder
	b.WriteString("Name\tWidth (mm)\tHeight (mm)\tThickness (mm)\tQty\tMaterial\tGaddi\tFits Sheet\n")
	for _, p := range panels {
		fmt.Fprintf(&b, "%s\t%.0f\t%.0f\t%.0f\t%d\t%s\t%s\t%s\n",
			p.Name, p.WidthMm, p.HeightMm, p.ThicknessMm, p.Quantity, p.Material,
			yesNo(p.Gaddi), yesNo(p.FitsInSheet))
	}
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
