package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"tableflip.dev/jmap/pkg/glyph"
	"tableflip.dev/jmap/pkg/journey"
)

// PDF renders the document as a fixed-width paginated A4 PDF: the map
// title, then each column as a heading followed by its items in journey
// order. The export reflects whatever the document holds at invocation
// time; it owns no state of its own.
func PDF(w io.Writer, doc journey.Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 10, doc.Title, "", "L", false)
	pdf.Ln(4)

	writeColumn(pdf, doc.Current)
	pdf.Ln(6)
	writeColumn(pdf, doc.Future)

	return pdf.Output(w)
}

func writeColumn(pdf *gofpdf.Fpdf, col journey.Column) {
	pdf.SetFont("Helvetica", "B", 15)
	pdf.SetTextColor(30, 41, 59)
	pdf.MultiCell(0, 8, col.Title, "B", "L", false)
	pdf.Ln(2)

	if len(col.Items) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.SetTextColor(148, 163, 184)
		pdf.MultiCell(0, 6, "No steps yet", "", "L", false)
		return
	}

	for _, item := range col.Items {
		switch item.Kind {
		case glyph.Section:
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 12)
			pdf.SetTextColor(71, 85, 105)
			pdf.MultiCell(0, 6, item.Label(), "", "L", false)
		case glyph.System:
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetTextColor(79, 70, 229)
			pdf.MultiCell(0, 6, fmt.Sprintf("  [system] %s", item.Label()), "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetTextColor(15, 23, 42)
			pdf.MultiCell(0, 6, fmt.Sprintf("  - %s", item.Label()), "", "L", false)
		}
	}
}
