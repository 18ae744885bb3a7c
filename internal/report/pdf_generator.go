package report

import (
	"bytes"
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"
	"github.com/user/lutplot/internal/analysis"
	"github.com/user/lutplot/internal/parser"
)

const (
	inchToMm          = 25.4
	pdfPageWidth      = 11 * inchToMm // Letter landscape
	pdfPageHeight     = 8.5 * inchToMm
	pdfMargin         = 0.5 * inchToMm
	pdfContentWidth   = pdfPageWidth - 2*pdfMargin
	pdfUsableHeight   = pdfPageHeight - 2*pdfMargin
	pdfLineHeight     = 6 // mm
	summaryLabelWidth = 0.35 * pdfContentWidth
	summaryValueWidth = 0.65 * pdfContentWidth
)

// pdfStyler holds reusable styling and flowing-Y state for PDF generation.
type pdfStyler struct {
	pdf      *gofpdf.Fpdf
	styles   map[string]func()
	currentY float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:      pdf,
		styles:   make(map[string]func()),
		currentY: pdfMargin,
	}
	s.styles["h1"] = func() {
		pdf.SetFont("Arial", "B", 16)
		pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		pdf.SetFont("Arial", "B", 14)
		pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableHeader"] = func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(200, 200, 200)
		pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(50, 50, 50)
	}
	return s
}

func (s *pdfStyler) applyStyle(name string) {
	if fn, ok := s.styles[name]; ok {
		fn()
	} else {
		s.styles["normal"]()
	}
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > pdfUsableHeight {
		s.pdf.AddPage()
		s.currentY = pdfMargin
	}
}

func (s *pdfStyler) writeParagraph(text, style, align string) {
	s.applyStyle(style)
	s.checkAddPage(pdfLineHeight)
	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, pdfLineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY() + 1
}

func (s *pdfStyler) addSpacer(height float64) {
	s.checkAddPage(height)
	s.currentY += height
}

func (s *pdfStyler) addImage(imageBytes []byte, name string, width, height float64, caption string) {
	s.pdf.RegisterImageReader(name, "PNG", bytes.NewReader(imageBytes))

	if width > pdfContentWidth {
		height *= pdfContentWidth / width
		width = pdfContentWidth
	}
	captionHeight := 0.0
	if caption != "" {
		captionHeight = pdfLineHeight + 1
	}
	s.checkAddPage(height + captionHeight)

	s.pdf.Image(name, pdfMargin, s.currentY, width, height, false, "PNG", 0, "")
	s.currentY += height
	if caption != "" {
		s.addSpacer(1)
		s.writeParagraph(caption, "normal", "C")
	}
	s.addSpacer(2)
}

// writeSummaryRow writes one label/value pair of the statistics table.
func (s *pdfStyler) writeSummaryRow(label, value string) {
	s.checkAddPage(pdfLineHeight)
	s.pdf.SetXY(pdfMargin, s.currentY)
	s.applyStyle("tableHeader")
	s.pdf.CellFormat(summaryLabelWidth, pdfLineHeight, label, "1", 0, "L", true, 0, "")
	s.applyStyle("tableCell")
	s.pdf.CellFormat(summaryValueWidth, pdfLineHeight, value, "1", 0, "L", false, 0, "")
	s.currentY += pdfLineHeight
}

// BuildPDFReport writes a report with the comparison statistics and the
// rendered charts. The images map may carry "comparison" and "error" PNG
// entries; missing entries are noted in the document rather than failing.
func BuildPDFReport(path string, t *parser.Table, c *analysis.Comparison, images map[string][]byte) error {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	styler := newPDFStyler(pdf)

	styler.writeParagraph("Lookup Table Implementation Report", "h1", "C")
	styler.addSpacer(2)
	styler.writeParagraph(fmt.Sprintf("Source: %s", t.Path), "normal", "L")
	if t.Header != "" {
		styler.writeParagraph(fmt.Sprintf("Header: %s", t.Header), "normal", "L")
	}
	styler.addSpacer(4)

	styler.writeParagraph("Summary", "h2", "L")
	if c == nil || c.NumPoints == 0 {
		styler.writeParagraph("No data rows; statistics unavailable.", "normal", "L")
	} else {
		styler.writeSummaryRow("Points", fmt.Sprintf("%d", c.NumPoints))
		styler.writeSummaryRow("Domain", fmt.Sprintf("[%.6g, %.6g]", t.Domain[0], t.Domain[t.Len()-1]))
		styler.writeSummaryRow("Max |error|", fmt.Sprintf("%.6g at x = %.6g", c.MaxAbsErr, c.WorstX))
		styler.writeSummaryRow("Mean |error|", fmt.Sprintf("%.6g", c.MeanAbsErr))
		styler.writeSummaryRow("RMS error", fmt.Sprintf("%.6g", c.RMSErr))
	}
	styler.addSpacer(6)

	imgWidth := pdfContentWidth * 0.9
	imgHeight := imgWidth * (float64(DefaultHeight) / float64(DefaultWidth))
	imgHeight = math.Min(imgHeight, pdfUsableHeight*0.6)

	charts := []struct {
		Key     string
		Caption string
	}{
		{"comparison", "Exact function and table approximation"},
		{"error", "Pointwise approximation error"},
	}
	for _, chart := range charts {
		imgBytes, ok := images[chart.Key]
		if !ok {
			continue
		}
		if len(imgBytes) == 0 {
			styler.writeParagraph(fmt.Sprintf("Chart %q not available.", chart.Key), "normal", "L")
			continue
		}
		styler.addImage(imgBytes, chart.Key, imgWidth, imgHeight, chart.Caption)
	}

	return pdf.OutputFileAndClose(path)
}
