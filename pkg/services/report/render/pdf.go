package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/fin-tools/pocket-ledger/pkg/models/domain"
)

const contentTypePDF = "application/pdf"

// Page geometry, in points on A4 portrait.
const (
	pageMargin      = 40.0
	headerBarHeight = 24.0
	cardHeight      = 64.0
	cardPadding     = 10.0
	tableRowHeight  = 22.0
	footerReserve   = 48.0
	cellMaxChars    = 40
)

type rgb struct{ r, g, b int }

var (
	colorBrandLeft  = rgb{25, 42, 86}    // navy
	colorBrandRight = rgb{26, 188, 156}  // teal
	colorPositive   = rgb{39, 174, 96}   // green
	colorNegative   = rgb{231, 76, 60}   // red
	colorNeutral    = rgb{44, 62, 80}    // navy
	colorRatio      = rgb{230, 126, 34}  // orange
	colorRowTint    = rgb{245, 247, 250} // alternating row background
	colorInk        = rgb{45, 52, 54}
	colorMuted      = rgb{120, 126, 130}
)

func cardColor(kind cardKind) rgb {
	switch kind {
	case kindPositive:
		return colorPositive
	case kindNegative:
		return colorNegative
	case kindRatio:
		return colorRatio
	default:
		return colorNeutral
	}
}

type pdfRenderer struct {
	now func() time.Time
}

func NewPDFRenderer() Renderer {
	return &pdfRenderer{now: time.Now}
}

func (r *pdfRenderer) Render(data domain.ReportData) (*Document, error) {
	content, err := buildSections(data)
	if err != nil {
		return nil, err
	}

	l := newPDFLayout(content, r.now())
	l.build()

	var buf bytes.Buffer
	if err := l.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("finalize pdf: %w", err)
	}

	return &Document{
		Bytes:       buf.Bytes(),
		Filename:    baseFilename(data) + ".pdf",
		ContentType: contentTypePDF,
	}, nil
}

// pdfLayout threads the drawing cursor through every layout step instead
// of leaving it as ambient state; y always points at the next free line.
type pdfLayout struct {
	pdf         *gofpdf.Fpdf
	content     sections
	generatedAt time.Time
	pageW       float64
	pageH       float64
	y           float64
}

func newPDFLayout(content sections, generatedAt time.Time) *pdfLayout {
	pdf := gofpdf.New("P", "pt", "A4", "")
	l := &pdfLayout{
		pdf:         pdf,
		content:     content,
		generatedAt: generatedAt,
	}
	l.pageW, l.pageH = pdf.GetPageSize()

	// Pinning the metadata clock to the report timestamp keeps output
	// byte-identical for identical inputs.
	pdf.SetCreationDate(generatedAt)
	pdf.SetModificationDate(generatedAt)

	// The split-color brand bar tops every page, including pages started
	// mid-table by pagination.
	pdf.SetHeaderFunc(func() {
		pdf.SetFillColor(colorBrandLeft.r, colorBrandLeft.g, colorBrandLeft.b)
		pdf.Rect(0, 0, l.pageW/2, headerBarHeight, "F")
		pdf.SetFillColor(colorBrandRight.r, colorBrandRight.g, colorBrandRight.b)
		pdf.Rect(l.pageW/2, 0, l.pageW/2, headerBarHeight, "F")
		l.y = headerBarHeight + 24
	})

	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(colorMuted.r, colorMuted.g, colorMuted.b)
		pdf.SetY(-30)
		pdf.SetX(pageMargin)
		half := (l.pageW - 2*pageMargin) / 2
		pdf.CellFormat(half, 12, "Generated on "+l.generatedAt.Format("2006-01-02"), "", 0, "L", false, 0, "")
		pdf.CellFormat(half, 12, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	// Pagination is handled explicitly so table headers can be re-emitted.
	pdf.SetAutoPageBreak(false, 0)
	return l
}

func (l *pdfLayout) contentWidth() float64 {
	return l.pageW - 2*pageMargin
}

func (l *pdfLayout) build() {
	l.pdf.AddPage()
	l.drawTitleBlock()
	l.drawCards()
	for _, t := range l.content.Tables {
		l.drawTable(t)
	}
}

func (l *pdfLayout) drawTitleBlock() {
	l.pdf.SetFont("Helvetica", "B", 22)
	l.pdf.SetTextColor(colorBrandLeft.r, colorBrandLeft.g, colorBrandLeft.b)
	l.pdf.SetXY(pageMargin, l.y)
	l.pdf.CellFormat(l.contentWidth(), 26, l.content.Title, "", 0, "C", false, 0, "")
	l.y += 32

	l.pdf.SetFont("Helvetica", "", 12)
	l.pdf.SetTextColor(colorMuted.r, colorMuted.g, colorMuted.b)
	l.pdf.SetXY(pageMargin, l.y)
	l.pdf.CellFormat(l.contentWidth(), 14, l.content.Period, "", 0, "C", false, 0, "")
	l.y += 22

	l.pdf.SetDrawColor(200, 204, 208)
	l.pdf.Line(pageMargin, l.y, l.pageW-pageMargin, l.y)
	l.y += 18
}

func (l *pdfLayout) drawCards() {
	cardW := (l.pageW - 80) / 4

	for i, c := range l.content.Cards {
		x := pageMargin + float64(i)*cardW
		fill := cardColor(c.Kind)
		l.pdf.SetFillColor(fill.r, fill.g, fill.b)
		l.pdf.Rect(x+2, l.y, cardW-4, cardHeight, "F")

		l.pdf.SetTextColor(255, 255, 255)
		l.pdf.SetFont("Helvetica", "B", 9)
		l.pdf.SetXY(x+cardPadding, l.y+cardPadding)
		l.pdf.CellFormat(cardW-2*cardPadding, 11, c.Label, "", 0, "L", false, 0, "")

		l.pdf.SetFont("Helvetica", "B", 15)
		l.pdf.SetXY(x+cardPadding, l.y+26)
		l.pdf.CellFormat(cardW-2*cardPadding, 17, c.Value, "", 0, "L", false, 0, "")

		if c.Subtext != "" {
			l.pdf.SetFont("Helvetica", "", 8)
			l.pdf.SetXY(x+cardPadding, l.y+46)
			l.pdf.CellFormat(cardW-2*cardPadding, 10, c.Subtext, "", 0, "L", false, 0, "")
		}
	}

	l.y += cardHeight + 26
}

// ensureSpace starts a new page when fewer than needed points remain
// above the footer. Returns true when a page break happened.
func (l *pdfLayout) ensureSpace(needed float64) bool {
	if l.y+needed <= l.pageH-footerReserve {
		return false
	}
	l.pdf.AddPage()
	return true
}

func (l *pdfLayout) drawTable(t table) {
	widths := make([]float64, len(t.Ratios))
	for i, r := range t.Ratios {
		widths[i] = r * l.contentWidth()
	}

	// Title, header and at least one data row must fit together; a table
	// header alone at the bottom of a page is never acceptable.
	l.ensureSpace(20 + 2*tableRowHeight)

	l.pdf.SetFont("Helvetica", "B", 13)
	l.pdf.SetTextColor(colorBrandLeft.r, colorBrandLeft.g, colorBrandLeft.b)
	l.pdf.SetXY(pageMargin, l.y)
	l.pdf.CellFormat(l.contentWidth(), 15, t.Title, "", 0, "L", false, 0, "")
	l.y += 20

	if len(t.Rows) == 0 {
		l.pdf.SetFont("Helvetica", "I", 10)
		l.pdf.SetTextColor(colorMuted.r, colorMuted.g, colorMuted.b)
		l.pdf.SetXY(pageMargin, l.y)
		l.pdf.CellFormat(l.contentWidth(), 12, t.EmptyNote, "", 0, "L", false, 0, "")
		l.y += tableRowHeight + 8
		return
	}

	l.drawTableHeader(t, widths)

	for i, row := range t.Rows {
		if l.ensureSpace(tableRowHeight) {
			l.drawTableHeader(t, widths)
		}
		l.drawTableRow(row, widths, i%2 == 1)
	}

	l.y += 18
}

func (l *pdfLayout) drawTableHeader(t table, widths []float64) {
	l.pdf.SetFillColor(colorNeutral.r, colorNeutral.g, colorNeutral.b)
	l.pdf.SetTextColor(255, 255, 255)
	l.pdf.SetFont("Helvetica", "B", 10)
	l.pdf.SetXY(pageMargin, l.y)
	for i, h := range t.Headers {
		l.pdf.CellFormat(widths[i], tableRowHeight, truncate(h, cellMaxChars), "", 0, "L", true, 0, "")
	}
	l.y += tableRowHeight
}

func (l *pdfLayout) drawTableRow(row []string, widths []float64, tinted bool) {
	if tinted {
		l.pdf.SetFillColor(colorRowTint.r, colorRowTint.g, colorRowTint.b)
	} else {
		l.pdf.SetFillColor(255, 255, 255)
	}
	l.pdf.SetTextColor(colorInk.r, colorInk.g, colorInk.b)
	l.pdf.SetFont("Helvetica", "", 10)
	l.pdf.SetXY(pageMargin, l.y)
	for i, cell := range row {
		if i >= len(widths) {
			break
		}
		l.pdf.CellFormat(widths[i], tableRowHeight, truncate(cell, cellMaxChars), "", 0, "L", true, 0, "")
	}
	l.y += tableRowHeight
}
