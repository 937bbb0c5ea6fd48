package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/fin-tools/pocket-ledger/pkg/models/domain"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const sheetName = "Report"

// Hex twins of the PDF palette; worksheet cells reuse the card semantics.
const (
	hexNavy   = "1A2A56"
	hexGreen  = "27AE60"
	hexRed    = "E74C3C"
	hexOrange = "E67E22"
	hexMuted  = "787E82"
)

type excelRenderer struct{}

func NewExcelRenderer() Renderer {
	return &excelRenderer{}
}

type excelStyles struct {
	title        int
	period       int
	sectionTitle int
	header       int
	muted        int
	byKind       map[cardKind]int
}

func (r *excelRenderer) Render(data domain.ReportData) (*Document, error) {
	content, err := buildSections(data)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	styles, err := newExcelStyles(f)
	if err != nil {
		return nil, err
	}

	w := &sheetWriter{f: f, styles: styles, row: 1}
	if err := w.write(content); err != nil {
		return nil, err
	}

	// Widths are set in fixed column order so identical inputs produce
	// identical workbook bytes.
	if err := f.SetColWidth(sheetName, "A", "A", 30); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "E", 20); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("finalize workbook: %w", err)
	}

	return &Document{
		Bytes:       buf.Bytes(),
		Filename:    baseFilename(data) + ".xlsx",
		ContentType: contentTypeXLSX,
	}, nil
}

func newExcelStyles(f *excelize.File) (excelStyles, error) {
	s := excelStyles{byKind: make(map[cardKind]int)}
	var err error

	if s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16, Color: hexNavy},
	}); err != nil {
		return s, fmt.Errorf("build styles: %w", err)
	}
	if s.period, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11, Italic: true, Color: hexMuted},
	}); err != nil {
		return s, fmt.Errorf("build styles: %w", err)
	}
	if s.sectionTitle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12, Color: hexNavy},
	}); err != nil {
		return s, fmt.Errorf("build styles: %w", err)
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2C3E50"}, Pattern: 1},
	}); err != nil {
		return s, fmt.Errorf("build styles: %w", err)
	}
	if s.muted, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Italic: true, Color: hexMuted},
	}); err != nil {
		return s, fmt.Errorf("build styles: %w", err)
	}

	kindColors := map[cardKind]string{
		kindPositive: hexGreen,
		kindNegative: hexRed,
		kindNeutral:  hexNavy,
		kindRatio:    hexOrange,
	}
	for kind, color := range kindColors {
		id, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: color},
		})
		if err != nil {
			return s, fmt.Errorf("build styles: %w", err)
		}
		s.byKind[kind] = id
	}

	return s, nil
}

// sheetWriter advances a monotonic row cursor down the single worksheet,
// emitting each section as a labeled row block.
type sheetWriter struct {
	f      *excelize.File
	styles excelStyles
	row    int
}

func (w *sheetWriter) write(content sections) error {
	if err := w.setCell("A", content.Title, w.styles.title); err != nil {
		return err
	}
	w.row++
	if err := w.setCell("A", content.Period, w.styles.period); err != nil {
		return err
	}
	w.row += 2

	// Summary block mirrors the PDF cards: label in A, value in B,
	// subtext in C, value colored by the card's semantics.
	if err := w.setCell("A", "Summary", w.styles.sectionTitle); err != nil {
		return err
	}
	w.row++
	for _, c := range content.Cards {
		if err := w.setCell("A", c.Label, 0); err != nil {
			return err
		}
		if err := w.setCell("B", c.Value, w.styles.byKind[c.Kind]); err != nil {
			return err
		}
		if c.Subtext != "" {
			if err := w.setCell("C", c.Subtext, w.styles.muted); err != nil {
				return err
			}
		}
		w.row++
	}
	w.row++

	for _, t := range content.Tables {
		if err := w.writeTable(t); err != nil {
			return err
		}
	}
	return nil
}

func (w *sheetWriter) writeTable(t table) error {
	if err := w.setCell("A", t.Title, w.styles.sectionTitle); err != nil {
		return err
	}
	w.row++

	if len(t.Rows) == 0 {
		if err := w.setCell("A", t.EmptyNote, w.styles.muted); err != nil {
			return err
		}
		w.row += 2
		return nil
	}

	for i, h := range t.Headers {
		if err := w.setCellAt(i, h, w.styles.header); err != nil {
			return err
		}
	}
	w.row++

	for _, row := range t.Rows {
		for i, cell := range row {
			if err := w.setCellAt(i, cell, 0); err != nil {
				return err
			}
		}
		w.row++
	}

	w.row++
	return nil
}

func (w *sheetWriter) setCell(col string, value string, styleID int) error {
	axis := fmt.Sprintf("%s%d", col, w.row)
	if err := w.f.SetCellValue(sheetName, axis, value); err != nil {
		return fmt.Errorf("set cell %s: %w", axis, err)
	}
	if styleID != 0 {
		if err := w.f.SetCellStyle(sheetName, axis, axis, styleID); err != nil {
			return fmt.Errorf("style cell %s: %w", axis, err)
		}
	}
	return nil
}

func (w *sheetWriter) setCellAt(colIndex int, value string, styleID int) error {
	name, err := excelize.ColumnNumberToName(colIndex + 1)
	if err != nil {
		return fmt.Errorf("column name: %w", err)
	}
	return w.setCell(name, value, styleID)
}
