package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fin-tools/pocket-ledger/pkg/models/domain"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

var ErrUnsupportedFormat = errors.New("unsupported report format")

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Document is a fully rendered report ready for download.
type Document struct {
	Bytes       []byte
	Filename    string
	ContentType string
}

// Renderer turns one of the four report shapes into a downloadable document.
type Renderer interface {
	Render(data domain.ReportData) (*Document, error)
}

// ForFormat returns the rendering strategy for a format.
func ForFormat(f Format) (Renderer, error) {
	switch f {
	case FormatPDF:
		return NewPDFRenderer(), nil
	case FormatXLSX:
		return NewExcelRenderer(), nil
	case FormatCSV:
		return NewCSVRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// baseFilename builds the extension-less download name for a report.
func baseFilename(data domain.ReportData) string {
	switch d := data.(type) {
	case domain.MonthlyReport:
		return fmt.Sprintf("Monthly_Report_%s_%d", monthName(d.Month), d.Year)
	case domain.DateRangeReport:
		return fmt.Sprintf("DateRange_Report_%s_to_%s", formatDate(d.From), formatDate(d.To))
	case domain.BudgetReport:
		return fmt.Sprintf("Budget_Report_%s_%d", monthName(d.Month), d.Year)
	case domain.FullAccountReport:
		name := "Full_Account_Report"
		if d.From != nil && d.To != nil {
			name = fmt.Sprintf("%s_%s_to_%s", name, formatDate(*d.From), formatDate(*d.To))
		}
		return name
	default:
		return "Report"
	}
}
