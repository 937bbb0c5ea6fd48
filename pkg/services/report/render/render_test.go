package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/pocket-ledger/pkg/models/domain"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "pdf", expected: FormatPDF},
		{input: "PDF", expected: FormatPDF},
		{input: "xlsx", expected: FormatXLSX},
		{input: " xlsx ", expected: FormatXLSX},
		{input: "csv", expected: FormatCSV},
		{input: "docx", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestForFormat(t *testing.T) {
	for _, format := range []Format{FormatPDF, FormatXLSX, FormatCSV} {
		renderer, err := ForFormat(format)
		require.NoError(t, err)
		assert.NotNil(t, renderer)
	}

	_, err := ForFormat(Format("docx"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestBaseFilename(t *testing.T) {
	from := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		data     domain.ReportData
		expected string
	}{
		{
			name:     "monthly",
			data:     domain.MonthlyReport{Month: 2, Year: 2026},
			expected: "Monthly_Report_February_2026",
		},
		{
			name:     "date range",
			data:     domain.DateRangeReport{From: from, To: to},
			expected: "DateRange_Report_2026-01-05_to_2026-02-10",
		},
		{
			name:     "budget",
			data:     domain.BudgetReport{Month: 12, Year: 2025},
			expected: "Budget_Report_December_2025",
		},
		{
			name:     "full account without window",
			data:     domain.FullAccountReport{},
			expected: "Full_Account_Report",
		},
		{
			name:     "full account with window",
			data:     domain.FullAccountReport{From: &from, To: &to},
			expected: "Full_Account_Report_2026-01-05_to_2026-02-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, baseFilename(tt.data))
		})
	}
}
