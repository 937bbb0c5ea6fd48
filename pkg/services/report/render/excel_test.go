package render

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fin-tools/pocket-ledger/pkg/models/domain"
)

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestExcelRenderer(t *testing.T) {
	doc, err := NewExcelRenderer().Render(sampleMonthly())
	require.NoError(t, err)

	assert.Equal(t, "Monthly_Report_February_2026.xlsx", doc.Filename)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		doc.ContentType)

	f := openWorkbook(t, doc.Bytes)
	require.Equal(t, []string{"Report"}, f.GetSheetList())

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Monthly Report", title)

	period, err := f.GetCellValue(sheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "February 2026", period)

	summary, err := f.GetCellValue(sheetName, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Summary", summary)

	income, err := f.GetCellValue(sheetName, "B5")
	require.NoError(t, err)
	assert.Equal(t, "$5,000.00", income)
}

func TestExcelRenderer_ConditionalSections(t *testing.T) {
	report := domain.FullAccountReport{UserName: "dana"}
	doc, err := NewExcelRenderer().Render(report)
	require.NoError(t, err)

	content, err := buildSections(report)
	require.NoError(t, err)

	f := openWorkbook(t, doc.Bytes)
	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	// Section titles live below the summary block (title, period, blank,
	// "Summary", one row per card); an "Accounts" card label up there
	// must not be mistaken for an Accounts table.
	tableStart := 4 + len(content.Cards)
	var labels []string
	for _, row := range rows[tableStart:] {
		if len(row) > 0 {
			labels = append(labels, row[0])
		}
	}
	assert.Contains(t, labels, "Financial Summary")
	assert.NotContains(t, labels, "Reminders")
	assert.NotContains(t, labels, "Budgets")
	assert.NotContains(t, labels, "Accounts")
	assert.NotContains(t, labels, "Transaction History")
}

func TestExcelRenderer_Deterministic(t *testing.T) {
	first, err := NewExcelRenderer().Render(sampleMonthly())
	require.NoError(t, err)
	second, err := NewExcelRenderer().Render(sampleMonthly())
	require.NoError(t, err)
	assert.Equal(t, first.Bytes, second.Bytes)
}

// The worksheet's summary block and the CSV's must carry the same
// (label, value) pairs for the same input.
func TestExcelCSVSummaryParity(t *testing.T) {
	inputs := []domain.ReportData{
		sampleMonthly(),
		domain.BudgetReport{
			Period: "February 2026", Month: 2, Year: 2026,
			TotalIncome: 2000, TotalSpent: 1500, Savings: 500,
			MonthlyBudget: 1000, Remaining: -500, Exceeded: true,
			PercentageUsed: "150.00",
		},
		domain.FullAccountReport{
			UserName:     "dana",
			AccountCount: 2, TotalBalance: 5000,
			TotalIncome: 900, TotalExpense: 400, NetBalance: 500,
		},
	}

	for _, input := range inputs {
		t.Run(fmt.Sprintf("%T", input), func(t *testing.T) {
			content, err := buildSections(input)
			require.NoError(t, err)

			csvDoc, err := NewCSVRenderer().Render(input)
			require.NoError(t, err)
			xlsxDoc, err := NewExcelRenderer().Render(input)
			require.NoError(t, err)

			csvRows := parseCSV(t, csvDoc.Bytes)
			f := openWorkbook(t, xlsxDoc.Bytes)

			for i, c := range content.Cards {
				// CSV: blank separators drop out in parsing, leaving
				// title, period, "Summary", then the cards
				assert.Equal(t, c.Label, csvRows[3+i][0])
				assert.Equal(t, c.Value, csvRows[3+i][1])

				// XLSX: summary block starts at row 5
				label, err := f.GetCellValue(sheetName, fmt.Sprintf("A%d", 5+i))
				require.NoError(t, err)
				value, err := f.GetCellValue(sheetName, fmt.Sprintf("B%d", 5+i))
				require.NoError(t, err)
				assert.Equal(t, c.Label, label)
				assert.Equal(t, c.Value, value)
			}
		})
	}
}
