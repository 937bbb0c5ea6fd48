package render

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/pocket-ledger/pkg/models/domain"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestPDFRenderer(t *testing.T) {
	r := &pdfRenderer{now: fixedClock}

	doc, err := r.Render(sampleMonthly())
	require.NoError(t, err)

	assert.Equal(t, "Monthly_Report_February_2026.pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)
	require.Greater(t, len(doc.Bytes), 4)
	assert.Equal(t, "%PDF", string(doc.Bytes[:4]))
}

func TestPDFRenderer_Deterministic(t *testing.T) {
	r := &pdfRenderer{now: fixedClock}

	first, err := r.Render(sampleMonthly())
	require.NoError(t, err)
	second, err := r.Render(sampleMonthly())
	require.NoError(t, err)

	assert.Equal(t, first.Bytes, second.Bytes)
}

func TestPDFRenderer_PaginatesLongTables(t *testing.T) {
	report := domain.FullAccountReport{
		UserName:    "dana",
		GeneratedAt: fixedClock(),
	}
	for i := 0; i < 200; i++ {
		report.Transactions = append(report.Transactions, domain.Transaction{
			Type:     "expense",
			Amount:   float64(i),
			Category: fmt.Sprintf("Category %d", i%7),
			Date:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i%28),
			Account:  "Checking",
		})
	}
	report.TransactionCount = len(report.Transactions)

	r := &pdfRenderer{now: fixedClock}
	doc, err := r.Render(report)
	require.NoError(t, err)

	short, err := r.Render(domain.FullAccountReport{UserName: "dana", GeneratedAt: fixedClock()})
	require.NoError(t, err)

	// 200 table rows cannot fit one page; the long document must have
	// grown past the single-page rendering
	assert.Greater(t, len(doc.Bytes), len(short.Bytes))
}

func TestPDFRenderer_AllReportTypes(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	inputs := []domain.ReportData{
		sampleMonthly(),
		domain.DateRangeReport{Period: "2026-01-01 to 2026-01-31", From: from, To: to},
		domain.BudgetReport{
			Period: "February 2026", Month: 2, Year: 2026,
			MonthlyBudget: 1000, TotalSpent: 1500, Remaining: -500,
			Exceeded: true, PercentageUsed: "150.00",
		},
		domain.FullAccountReport{UserName: "dana", GeneratedAt: fixedClock()},
	}

	r := &pdfRenderer{now: fixedClock}
	for _, input := range inputs {
		doc, err := r.Render(input)
		require.NoError(t, err, "%T", input)
		assert.NotEmpty(t, doc.Bytes)
	}
}
