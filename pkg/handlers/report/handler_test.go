package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	reportsvc "github.com/fin-tools/pocket-ledger/pkg/services/report"
	"github.com/fin-tools/pocket-ledger/pkg/services/report/render"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, req reportsvc.Request) (*render.Document, error) {
	args := m.Called(ctx, req)
	if doc := args.Get(0); doc != nil {
		return doc.(*render.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestServer(gen reportsvc.Generator) *httptest.Server {
	r := chi.NewRouter()
	r.Get("/api/v1/users/{userID}/reports/{reportType}", NewHandler(gen).Download)
	return httptest.NewServer(r)
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["error"]
}

func TestDownload(t *testing.T) {
	doc := &render.Document{
		Bytes:       []byte("%PDF-1.4 fake"),
		Filename:    "Monthly_Report_February_2026.pdf",
		ContentType: "application/pdf",
	}

	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, reportsvc.Request{
		UserID: "user-1",
		Type:   reportsvc.TypeMonthly,
		Format: render.FormatPDF,
		Month:  2,
		Year:   2026,
	}).Return(doc, nil)

	srv := newTestServer(gen)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/users/user-1/reports/monthly?format=pdf&month=2&year=2026")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Monthly_Report_February_2026.pdf"`, resp.Header.Get("Content-Disposition"))
	assert.Equal(t, fmt.Sprint(len(doc.Bytes)), resp.Header.Get("Content-Length"))
	gen.AssertExpectations(t)
}

func TestDownload_ParsesDateWindow(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, reportsvc.Request{
		UserID: "user-1",
		Type:   reportsvc.TypeDateRange,
		Format: render.FormatCSV,
		From:   &from,
		To:     &to,
	}).Return(&render.Document{Bytes: []byte("a,b\n"), Filename: "x.csv", ContentType: "text/csv"}, nil)

	srv := newTestServer(gen)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/users/user-1/reports/daterange?format=csv&from=2026-01-01&to=2026-01-31")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	gen.AssertExpectations(t)
}

func TestDownload_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "unknown report type", path: "/api/v1/users/user-1/reports/quarterly?format=pdf"},
		{name: "unsupported format", path: "/api/v1/users/user-1/reports/monthly?format=docx"},
		{name: "non-numeric month", path: "/api/v1/users/user-1/reports/monthly?format=pdf&month=feb&year=2026"},
		{name: "non-numeric year", path: "/api/v1/users/user-1/reports/monthly?format=pdf&month=2&year=twenty"},
		{name: "malformed from date", path: "/api/v1/users/user-1/reports/daterange?format=pdf&from=01-01-2026&to=2026-01-31"},
		{name: "malformed to date", path: "/api/v1/users/user-1/reports/daterange?format=pdf&from=2026-01-01&to=yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mockGenerator{}
			srv := newTestServer(gen)
			defer srv.Close()

			resp, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			assert.NotEmpty(t, decodeError(t, resp))
			gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
		})
	}
}

func TestDownload_ValidationErrorFromService(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: month must be 1-12, got 0", reportsvc.ErrInvalidParams))

	srv := newTestServer(gen)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/users/user-1/reports/monthly?format=pdf")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp), "month must be 1-12")
}

func TestDownload_GenerationFailure(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).
		Return(nil, errors.New("mongo: connection refused"))

	srv := newTestServer(gen)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/users/user-1/reports/monthly?format=pdf&month=2&year=2026")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	// internal detail must not leak to the client
	assert.Equal(t, "report generation failed", decodeError(t, resp))
}
