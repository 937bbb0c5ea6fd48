package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	reportsvc "github.com/fin-tools/pocket-ledger/pkg/services/report"
	"github.com/fin-tools/pocket-ledger/pkg/services/report/render"
)

const dateLayout = "2006-01-02"

type Handler struct {
	generator reportsvc.Generator
}

func NewHandler(generator reportsvc.Generator) *Handler {
	return &Handler{generator: generator}
}

// Download streams a rendered report as a file attachment.
//
//	GET /api/v1/users/{userID}/reports/{reportType}?format=pdf&month=2&year=2026
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	reportType, err := reportsvc.ParseReportType(chi.URLParam(r, "reportType"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	format, err := render.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := reportsvc.Request{
		UserID: chi.URLParam(r, "userID"),
		Type:   reportType,
		Format: format,
	}

	if req.Month, err = queryInt(r, "month"); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Year, err = queryInt(r, "year"); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.From, err = queryDate(r, "from"); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.To, err = queryDate(r, "to"); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.generator.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, reportsvc.ErrInvalidParams) ||
			errors.Is(err, reportsvc.ErrUnknownReportType) ||
			errors.Is(err, render.ErrUnsupportedFormat) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error().
			Err(err).
			Str("type", string(reportType)).
			Str("format", string(format)).
			Msg("report generation failed")
		respondError(w, http.StatusInternalServerError, "report generation failed")
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Bytes)))
	if _, err := w.Write(doc.Bytes); err != nil {
		logger.Error().
			Err(err).
			Str("filename", doc.Filename).
			Msg("failed to write report body")
	}
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", reportsvc.ErrInvalidParams, name)
	}
	return v, nil
}

func queryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be formatted as YYYY-MM-DD", reportsvc.ErrInvalidParams, name)
	}
	return &t, nil
}

func respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
