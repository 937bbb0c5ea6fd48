package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/fin-tools/pocket-ledger/pkg/models/domain"
	"github.com/fin-tools/pocket-ledger/pkg/services/report/render"
)

type ReportType string

const (
	TypeMonthly     ReportType = "monthly"
	TypeDateRange   ReportType = "daterange"
	TypeBudget      ReportType = "budget"
	TypeFullAccount ReportType = "fullaccount"
)

var (
	ErrInvalidParams     = errors.New("invalid report parameters")
	ErrUnknownReportType = errors.New("unknown report type")
)

func ParseReportType(s string) (ReportType, error) {
	switch ReportType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeMonthly:
		return TypeMonthly, nil
	case TypeDateRange:
		return TypeDateRange, nil
	case TypeBudget:
		return TypeBudget, nil
	case TypeFullAccount:
		return TypeFullAccount, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownReportType, s)
	}
}

// Request carries the parameters for one report generation. Month/Year
// apply to monthly and budget reports, From/To to date range reports
// (required) and full account reports (optional, open-ended).
type Request struct {
	UserID string
	Type   ReportType
	Format render.Format
	Month  int
	Year   int
	From   *time.Time
	To     *time.Time
}

func (r Request) validate() error {
	if r.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidParams)
	}
	switch r.Type {
	case TypeMonthly, TypeBudget:
		if r.Month < 1 || r.Month > 12 {
			return fmt.Errorf("%w: month must be 1-12, got %d", ErrInvalidParams, r.Month)
		}
		if r.Year <= 0 {
			return fmt.Errorf("%w: year is required", ErrInvalidParams)
		}
	case TypeDateRange:
		if r.From == nil || r.To == nil {
			return fmt.Errorf("%w: fromDate and toDate are required", ErrInvalidParams)
		}
		if r.To.Before(*r.From) {
			return fmt.Errorf("%w: toDate precedes fromDate", ErrInvalidParams)
		}
	case TypeFullAccount:
		if r.From != nil && r.To != nil && r.To.Before(*r.From) {
			return fmt.Errorf("%w: toDate precedes fromDate", ErrInvalidParams)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownReportType, r.Type)
	}
	return nil
}

func (r Request) cacheKey() string {
	from, to := "", ""
	if r.From != nil {
		from = r.From.Format("2006-01-02")
	}
	if r.To != nil {
		to = r.To.Format("2006-01-02")
	}
	return fmt.Sprintf("%s|%s|%s|%d|%d|%s|%s", r.UserID, r.Type, r.Format, r.Month, r.Year, from, to)
}

// Generator produces a downloadable document for a report request.
type Generator interface {
	Generate(ctx context.Context, req Request) (*render.Document, error)
}

type Service struct {
	agg   *Aggregator
	cache *gocache.Cache
}

// NewService wraps an aggregator with format dispatch and a short-lived
// document cache; repeat downloads of the same report within the TTL
// return the identical bytes without touching the data source.
func NewService(agg *Aggregator, cacheTTL time.Duration) *Service {
	if cacheTTL <= 0 {
		cacheTTL = 2 * time.Minute
	}
	return &Service{
		agg:   agg,
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

func (s *Service) Generate(ctx context.Context, req Request) (*render.Document, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	renderer, err := render.ForFormat(req.Format)
	if err != nil {
		return nil, err
	}

	key := req.cacheKey()
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*render.Document), nil
	}

	data, err := s.aggregate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s report: %w", req.Type, err)
	}

	doc, err := renderer.Render(data)
	if err != nil {
		return nil, fmt.Errorf("render %s report as %s: %w", req.Type, req.Format, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("type", string(req.Type)).
		Str("format", string(req.Format)).
		Str("filename", doc.Filename).
		Int("bytes", len(doc.Bytes)).
		Msg("report generated")

	s.cache.Set(key, doc, gocache.DefaultExpiration)
	return doc, nil
}

func (s *Service) aggregate(ctx context.Context, req Request) (domain.ReportData, error) {
	switch req.Type {
	case TypeMonthly:
		data, err := s.agg.BuildMonthly(ctx, req.UserID, req.Month, req.Year)
		if err != nil {
			return nil, err
		}
		return data, nil
	case TypeDateRange:
		data, err := s.agg.BuildDateRange(ctx, req.UserID, *req.From, *req.To)
		if err != nil {
			return nil, err
		}
		return data, nil
	case TypeBudget:
		data, err := s.agg.BuildBudget(ctx, req.UserID, req.Month, req.Year)
		if err != nil {
			return nil, err
		}
		return data, nil
	case TypeFullAccount:
		data, err := s.agg.BuildFullAccount(ctx, req.UserID, req.From, req.To)
		if err != nil {
			return nil, err
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportType, req.Type)
	}
}
