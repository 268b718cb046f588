package service

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"sdnscreen/internal/screening"
	"sdnscreen/internal/screening/metrics"
	"sdnscreen/internal/source"
	dErrors "sdnscreen/pkg/domain-errors"
	"sdnscreen/pkg/platform/sentinel"
)

const tracerName = "sdnscreen/screening"

// Source supplies the SDN document. Open must return a new stream positioned
// at the start of the document on every call.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	Info(ctx context.Context) (source.PublishInfo, error)
}

// Result is the outcome of one search.
type Result struct {
	SearchID string
	Matches  []screening.SdnRecord
	Entries  int
	Rules    map[screening.Rule]int
}

// Service runs sanctions searches against a fresh stream per call and
// translates failures into domain errors.
type Service struct {
	source  Source
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs a screening service with its dependencies.
func New(src Source, logger *slog.Logger, metrics *metrics.Metrics) *Service {
	return &Service{
		source:  src,
		logger:  logger,
		metrics: metrics,
	}
}

// Search screens q against the whole list. Query values are customer PII and
// are not logged.
func (s *Service) Search(ctx context.Context, q screening.Query) (*Result, error) {
	searchID := uuid.NewString()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "screening.Search")
	defer span.End()
	span.SetAttributes(
		attribute.String("search.id", searchID),
		attribute.Bool("query.has_id", q.ID != ""),
		attribute.Bool("query.has_name", q.FirstName != "" || q.LastName != ""),
	)
	start := time.Now()

	rc, err := s.source.Open(ctx)
	if err != nil {
		s.metrics.IncrementOutcome("source_error")
		return nil, s.fail(ctx, span, searchID, err, dErrors.Wrap(err, dErrors.CodeSourceUnavailable, "sdn list unavailable"))
	}
	defer rc.Close()

	matches, stats, err := screening.SearchWithStats(ctx, rc, q)
	elapsed := time.Since(start)
	s.metrics.ObserveSearchLatency(elapsed)
	s.metrics.AddEntriesScanned(stats.Entries)
	if err != nil {
		return nil, s.fail(ctx, span, searchID, err, s.translate(err))
	}

	for rule, n := range stats.Rules {
		s.metrics.AddRuleMatches(string(rule), n)
	}
	if len(matches) > 0 {
		s.metrics.IncrementOutcome("match")
	} else {
		s.metrics.IncrementOutcome("no_match")
	}
	span.SetAttributes(
		attribute.Int("search.entries", stats.Entries),
		attribute.Int("search.matches", len(matches)),
	)

	s.logger.InfoContext(ctx, "sanctions search completed",
		"search_id", searchID,
		"entries", stats.Entries,
		"individuals", stats.Individuals,
		"matches", len(matches),
		"duration_ms", elapsed.Milliseconds(),
	)

	return &Result{
		SearchID: searchID,
		Matches:  matches,
		Entries:  stats.Entries,
		Rules:    stats.Rules,
	}, nil
}

// Info returns the publish header of the current document.
func (s *Service) Info(ctx context.Context) (source.PublishInfo, error) {
	info, err := s.source.Info(ctx)
	if err == nil {
		return info, nil
	}
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, sentinel.ErrUnavailable):
		return source.PublishInfo{}, dErrors.Wrap(err, dErrors.CodeSourceUnavailable, "sdn list unavailable")
	case errors.Is(err, sentinel.ErrNotFound):
		return source.PublishInfo{}, dErrors.Wrap(err, dErrors.CodeNotFound, "publish information not found")
	default:
		return source.PublishInfo{}, dErrors.Wrap(err, dErrors.CodeUnprocessableSource, "publish information unreadable")
	}
}

func (s *Service) translate(err error) error {
	var pe *screening.ParseError
	switch {
	case errors.As(err, &pe):
		s.metrics.IncrementOutcome("parse_error")
		return dErrors.Wrap(err, dErrors.CodeUnprocessableSource, pe.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.metrics.IncrementOutcome("cancelled")
		return dErrors.Wrap(err, dErrors.CodeTimeout, "search cancelled")
	case screening.IsStreamError(err):
		s.metrics.IncrementOutcome("stream_error")
		return dErrors.Wrap(err, dErrors.CodeSourceUnavailable, "sdn list could not be read")
	default:
		s.metrics.IncrementOutcome("internal_error")
		return dErrors.Wrap(err, dErrors.CodeInternal, "sanctions search failed")
	}
}

func (s *Service) fail(ctx context.Context, span trace.Span, searchID string, cause, err error) error {
	span.RecordError(cause)
	span.SetStatus(codes.Error, "sanctions search failed")
	s.logger.ErrorContext(ctx, "sanctions search failed",
		"search_id", searchID,
		"error", cause,
	)
	return err
}
