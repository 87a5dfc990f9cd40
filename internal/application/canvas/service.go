// Package canvas is the application service tying the pipeline together:
// load the CSV, hold the current dataset snapshot, and answer table, range,
// and figure queries.  Each figure query re-runs filter + describe + build
// against the snapshot, mirroring the re-execution model of the original
// dashboard.
package canvas

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/turtacn/opportunity-canvas/internal/domain/canvas"
	"github.com/turtacn/opportunity-canvas/internal/domain/chart"
	"github.com/turtacn/opportunity-canvas/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/opportunity-canvas/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/opportunity-canvas/pkg/errors"
)

// DatasetLoader abstracts the CSV source so tests can inject datasets
// without touching the filesystem.
type DatasetLoader interface {
	Load(ctx context.Context) (*domain.Dataset, error)
	Path() string
}

// Snapshot is one successfully loaded dataset.  Snapshots are immutable;
// a reload swaps in a new one atomically.
type Snapshot struct {
	ID       string
	Dataset  *domain.Dataset
	LoadedAt time.Time
}

// Service owns the active snapshot and serves queries against it.
type Service struct {
	loader  DatasetLoader
	chart   chart.Options
	logger  logging.Logger
	metrics *prometheus.AppMetrics

	mu   sync.RWMutex
	snap *Snapshot
}

// NewService creates a Service.  metrics may be nil (e.g., in tests); all
// instrumentation is skipped in that case.
func NewService(loader DatasetLoader, chartOpts chart.Options, logger logging.Logger, metrics *prometheus.AppMetrics) *Service {
	return &Service{
		loader:  loader,
		chart:   chartOpts,
		logger:  logger.Named("canvas"),
		metrics: metrics,
	}
}

// Load performs the initial dataset load.  On failure no snapshot is
// installed and the error is returned to the caller, which should treat it
// as fatal for one-shot commands and as "not ready" for the server.
func (s *Service) Load(ctx context.Context) error {
	return s.load(ctx, "initial")
}

// Reload re-reads the CSV in response to a file change.  A failed reload
// keeps the last good snapshot so the dashboard never serves a half-parsed
// table.
func (s *Service) Reload(ctx context.Context) error {
	return s.load(ctx, "reload")
}

func (s *Service) load(ctx context.Context, source string) error {
	start := time.Now()
	ds, err := s.loader.Load(ctx)
	elapsed := time.Since(start)

	if s.metrics != nil {
		s.metrics.DatasetLoadDuration.WithLabelValues(source).Observe(elapsed.Seconds())
	}

	if err != nil {
		if s.metrics != nil {
			s.metrics.DatasetLoadsTotal.WithLabelValues("error").Inc()
		}
		s.logger.Error("dataset load failed",
			logging.String("path", s.loader.Path()),
			logging.String("source", source),
			logging.Err(err),
		)
		return err
	}

	snap := &Snapshot{
		ID:       uuid.NewString(),
		Dataset:  ds,
		LoadedAt: time.Now(),
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.DatasetLoadsTotal.WithLabelValues("ok").Inc()
		s.metrics.DatasetRows.WithLabelValues().Set(float64(ds.Len()))
	}
	s.logger.Info("dataset loaded",
		logging.String("path", s.loader.Path()),
		logging.String("snapshot_id", snap.ID),
		logging.String("source", source),
		logging.Int("rows", ds.Len()),
		logging.Duration("elapsed", elapsed),
	)
	return nil
}

// Snapshot returns the active snapshot, or a CodeDatasetNotLoaded error if
// no load has succeeded yet.
func (s *Service) Snapshot() (*Snapshot, error) {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()

	if snap == nil {
		return nil, errors.New(errors.CodeDatasetNotLoaded, "canvas dataset has not been loaded").
			WithDetail("path=" + s.loader.Path())
	}
	return snap, nil
}

// Ready reports whether a dataset is available to serve.
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap != nil
}

// ImpactRange describes the filter bounds offered to the UI alongside the
// observed raw extremes.
type ImpactRange struct {
	Min         int     `json:"min"`
	Max         int     `json:"max"`
	ObservedMin float64 `json:"observed_min"`
	ObservedMax float64 `json:"observed_max"`
}

// Range returns the default filter bounds for the active snapshot.
func (s *Service) Range() (ImpactRange, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return ImpactRange{}, err
	}
	lo, hi := snap.Dataset.DefaultImpactRange()
	omin, omax := snap.Dataset.ImpactBounds()
	return ImpactRange{Min: lo, Max: hi, ObservedMin: omin, ObservedMax: omax}, nil
}

// Figure runs the transform pipeline for one filter selection: retain rows
// whose Total Impact lies in [min, max] inclusive, then build the 3D figure
// over them.  The pipeline is pure over the snapshot, so repeated calls with
// the same range yield identical figures.
func (s *Service) Figure(min, max float64) (chart.Figure, error) {
	snap, err := s.Snapshot()
	if err != nil {
		if s.metrics != nil {
			s.metrics.FigureRequestsTotal.WithLabelValues("error").Inc()
		}
		return chart.Figure{}, err
	}

	if min > max {
		if s.metrics != nil {
			s.metrics.FigureRequestsTotal.WithLabelValues("error").Inc()
		}
		return chart.Figure{}, errors.Newf(errors.CodeImpactRangeInvalid,
			"impact range minimum %v exceeds maximum %v", min, max)
	}

	start := time.Now()
	rows := snap.Dataset.FilterByImpact(min, max)
	fig := chart.Build(rows, s.chart)

	if s.metrics != nil {
		s.metrics.FigureRequestsTotal.WithLabelValues("ok").Inc()
		s.metrics.FigureBuildDuration.WithLabelValues().Observe(time.Since(start).Seconds())
		s.metrics.FigurePointCount.WithLabelValues().Observe(float64(len(rows)))
	}
	s.logger.Debug("figure built",
		logging.Float64("min", min),
		logging.Float64("max", max),
		logging.Int("points", len(rows)),
	)
	return fig, nil
}

// DefaultFigure builds the figure over the default (full) impact range.
func (s *Service) DefaultFigure() (chart.Figure, error) {
	r, err := s.Range()
	if err != nil {
		return chart.Figure{}, err
	}
	return s.Figure(float64(r.Min), float64(r.Max))
}
