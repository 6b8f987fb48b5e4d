package check

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mrled/suns/symaxis/internal/checkid"
	"github.com/mrled/suns/symaxis/internal/model"
	"github.com/mrled/suns/symaxis/internal/symmetry"
)

// Service checks point sets and records the results
type Service struct {
	repo model.CheckRepository
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a check service.
// A nil repository turns off persistence; results are still returned.
func NewService(repo model.CheckRepository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// Check decides whether the points are symmetric about a vertical axis
// and stores the outcome when a repository is configured.
func (s *Service) Check(ctx context.Context, label string, points []model.Point) (*model.CheckRecord, error) {
	axis, ok, err := symmetry.Axis(points)
	if err != nil {
		return nil, err
	}

	id, err := checkid.CalculateV1(points)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate check ID: %w", err)
	}

	record := &model.CheckRecord{
		ID:          id,
		Label:       label,
		Points:      append([]model.Point(nil), points...),
		Symmetrical: ok,
		CheckTime:   s.now().UTC(),
	}
	if ok {
		record.Axis = &axis
	}

	s.log.Debug("Checked point set",
		slog.String("id", id),
		slog.Int("points", len(points)),
		slog.Bool("symmetrical", ok))

	if s.repo == nil {
		return record, nil
	}

	if err := s.repo.Store(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store check record: %w", err)
	}
	s.log.Info("Stored check record", slog.String("id", id), slog.Int64("rev", record.Rev))

	return record, nil
}

// Get returns a previously stored check record
func (s *Service) Get(ctx context.Context, id string) (*model.CheckRecord, error) {
	if s.repo == nil {
		return nil, model.ErrNotFound
	}
	if _, err := checkid.ParseCheckIDv1(id); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrNotFound, err)
	}
	return s.repo.Get(ctx, id)
}
