package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/payroll-service/internal/domain"
	"github.com/spec-kit/payroll-service/internal/events"
	"github.com/spec-kit/payroll-service/internal/persistence"
	"github.com/spec-kit/payroll-service/internal/repository"
	apperrors "github.com/spec-kit/payroll-service/pkg/util"
)

// PayrollService orchestrates payroll previews, approvals and read-back
// of historical runs.
type PayrollService struct {
	employees  repository.EmployeeRepository
	payrolls   repository.PayrollRepository
	calculator *PayrollCalculator
	runCache   *persistence.RunCache
	dispatcher events.Dispatcher
}

// PayrollDependencies bundles collaborators for the payroll service.
type PayrollDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	PayrollRepo  repository.PayrollRepository
	Calculator   *PayrollCalculator
	RunCache     *persistence.RunCache
	Dispatcher   events.Dispatcher
}

// NewPayrollService constructs the service.
func NewPayrollService(deps PayrollDependencies) *PayrollService {
	calc := deps.Calculator
	if calc == nil {
		calc = NewPayrollCalculator(DefaultDeductionRate)
	}
	return &PayrollService{
		employees:  deps.EmployeeRepo,
		payrolls:   deps.PayrollRepo,
		calculator: calc,
		runCache:   deps.RunCache,
		dispatcher: deps.Dispatcher,
	}
}

// Preview computes payroll for all active employees without persisting
// anything. on_leave and exited employees are excluded. The month/year
// pair is carried through as given; period validation happens at the
// HTTP boundary.
func (s *PayrollService) Preview(ctx context.Context, month, year int) (*domain.PayrollPreview, error) {
	active, err := s.employees.ListByStatus(ctx, domain.EmployeeStatusActive)
	if err != nil {
		return nil, apperrors.NewStorageFailure(err)
	}

	preview := &domain.PayrollPreview{
		Month: month,
		Year:  year,
		Items: make([]domain.PayrollItem, 0, len(active)),
	}
	for _, emp := range active {
		item := s.calculator.Calculate(emp)
		preview.Items = append(preview.Items, item)
		preview.TotalCost += item.Net
	}
	return preview, nil
}

// Approve computes a fresh preview and persists it as a new run with
// its line items in one transaction. Approving the same period again
// creates a second independent run; deduplication is deliberately not
// applied.
func (s *PayrollService) Approve(ctx context.Context, month, year int) (*domain.PayrollRun, error) {
	preview, err := s.Preview(ctx, month, year)
	if err != nil {
		return nil, err
	}

	run, err := s.payrolls.CreateRun(ctx, preview)
	if err != nil {
		return nil, apperrors.NewStorageFailure(err)
	}

	s.runCache.Store(ctx, run)
	s.publish(ctx, events.EventPayrollApproved, events.PayrollApprovedPayload{
		PayrollID: run.ID,
		Month:     run.Month,
		Year:      run.Year,
		TotalCost: run.TotalCost,
		ItemCount: len(run.Items),
	})
	return run, nil
}

// ListRuns returns run summaries, most recent period first.
func (s *PayrollService) ListRuns(ctx context.Context) ([]domain.PayrollSummary, error) {
	runs, err := s.payrolls.ListRuns(ctx)
	if err != nil {
		return nil, apperrors.NewStorageFailure(err)
	}
	return runs, nil
}

// GetRun returns one run with its snapshotted items. Approved runs are
// immutable, so cache hits can never serve stale data.
func (s *PayrollService) GetRun(ctx context.Context, id int64) (*domain.PayrollRun, error) {
	if run, ok := s.runCache.Get(ctx, id); ok {
		return run, nil
	}

	run, err := s.payrolls.GetRun(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("payroll", map[string]any{"id": id})
		}
		return nil, apperrors.NewStorageFailure(err)
	}

	s.runCache.Store(ctx, run)
	return run, nil
}

func (s *PayrollService) publish(ctx context.Context, eventType events.EventType, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}
