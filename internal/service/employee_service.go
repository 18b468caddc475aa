package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/payroll-service/internal/domain"
	"github.com/spec-kit/payroll-service/internal/events"
	"github.com/spec-kit/payroll-service/internal/repository"
	apperrors "github.com/spec-kit/payroll-service/pkg/util"
)

// EmployeeService manages the employee lifecycle.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
}

// NewEmployeeService constructs the service.
func NewEmployeeService(employees repository.EmployeeRepository, dispatcher events.Dispatcher) *EmployeeService {
	return &EmployeeService{employees: employees, dispatcher: dispatcher}
}

// CreateEmployeeInput carries the fields accepted on creation.
type CreateEmployeeInput struct {
	Name         string
	Role         *string
	Department   *string
	Salary       float64
	BankAccount  *string
	Status       *domain.EmployeeStatus
	ContractPath *string
}

// Create validates the input, applies defaults and persists a new
// employee. Status defaults to active when unspecified.
func (s *EmployeeService) Create(ctx context.Context, in CreateEmployeeInput) (*domain.Employee, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.NewInvalidInput("name must not be empty", nil)
	}
	if in.Salary < 0 {
		return nil, apperrors.NewInvalidInput("salary must not be negative", map[string]any{"salary": in.Salary})
	}

	status := domain.EmployeeStatusActive
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, apperrors.NewInvalidInput("unknown status", map[string]any{"status": *in.Status})
		}
		status = *in.Status
	}

	emp := &domain.Employee{
		Name:         in.Name,
		Role:         in.Role,
		Department:   in.Department,
		Salary:       in.Salary,
		BankAccount:  in.BankAccount,
		Status:       status,
		ContractPath: in.ContractPath,
	}
	if err := s.employees.Create(ctx, emp); err != nil {
		return nil, apperrors.NewStorageFailure(err)
	}

	s.publish(ctx, events.EventEmployeeCreated, events.EmployeeCreatedPayload{
		EmployeeID: emp.ID,
		Name:       emp.Name,
		Status:     emp.Status,
	})
	return emp, nil
}

// Update merges a partial field set onto an existing employee. Omitted
// fields keep their stored values.
func (s *EmployeeService) Update(ctx context.Context, id int64, patch domain.EmployeePatch) (*domain.Employee, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperrors.NewInvalidInput("name must not be empty", nil)
	}
	if patch.Salary != nil && *patch.Salary < 0 {
		return nil, apperrors.NewInvalidInput("salary must not be negative", map[string]any{"salary": *patch.Salary})
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, apperrors.NewInvalidInput("unknown status", map[string]any{"status": *patch.Status})
	}
	if patch.Empty() {
		return s.Get(ctx, id)
	}

	emp, err := s.employees.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return nil, apperrors.NewStorageFailure(err)
	}
	return emp, nil
}

// Terminate marks an employee as exited. An unknown id and an already
// exited employee are both reported as not found.
func (s *EmployeeService) Terminate(ctx context.Context, id int64) error {
	if err := s.employees.Terminate(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return apperrors.NewStorageFailure(err)
	}

	s.publish(ctx, events.EventEmployeeTerminated, events.EmployeeTerminatedPayload{EmployeeID: id})
	return nil
}

// Get fetches one employee by id.
func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return nil, apperrors.NewStorageFailure(err)
	}
	return emp, nil
}

// List returns all employees regardless of status, ordered by id.
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	list, err := s.employees.List(ctx)
	if err != nil {
		return nil, apperrors.NewStorageFailure(err)
	}
	return list, nil
}

func (s *EmployeeService) publish(ctx context.Context, eventType events.EventType, payload any) {
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
