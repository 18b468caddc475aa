package service

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/payroll-service/internal/domain"
)

// fakeEmployeeRepo is an in-memory EmployeeRepository mirroring the SQL
// semantics of the real one: merge-by-COALESCE updates and a guarded
// terminate transition.
type fakeEmployeeRepo struct {
	employees map[int64]domain.Employee
	nextID    int64
	failWith  error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[int64]domain.Employee), nextID: 1}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp *domain.Employee) error {
	if r.failWith != nil {
		return r.failWith
	}
	emp.ID = r.nextID
	r.nextID++
	r.employees[emp.ID] = *emp
	return nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, id int64, patch domain.EmployeePatch) (*domain.Employee, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	emp, ok := r.employees[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if patch.Name != nil {
		emp.Name = *patch.Name
	}
	if patch.Role != nil {
		emp.Role = patch.Role
	}
	if patch.Department != nil {
		emp.Department = patch.Department
	}
	if patch.Salary != nil {
		emp.Salary = *patch.Salary
	}
	if patch.BankAccount != nil {
		emp.BankAccount = patch.BankAccount
	}
	if patch.Status != nil {
		emp.Status = *patch.Status
	}
	if patch.ContractPath != nil {
		emp.ContractPath = patch.ContractPath
	}
	r.employees[id] = emp
	return &emp, nil
}

func (r *fakeEmployeeRepo) Terminate(_ context.Context, id int64) error {
	if r.failWith != nil {
		return r.failWith
	}
	emp, ok := r.employees[id]
	if !ok || emp.Status == domain.EmployeeStatusExited {
		return pgx.ErrNoRows
	}
	emp.Status = domain.EmployeeStatusExited
	r.employees[id] = emp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	emp, ok := r.employees[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &emp, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]domain.Employee, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.sorted(func(domain.Employee) bool { return true }), nil
}

func (r *fakeEmployeeRepo) ListByStatus(_ context.Context, status domain.EmployeeStatus) ([]domain.Employee, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.sorted(func(e domain.Employee) bool { return e.Status == status }), nil
}

func (r *fakeEmployeeRepo) sorted(keep func(domain.Employee) bool) []domain.Employee {
	var result []domain.Employee
	for _, emp := range r.employees {
		if keep(emp) {
			result = append(result, emp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// fakePayrollRepo is an in-memory PayrollRepository.
type fakePayrollRepo struct {
	runs     map[int64]domain.PayrollRun
	nextID   int64
	failWith error
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{runs: make(map[int64]domain.PayrollRun), nextID: 1}
}

func (r *fakePayrollRepo) CreateRun(_ context.Context, preview *domain.PayrollPreview) (*domain.PayrollRun, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	run := domain.PayrollRun{
		ID:         r.nextID,
		Month:      preview.Month,
		Year:       preview.Year,
		TotalCost:  preview.TotalCost,
		ApprovedAt: time.Now().UTC(),
		Items:      append([]domain.PayrollItem(nil), preview.Items...),
	}
	r.nextID++
	r.runs[run.ID] = run
	return &run, nil
}

func (r *fakePayrollRepo) ListRuns(_ context.Context) ([]domain.PayrollSummary, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var result []domain.PayrollSummary
	for _, run := range r.runs {
		result = append(result, domain.PayrollSummary{
			ID:         run.ID,
			Month:      run.Month,
			Year:       run.Year,
			TotalCost:  run.TotalCost,
			ApprovedAt: run.ApprovedAt,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year > result[j].Year
		}
		if result[i].Month != result[j].Month {
			return result[i].Month > result[j].Month
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *fakePayrollRepo) GetRun(_ context.Context, id int64) (*domain.PayrollRun, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	run, ok := r.runs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &run, nil
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func statusVal(s domain.EmployeeStatus) *domain.EmployeeStatus { return &s }
