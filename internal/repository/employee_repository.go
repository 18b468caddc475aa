package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/payroll-service/internal/domain"
)

// EmployeeRepository handles persistence for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, id int64, patch domain.EmployeePatch) (*domain.Employee, error)
	Terminate(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	ListByStatus(ctx context.Context, status domain.EmployeeStatus) ([]domain.Employee, error)
}

type employeeRepository struct {
	db DB
}

// NewEmployeeRepository instantiates the repository.
func NewEmployeeRepository(db DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = "id, name, role, department, salary, bank_account, status, contract_path"

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	const query = `
        INSERT INTO employees (name, role, department, salary, bank_account, status, contract_path)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id`

	return r.db.QueryRow(ctx, query,
		emp.Name,
		emp.Role,
		emp.Department,
		emp.Salary,
		emp.BankAccount,
		string(emp.Status),
		emp.ContractPath,
	).Scan(&emp.ID)
}

// Update merges the patch onto the stored row in a single statement.
// COALESCE keeps columns whose patch field is nil, so the merge cannot
// lose a concurrent update the way a read-merge-write cycle would.
func (r *employeeRepository) Update(ctx context.Context, id int64, patch domain.EmployeePatch) (*domain.Employee, error) {
	const query = `
        UPDATE employees
        SET name = COALESCE($1, name),
            role = COALESCE($2, role),
            department = COALESCE($3, department),
            salary = COALESCE($4, salary),
            bank_account = COALESCE($5, bank_account),
            status = COALESCE($6, status),
            contract_path = COALESCE($7, contract_path)
        WHERE id = $8
        RETURNING ` + employeeColumns

	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}

	row := r.db.QueryRow(ctx, query,
		patch.Name,
		patch.Role,
		patch.Department,
		patch.Salary,
		patch.BankAccount,
		status,
		patch.ContractPath,
		id,
	)
	return scanEmployee(row)
}

// Terminate flips status to exited unless it already is. Zero rows
// affected covers both an unknown id and an already-exited employee.
func (r *employeeRepository) Terminate(ctx context.Context, id int64) error {
	const query = `UPDATE employees SET status = 'exited' WHERE id = $1 AND status <> 'exited'`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return scanEmployee(r.db.QueryRow(ctx, query, id))
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func (r *employeeRepository) ListByStatus(ctx context.Context, status domain.EmployeeStatus) ([]domain.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees WHERE status = $1 ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var emp domain.Employee
	var status string
	if err := row.Scan(
		&emp.ID,
		&emp.Name,
		&emp.Role,
		&emp.Department,
		&emp.Salary,
		&emp.BankAccount,
		&status,
		&emp.ContractPath,
	); err != nil {
		return nil, err
	}
	emp.Status = domain.EmployeeStatus(status)
	return &emp, nil
}

func scanEmployees(rows pgx.Rows) ([]domain.Employee, error) {
	var result []domain.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *emp)
	}
	return result, rows.Err()
}
