package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/payroll-service/internal/domain"
)

// PayrollRepository encapsulates persistence of approved payroll runs.
type PayrollRepository interface {
	CreateRun(ctx context.Context, preview *domain.PayrollPreview) (*domain.PayrollRun, error)
	ListRuns(ctx context.Context) ([]domain.PayrollSummary, error)
	GetRun(ctx context.Context, id int64) (*domain.PayrollRun, error)
}

type payrollRepository struct {
	db DB
}

// NewPayrollRepository instantiates the repository.
func NewPayrollRepository(db DB) PayrollRepository {
	return &payrollRepository{db: db}
}

// CreateRun persists the preview as a new run inside one transaction.
// Either the run row and every line item become visible together, or
// none do. Each period approval creates a fresh run; approving the same
// month/year twice yields two independent runs.
func (r *payrollRepository) CreateRun(ctx context.Context, preview *domain.PayrollPreview) (*domain.PayrollRun, error) {
	const insertRun = `
        INSERT INTO payrolls (month, year, total_cost, approved_at)
        VALUES ($1,$2,$3,NOW())
        RETURNING id, approved_at`
	const insertItem = `
        INSERT INTO payroll_items (payroll_id, employee_id, employee_name, gross, deductions, net)
        VALUES ($1,$2,$3,$4,$5,$6)`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	run := &domain.PayrollRun{
		Month:     preview.Month,
		Year:      preview.Year,
		TotalCost: preview.TotalCost,
		Items:     preview.Items,
	}
	if err := tx.QueryRow(ctx, insertRun, preview.Month, preview.Year, preview.TotalCost).
		Scan(&run.ID, &run.ApprovedAt); err != nil {
		return nil, err
	}

	for _, item := range preview.Items {
		if _, err := tx.Exec(ctx, insertItem,
			run.ID,
			item.EmployeeID,
			item.Name,
			item.Gross,
			item.Deductions,
			item.Net,
		); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return run, nil
}

func (r *payrollRepository) ListRuns(ctx context.Context) ([]domain.PayrollSummary, error) {
	const query = `
        SELECT id, month, year, total_cost, approved_at
        FROM payrolls
        ORDER BY year DESC, month DESC, id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PayrollSummary
	for rows.Next() {
		var summary domain.PayrollSummary
		if err := rows.Scan(
			&summary.ID,
			&summary.Month,
			&summary.Year,
			&summary.TotalCost,
			&summary.ApprovedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, summary)
	}
	return result, rows.Err()
}

// GetRun reads a run snapshot with its line items. Item names come from
// the employee_name column written at approval time, so later renames
// or terminations never rewrite history.
func (r *payrollRepository) GetRun(ctx context.Context, id int64) (*domain.PayrollRun, error) {
	const runQuery = `
        SELECT id, month, year, total_cost, approved_at
        FROM payrolls WHERE id = $1`
	const itemsQuery = `
        SELECT employee_id, employee_name, gross, deductions, net
        FROM payroll_items
        WHERE payroll_id = $1
        ORDER BY id ASC`

	var run domain.PayrollRun
	if err := r.db.QueryRow(ctx, runQuery, id).Scan(
		&run.ID,
		&run.Month,
		&run.Year,
		&run.TotalCost,
		&run.ApprovedAt,
	); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	run.Items, err = scanPayrollItems(rows)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func scanPayrollItems(rows pgx.Rows) ([]domain.PayrollItem, error) {
	var items []domain.PayrollItem
	for rows.Next() {
		var item domain.PayrollItem
		if err := rows.Scan(
			&item.EmployeeID,
			&item.Name,
			&item.Gross,
			&item.Deductions,
			&item.Net,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
