package domain

import "time"

// PayrollItem is one employee's computed line in a preview or run. The
// employee name is snapshotted at computation time so persisted history
// is immune to later renames.
type PayrollItem struct {
	EmployeeID int64
	Name       string
	Gross      float64
	Deductions float64
	Net        float64
}

// PayrollPreview is an ephemeral payroll aggregate. It is recomputed on
// every request and never persisted or cached.
type PayrollPreview struct {
	Month     int
	Year      int
	TotalCost float64
	Items     []PayrollItem
}

// PayrollRun is a persisted payroll approval event. Once approved, its
// total and items are immutable history.
type PayrollRun struct {
	ID         int64
	Month      int
	Year       int
	TotalCost  float64
	ApprovedAt time.Time
	Items      []PayrollItem
}

// PayrollSummary is the list-view projection of a run, without items.
type PayrollSummary struct {
	ID         int64
	Month      int
	Year       int
	TotalCost  float64
	ApprovedAt time.Time
}
