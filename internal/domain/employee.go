package domain

// EmployeeStatus enumerates employment lifecycle states.
type EmployeeStatus string

const (
	EmployeeStatusActive  EmployeeStatus = "active"
	EmployeeStatusOnLeave EmployeeStatus = "on_leave"
	EmployeeStatusExited  EmployeeStatus = "exited"
)

// Valid reports whether the status is a known lifecycle state.
func (s EmployeeStatus) Valid() bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusOnLeave, EmployeeStatusExited:
		return true
	default:
		return false
	}
}

// Employee models one employment record. Employees are never deleted;
// termination transitions the status to exited.
type Employee struct {
	ID           int64
	Name         string
	Role         *string
	Department   *string
	Salary       float64
	BankAccount  *string
	Status       EmployeeStatus
	ContractPath *string
}

// Payable reports whether the employee is eligible for a payroll run.
// Only active employees are paid; on_leave and exited are excluded.
func (e Employee) Payable() bool {
	return e.Status == EmployeeStatusActive
}

// EmployeePatch carries a partial update. Nil fields are left untouched
// by the merge.
type EmployeePatch struct {
	Name         *string
	Role         *string
	Department   *string
	Salary       *float64
	BankAccount  *string
	Status       *EmployeeStatus
	ContractPath *string
}

// Empty reports whether the patch carries no changes.
func (p EmployeePatch) Empty() bool {
	return p.Name == nil && p.Role == nil && p.Department == nil &&
		p.Salary == nil && p.BankAccount == nil && p.Status == nil &&
		p.ContractPath == nil
}
