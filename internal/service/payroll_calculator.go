package service

import "github.com/spec-kit/payroll-service/internal/domain"

// DefaultDeductionRate is the flat withholding fraction used when no
// rate is configured. Intentionally simplistic; this is not a tax
// engine.
const DefaultDeductionRate = 0.10

// PayrollCalculator maps an employee to a computed payroll line item.
// It is the single entry point for the deduction policy, so the flat
// rate can be swapped for a bracket policy without touching the
// orchestration around it.
type PayrollCalculator struct {
	rate float64
}

// NewPayrollCalculator builds a calculator with the given deduction
// rate. Rates outside [0, 1] fall back to the default.
func NewPayrollCalculator(rate float64) *PayrollCalculator {
	if rate < 0 || rate > 1 {
		rate = DefaultDeductionRate
	}
	return &PayrollCalculator{rate: rate}
}

// Calculate computes gross, deductions and net for one employee. Pure
// and deterministic: the same employee snapshot always yields the same
// item.
func (c *PayrollCalculator) Calculate(emp domain.Employee) domain.PayrollItem {
	gross := emp.Salary
	deductions := gross * c.rate
	return domain.PayrollItem{
		EmployeeID: emp.ID,
		Name:       emp.Name,
		Gross:      gross,
		Deductions: deductions,
		Net:        gross - deductions,
	}
}
