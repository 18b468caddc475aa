package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/payroll-service/internal/domain"
)

func TestPayrollCalculatorFlatRate(t *testing.T) {
	calc := NewPayrollCalculator(DefaultDeductionRate)

	tests := []struct {
		name       string
		salary     float64
		deductions float64
		net        float64
	}{
		{"typical salary", 1000, 100, 900},
		{"zero salary", 0, 0, 0},
		{"fractional salary", 3333.33, 333.333, 2999.997},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp := domain.Employee{ID: 1, Name: "Alice", Salary: tt.salary, Status: domain.EmployeeStatusActive}
			item := calc.Calculate(emp)

			assert.Equal(t, int64(1), item.EmployeeID)
			assert.Equal(t, "Alice", item.Name)
			assert.Equal(t, tt.salary, item.Gross)
			assert.InDelta(t, tt.deductions, item.Deductions, 1e-9)
			assert.InDelta(t, tt.net, item.Net, 1e-9)
			assert.InDelta(t, item.Gross*0.9, item.Net, 1e-9)
		})
	}
}

func TestPayrollCalculatorDeterministic(t *testing.T) {
	calc := NewPayrollCalculator(DefaultDeductionRate)
	emp := domain.Employee{ID: 42, Name: "Bob", Salary: 2500, Status: domain.EmployeeStatusActive}

	first := calc.Calculate(emp)
	second := calc.Calculate(emp)

	assert.Equal(t, first, second)
}

func TestPayrollCalculatorCustomRate(t *testing.T) {
	calc := NewPayrollCalculator(0.25)
	item := calc.Calculate(domain.Employee{ID: 1, Name: "Carol", Salary: 400})

	assert.InDelta(t, 100.0, item.Deductions, 1e-9)
	assert.InDelta(t, 300.0, item.Net, 1e-9)
}

func TestPayrollCalculatorRejectsOutOfRangeRate(t *testing.T) {
	calc := NewPayrollCalculator(2.5)
	item := calc.Calculate(domain.Employee{ID: 1, Name: "Dave", Salary: 1000})

	assert.InDelta(t, 100.0, item.Deductions, 1e-9)
}
