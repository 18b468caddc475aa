package dto

import "time"

// PayrollItemResponse is one employee's line in a preview or run.
type PayrollItemResponse struct {
	EmployeeID int64   `json:"employee_id"`
	Name       string  `json:"name"`
	Gross      float64 `json:"gross"`
	Deductions float64 `json:"deductions"`
	Net        float64 `json:"net"`
}

// PayrollPreviewResponse for GET /payroll/preview.
type PayrollPreviewResponse struct {
	Month     int                   `json:"month"`
	Year      int                   `json:"year"`
	TotalCost float64               `json:"total_cost"`
	Items     []PayrollItemResponse `json:"items"`
}

// PayrollApproveResponse for POST /payroll/approve.
type PayrollApproveResponse struct {
	PayrollID int64  `json:"payroll_id"`
	Message   string `json:"message"`
}

// PayrollSummaryResponse is a run without its items, for GET /payrolls.
type PayrollSummaryResponse struct {
	ID         int64     `json:"id"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	TotalCost  float64   `json:"total_cost"`
	ApprovedAt time.Time `json:"approved_at"`
}

// PayrollRunResponse is a full run with items, for GET /payrolls/:id.
type PayrollRunResponse struct {
	ID         int64                 `json:"id"`
	Month      int                   `json:"month"`
	Year       int                   `json:"year"`
	TotalCost  float64               `json:"total_cost"`
	ApprovedAt time.Time             `json:"approved_at"`
	Items      []PayrollItemResponse `json:"items"`
}
