package dto

// EmployeeCreateRequest payload for POST /employees.
type EmployeeCreateRequest struct {
	Name         string   `json:"name"`
	Role         *string  `json:"role"`
	Department   *string  `json:"department"`
	Salary       *float64 `json:"salary"`
	BankAccount  *string  `json:"bank_account"`
	Status       *string  `json:"status"`
	ContractPath *string  `json:"contract_path"`
}

// EmployeeUpdateRequest payload for PUT /employees/:id. Absent fields
// leave the stored values untouched.
type EmployeeUpdateRequest struct {
	Name         *string  `json:"name"`
	Role         *string  `json:"role"`
	Department   *string  `json:"department"`
	Salary       *float64 `json:"salary"`
	BankAccount  *string  `json:"bank_account"`
	Status       *string  `json:"status"`
	ContractPath *string  `json:"contract_path"`
}

// EmployeeResponse representation returned by the API.
type EmployeeResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Role         *string `json:"role"`
	Department   *string `json:"department"`
	Salary       float64 `json:"salary"`
	BankAccount  *string `json:"bank_account"`
	Status       string  `json:"status"`
	ContractPath *string `json:"contract_path"`
}
