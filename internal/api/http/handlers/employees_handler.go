package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/payroll-service/internal/api/dto"
	"github.com/spec-kit/payroll-service/internal/domain"
	"github.com/spec-kit/payroll-service/internal/service"
	apperrors "github.com/spec-kit/payroll-service/pkg/util"
)

// EmployeesHandler exposes employee CRUD endpoints.
type EmployeesHandler struct {
	employeeService *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{employeeService: employeeService}
}

// List handles GET /employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	employees, err := h.employeeService.List(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		resp = append(resp, employeeResponse(&employees[i]))
	}
	return c.JSON(resp)
}

// Get handles GET /employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	emp, err := h.employeeService.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(employeeResponse(emp))
}

// Create handles POST /employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewInvalidInput("name required", nil)
	}
	if req.Salary == nil {
		return apperrors.NewInvalidInput("salary required", nil)
	}

	in := service.CreateEmployeeInput{
		Name:         req.Name,
		Role:         req.Role,
		Department:   req.Department,
		Salary:       *req.Salary,
		BankAccount:  req.BankAccount,
		Status:       statusPtr(req.Status),
		ContractPath: req.ContractPath,
	}
	emp, err := h.employeeService.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(employeeResponse(emp))
}

// Update handles PUT /employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	var req dto.EmployeeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}

	patch := domain.EmployeePatch{
		Name:         req.Name,
		Role:         req.Role,
		Department:   req.Department,
		Salary:       req.Salary,
		BankAccount:  req.BankAccount,
		Status:       statusPtr(req.Status),
		ContractPath: req.ContractPath,
	}
	emp, err := h.employeeService.Update(c.UserContext(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(employeeResponse(emp))
}

// Terminate handles DELETE /employees/:id. Employees are never removed;
// this transitions the status to exited.
func (h *EmployeesHandler) Terminate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.employeeService.Terminate(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewInvalidInput("invalid id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}

func statusPtr(raw *string) *domain.EmployeeStatus {
	if raw == nil {
		return nil
	}
	status := domain.EmployeeStatus(*raw)
	return &status
}

func employeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:           emp.ID,
		Name:         emp.Name,
		Role:         emp.Role,
		Department:   emp.Department,
		Salary:       emp.Salary,
		BankAccount:  emp.BankAccount,
		Status:       string(emp.Status),
		ContractPath: emp.ContractPath,
	}
}
