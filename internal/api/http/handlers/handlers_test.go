package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/payroll-service/internal/api/http"
	"github.com/spec-kit/payroll-service/internal/api/http/handlers"
	"github.com/spec-kit/payroll-service/internal/observability"
	"github.com/spec-kit/payroll-service/internal/repository"
	"github.com/spec-kit/payroll-service/internal/service"
)

func newTestApp(t *testing.T) (*fiber.App, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	employeeRepo := repository.NewEmployeeRepository(mock)
	payrollRepo := repository.NewPayrollRepository(mock)

	employeeService := service.NewEmployeeService(employeeRepo, nil)
	payrollService := service.NewPayrollService(service.PayrollDependencies{
		EmployeeRepo: employeeRepo,
		PayrollRepo:  payrollRepo,
		Calculator:   service.NewPayrollCalculator(service.DefaultDeductionRate),
	})

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler("payroll-service-test", "test", nil, nil),
		Employees: handlers.NewEmployeesHandler(employeeService),
		Payroll:   handlers.NewPayrollHandler(payrollService),
	})
	return app, mock
}

func TestCreateEmployeeEndpoint(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO employees")).
		WithArgs("Alice", pgxmock.AnyArg(), pgxmock.AnyArg(), 1000.0, pgxmock.AnyArg(), "active", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	body := strings.NewReader(`{"name":"Alice","salary":1000}`)
	req := httptest.NewRequest("POST", "/employees", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		ID     int64   `json:"id"`
		Name   string  `json:"name"`
		Salary float64 `json:"salary"`
		Status string  `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Alice", created.Name)
	assert.Equal(t, 1000.0, created.Salary)
	assert.Equal(t, "active", created.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployeeRejectsMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	for _, body := range []string{`{"salary":1000}`, `{"name":"Alice"}`, `{"name":"Alice","salary":-5}`} {
		req := httptest.NewRequest("POST", "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode, "body: %s", body)
	}
}

func TestGetEmployeeNotFound(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	resp, err := app.Test(httptest.NewRequest("GET", "/employees/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTerminateEmployeeAlreadyExited(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE employees SET status = 'exited'")).
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/employees/9", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreviewPayrollEndpoint(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE status = $1 ORDER BY id ASC")).
		WithArgs("active").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "role", "department", "salary", "bank_account", "status", "contract_path"}).
			AddRow(int64(1), "Alice", nil, nil, 1000.0, nil, "active", nil))

	resp, err := app.Test(httptest.NewRequest("GET", "/payroll/preview?month=6&year=2025", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var preview struct {
		Month     int     `json:"month"`
		Year      int     `json:"year"`
		TotalCost float64 `json:"total_cost"`
		Items     []struct {
			EmployeeID int64   `json:"employee_id"`
			Gross      float64 `json:"gross"`
			Deductions float64 `json:"deductions"`
			Net        float64 `json:"net"`
		} `json:"items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&preview))
	assert.Equal(t, 6, preview.Month)
	assert.Equal(t, 2025, preview.Year)
	require.Len(t, preview.Items, 1)
	assert.InDelta(t, 900.0, preview.TotalCost, 1e-9)
	assert.InDelta(t, 100.0, preview.Items[0].Deductions, 1e-9)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreviewPayrollRejectsBadPeriod(t *testing.T) {
	app, _ := newTestApp(t)

	for _, target := range []string{
		"/payroll/preview",
		"/payroll/preview?month=13&year=2025",
		"/payroll/preview?month=6",
		"/payroll/preview?month=abc&year=2025",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode, "target: %s", target)
	}
}

func TestApprovePayrollEndpoint(t *testing.T) {
	app, mock := newTestApp(t)
	approvedAt := time.Date(2025, 6, 30, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE status = $1 ORDER BY id ASC")).
		WithArgs("active").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "role", "department", "salary", "bank_account", "status", "contract_path"}).
			AddRow(int64(1), "Alice", nil, nil, 1000.0, nil, "active", nil))
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payrolls")).
		WithArgs(6, 2025, 900.0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "approved_at"}).AddRow(int64(5), approvedAt))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payroll_items")).
		WithArgs(int64(5), int64(1), "Alice", 1000.0, 100.0, 900.0).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	resp, err := app.Test(httptest.NewRequest("POST", "/payroll/approve?month=6&year=2025", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var approved struct {
		PayrollID int64  `json:"payroll_id"`
		Message   string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&approved))
	assert.Equal(t, int64(5), approved.PayrollID)
	assert.Equal(t, "Payroll approved", approved.Message)

	assert.NoError(t, mock.ExpectationsWereMet())
}
