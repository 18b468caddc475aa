package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/payroll-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Employees *handlers.EmployeesHandler
	Payroll   *handlers.PayrollHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/employees", cfg.Employees.List)
	app.Post("/employees", cfg.Employees.Create)
	app.Get("/employees/:id", cfg.Employees.Get)
	app.Put("/employees/:id", cfg.Employees.Update)
	app.Delete("/employees/:id", cfg.Employees.Terminate)

	app.Get("/payroll/preview", cfg.Payroll.Preview)
	app.Post("/payroll/approve", cfg.Payroll.Approve)
	app.Get("/payrolls", cfg.Payroll.ListRuns)
	app.Get("/payrolls/:id", cfg.Payroll.GetRun)
}
