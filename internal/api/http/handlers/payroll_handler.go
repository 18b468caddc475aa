package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/payroll-service/internal/api/dto"
	"github.com/spec-kit/payroll-service/internal/domain"
	"github.com/spec-kit/payroll-service/internal/service"
	apperrors "github.com/spec-kit/payroll-service/pkg/util"
)

// PayrollHandler exposes payroll preview, approval and history endpoints.
type PayrollHandler struct {
	payrollService *service.PayrollService
}

// NewPayrollHandler constructs handler.
func NewPayrollHandler(payrollService *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollService: payrollService}
}

// Preview handles GET /payroll/preview?month&year.
func (h *PayrollHandler) Preview(c *fiber.Ctx) error {
	month, year, err := parsePeriodQuery(c)
	if err != nil {
		return err
	}
	preview, err := h.payrollService.Preview(c.UserContext(), month, year)
	if err != nil {
		return err
	}
	return c.JSON(previewResponse(preview))
}

// Approve handles POST /payroll/approve?month&year.
func (h *PayrollHandler) Approve(c *fiber.Ctx) error {
	month, year, err := parsePeriodQuery(c)
	if err != nil {
		return err
	}
	run, err := h.payrollService.Approve(c.UserContext(), month, year)
	if err != nil {
		return err
	}
	return c.JSON(dto.PayrollApproveResponse{
		PayrollID: run.ID,
		Message:   "Payroll approved",
	})
}

// ListRuns handles GET /payrolls.
func (h *PayrollHandler) ListRuns(c *fiber.Ctx) error {
	runs, err := h.payrollService.ListRuns(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.PayrollSummaryResponse, 0, len(runs))
	for _, run := range runs {
		resp = append(resp, dto.PayrollSummaryResponse{
			ID:         run.ID,
			Month:      run.Month,
			Year:       run.Year,
			TotalCost:  run.TotalCost,
			ApprovedAt: run.ApprovedAt,
		})
	}
	return c.JSON(resp)
}

// GetRun handles GET /payrolls/:id.
func (h *PayrollHandler) GetRun(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	run, err := h.payrollService.GetRun(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.PayrollRunResponse{
		ID:         run.ID,
		Month:      run.Month,
		Year:       run.Year,
		TotalCost:  run.TotalCost,
		ApprovedAt: run.ApprovedAt,
		Items:      itemResponses(run.Items),
	})
}

// parsePeriodQuery validates the month/year pair at the boundary; the
// core carries the period through as given.
func parsePeriodQuery(c *fiber.Ctx) (int, int, error) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, apperrors.NewInvalidInput("month must be an integer between 1 and 12", map[string]any{"month": c.Query("month")})
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		return 0, 0, apperrors.NewInvalidInput("year must be a positive integer", map[string]any{"year": c.Query("year")})
	}
	return month, year, nil
}

func previewResponse(preview *domain.PayrollPreview) dto.PayrollPreviewResponse {
	return dto.PayrollPreviewResponse{
		Month:     preview.Month,
		Year:      preview.Year,
		TotalCost: preview.TotalCost,
		Items:     itemResponses(preview.Items),
	}
}

func itemResponses(items []domain.PayrollItem) []dto.PayrollItemResponse {
	resp := make([]dto.PayrollItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, dto.PayrollItemResponse{
			EmployeeID: item.EmployeeID,
			Name:       item.Name,
			Gross:      item.Gross,
			Deductions: item.Deductions,
			Net:        item.Net,
		})
	}
	return resp
}
