package events

import (
	"time"

	"github.com/spec-kit/payroll-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeCreated    EventType = "employee_created"
	EventEmployeeTerminated EventType = "employee_terminated"
	EventPayrollApproved    EventType = "payroll_approved"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EmployeeCreatedPayload payload.
type EmployeeCreatedPayload struct {
	EmployeeID int64                 `json:"employee_id"`
	Name       string                `json:"name"`
	Status     domain.EmployeeStatus `json:"status"`
}

// EmployeeTerminatedPayload payload.
type EmployeeTerminatedPayload struct {
	EmployeeID int64 `json:"employee_id"`
}

// PayrollApprovedPayload payload.
type PayrollApprovedPayload struct {
	PayrollID int64   `json:"payroll_id"`
	Month     int     `json:"month"`
	Year      int     `json:"year"`
	TotalCost float64 `json:"total_cost"`
	ItemCount int     `json:"item_count"`
}
