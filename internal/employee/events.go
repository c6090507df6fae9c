package employee

import (
	"context"
	"time"
)

const (
	EventCreated = "employee.created"
	EventUpdated = "employee.updated"
	EventDeleted = "employee.deleted"
)

// Event describes a committed change to the employee table.
type Event struct {
	Type        string    `json:"type"`
	EmployeeIDs []int64   `json:"employeeIds"`
	Employee    *Employee `json:"employee,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// Publisher delivers change events. Delivery is best effort; a failed
// publish never fails the mutation that produced it.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, Event) error { return nil }
