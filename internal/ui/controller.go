package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"employee-service/internal/employee"
)

// API is the part of the REST client the application drives.
// *client.Client satisfies it.
type API interface {
	GetAllEmployees(ctx context.Context) ([]employee.Employee, error)
	GetAllStates(ctx context.Context) ([]employee.State, error)
	AddEmployee(ctx context.Context, e *employee.Employee) (*employee.Employee, error)
	UpdateEmployee(ctx context.Context, e *employee.Employee) error
	DeleteEmployee(ctx context.Context, id int64) error
	DeleteEmployees(ctx context.Context, ids []int64) error
}

// Controller runs the side effects of user intents and feeds their results
// back into the store. One API call per intent, no retries.
type Controller struct {
	api    API
	store  *Store
	logger *slog.Logger
	now    func() time.Time
}

func NewController(api API, store *Store, logger *slog.Logger, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{api: api, store: store, logger: logger, now: now}
}

func (c *Controller) Store() *Store { return c.store }

// Load fetches employees and states once.
func (c *Controller) Load(ctx context.Context) error {
	employees, err := c.api.GetAllEmployees(ctx)
	if err != nil {
		return c.fail(ctx, "failed to load employees", err)
	}
	states, err := c.api.GetAllStates(ctx)
	if err != nil {
		return c.fail(ctx, "failed to load states", err)
	}
	c.store.Dispatch(Loaded{Employees: employees, States: states})
	return nil
}

// Refresh re-fetches the employee list.
func (c *Controller) Refresh(ctx context.Context) error {
	employees, err := c.api.GetAllEmployees(ctx)
	if err != nil {
		return c.fail(ctx, "failed to fetch employees", err)
	}
	c.store.Dispatch(EmployeesFetched{Employees: employees})
	return nil
}

// Submit validates the form and creates or updates the employee. Validation
// problems come back as FormErrors and never reach the API.
func (c *Controller) Submit(ctx context.Context, f Form) (FormErrors, error) {
	if errs := ValidateForm(f, c.now()); len(errs) > 0 {
		return errs, ErrFormInvalid
	}
	e, err := f.Employee(c.now())
	if err != nil {
		return nil, err
	}

	if e.ID == 0 {
		_, err = c.api.AddEmployee(ctx, e)
	} else {
		err = c.api.UpdateEmployee(ctx, e)
	}
	if err != nil {
		return nil, c.fail(ctx, "failed to save employee", err)
	}

	c.store.Dispatch(SubmitSucceeded{})
	return nil, c.Refresh(ctx)
}

// ConfirmDelete executes the delete pending in the confirmation dialog.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	s := c.store.State()
	if s.Dialog != DialogConfirmDelete {
		return nil
	}

	var err error
	switch s.DeleteMode {
	case DeleteSingle:
		err = c.api.DeleteEmployee(ctx, s.DeleteTarget)
	case DeleteMulti:
		err = c.api.DeleteEmployees(ctx, s.Selected)
	default:
		return nil
	}
	if err != nil {
		c.store.Dispatch(CloseDialog{})
		return c.fail(ctx, "failed to delete employees", err)
	}

	c.store.Dispatch(DeleteSucceeded{})
	return c.Refresh(ctx)
}

func (c *Controller) fail(ctx context.Context, msg string, err error) error {
	wrapped := fmt.Errorf("%s: %w", msg, err)
	c.logger.ErrorContext(ctx, msg, "error", err)
	c.store.Dispatch(RequestFailed{Err: wrapped})
	return wrapped
}
