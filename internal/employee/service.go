package employee

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidColumn     = errors.New("invalid column")
	ErrIDMismatch        = errors.New("employee id mismatch")
	ErrDuplicateEmployee = errors.New("duplicate record found")
)

type Service interface {
	Search(ctx context.Context, filter Filter) ([]Employee, error)
	GetAllEmployees(ctx context.Context) ([]Employee, error)
	GetEmployeeByID(ctx context.Context, id int64) (*Employee, error)
	CreateEmployee(ctx context.Context, employee *Employee) (*Employee, error)
	UpdateEmployee(ctx context.Context, id int64, employee *Employee) error
	DeleteEmployee(ctx context.Context, id int64) error
	DeleteEmployees(ctx context.Context, ids []int64) error
	GetAllStates(ctx context.Context) ([]State, error)
}

type service struct {
	repo      Repository
	validator *Validator
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires the employee use cases. A nil publisher disables change
// events.
func NewService(repo Repository, validator *Validator, publisher Publisher, logger *slog.Logger) Service {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	return &service{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *service) Search(ctx context.Context, filter Filter) ([]Employee, error) {
	return s.repo.GetFiltered(ctx, filter)
}

func (s *service) GetAllEmployees(ctx context.Context) ([]Employee, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetEmployeeByID(ctx context.Context, id int64) (*Employee, error) {
	if id <= 0 {
		return nil, ErrEmployeeNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// CreateEmployee rejects duplicate names before anything is written.
func (s *service) CreateEmployee(ctx context.Context, employee *Employee) (*Employee, error) {
	if err := s.validator.Validate(employee); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByName(ctx, employee.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmployee
	}

	created, err := s.repo.Add(ctx, employee)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, Event{Type: EventCreated, EmployeeIDs: []int64{created.ID}, Employee: created})
	return created, nil
}

func (s *service) UpdateEmployee(ctx context.Context, id int64, employee *Employee) error {
	if id != employee.ID {
		return ErrIDMismatch
	}
	if err := s.validator.Validate(employee); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, employee); err != nil {
		return err
	}

	s.publish(ctx, Event{Type: EventUpdated, EmployeeIDs: []int64{employee.ID}, Employee: employee})
	return nil
}

func (s *service) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, Event{Type: EventDeleted, EmployeeIDs: []int64{id}})
	return nil
}

func (s *service) DeleteEmployees(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.repo.DeleteByIDs(ctx, ids); err != nil {
		return err
	}

	s.publish(ctx, Event{Type: EventDeleted, EmployeeIDs: ids})
	return nil
}

func (s *service) GetAllStates(ctx context.Context) ([]State, error) {
	return s.repo.GetAllStates(ctx)
}

func (s *service) publish(ctx context.Context, event Event) {
	event.OccurredAt = s.now().UTC()
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish employee event", "type", event.Type, "error", err)
	}
}
