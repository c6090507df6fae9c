package ui_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"employee-service/internal/employee"

	"github.com/shopspring/decimal"
)

var today = time.Date(2025, 7, 14, 10, 30, 0, 0, time.UTC)

func fixedNow() time.Time { return today }

func emp(id int64, name, designation string, salary int64, joined employee.Date) employee.Employee {
	return employee.Employee{
		ID:          id,
		Name:        name,
		Designation: designation,
		DateOfJoin:  joined,
		Salary:      decimal.NewFromInt(salary),
		Gender:      "Female",
		State:       "Kerala",
		DateOfBirth: employee.NewDate(1990, time.March, 1),
	}
}

func sampleEmployees() []employee.Employee {
	return []employee.Employee{
		emp(1, "Asha Nair", "A", 100, employee.NewDate(2020, time.January, 6)),
		emp(2, "Ravi Kumar", "B", 200, employee.NewDate(2021, time.February, 1)),
		emp(3, "Anand Rao", "A", 50, employee.NewDate(2019, time.May, 20)),
	}
}

var errNetwork = errors.New("connection refused")

type fakeAPI struct {
	mu        sync.Mutex
	employees []employee.Employee
	states    []employee.State
	nextID    int64
	err       error
	calls     []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		employees: sampleEmployees(),
		states: []employee.State{
			{ID: 1, StateCode: "AP", StateName: "Andhra Pradesh"},
			{ID: 2, StateCode: "KL", StateName: "Kerala"},
		},
		nextID: 4,
	}
}

func (f *fakeAPI) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

func (f *fakeAPI) GetAllEmployees(context.Context) ([]employee.Employee, error) {
	if err := f.record("GetAllEmployees"); err != nil {
		return nil, err
	}
	return slices.Clone(f.employees), nil
}

func (f *fakeAPI) GetAllStates(context.Context) ([]employee.State, error) {
	if err := f.record("GetAllStates"); err != nil {
		return nil, err
	}
	return f.states, nil
}

func (f *fakeAPI) AddEmployee(_ context.Context, e *employee.Employee) (*employee.Employee, error) {
	if err := f.record("AddEmployee"); err != nil {
		return nil, err
	}
	created := *e
	created.ID = f.nextID
	f.nextID++
	f.employees = append(f.employees, created)
	return &created, nil
}

func (f *fakeAPI) UpdateEmployee(_ context.Context, e *employee.Employee) error {
	if err := f.record("UpdateEmployee"); err != nil {
		return err
	}
	for i := range f.employees {
		if f.employees[i].ID == e.ID {
			f.employees[i] = *e
		}
	}
	return nil
}

func (f *fakeAPI) DeleteEmployee(_ context.Context, id int64) error {
	if err := f.record("DeleteEmployee"); err != nil {
		return err
	}
	f.employees = slices.DeleteFunc(f.employees, func(e employee.Employee) bool { return e.ID == id })
	return nil
}

func (f *fakeAPI) DeleteEmployees(_ context.Context, ids []int64) error {
	if err := f.record("DeleteEmployees"); err != nil {
		return err
	}
	f.employees = slices.DeleteFunc(f.employees, func(e employee.Employee) bool { return slices.Contains(ids, e.ID) })
	return nil
}
