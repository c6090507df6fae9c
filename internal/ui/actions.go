package ui

import "employee-service/internal/employee"

// Action is anything Reduce understands.
type Action interface {
	isAction()
}

// Loaded carries the initial fetch of employees and the state lookup.
type Loaded struct {
	Employees []employee.Employee
	States    []employee.State
}

// EmployeesFetched replaces the list after a mutation.
type EmployeesFetched struct {
	Employees []employee.Employee
}

type SearchChanged struct{ Text string }

// OpenForm opens the add form, or the edit form when Employee is set.
type OpenForm struct{ Employee *employee.Employee }

type SubmitSucceeded struct{}

type CloseDialog struct{}

type ToggleSelected struct{ ID int64 }

// RequestDelete opens the confirmation dialog. ID is ignored for DeleteMulti.
type RequestDelete struct {
	Mode DeleteMode
	ID   int64
}

type DeleteSucceeded struct{}

type OpenChart struct{}

type SetChartType struct{ Type ChartType }

type OpenReport struct{}

type SetPage struct{ Page int }

type SetPageSize struct{ Size int }

// RequestFailed records a network or server error for display.
type RequestFailed struct{ Err error }

func (Loaded) isAction()           {}
func (EmployeesFetched) isAction() {}
func (SearchChanged) isAction()    {}
func (OpenForm) isAction()         {}
func (SubmitSucceeded) isAction()  {}
func (CloseDialog) isAction()      {}
func (ToggleSelected) isAction()   {}
func (RequestDelete) isAction()    {}
func (DeleteSucceeded) isAction()  {}
func (OpenChart) isAction()        {}
func (SetChartType) isAction()     {}
func (OpenReport) isAction()       {}
func (SetPage) isAction()          {}
func (SetPageSize) isAction()      {}
func (RequestFailed) isAction()    {}
