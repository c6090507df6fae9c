package ui

import (
	"errors"
	"strings"
	"time"

	"employee-service/internal/employee"

	"github.com/shopspring/decimal"
)

// Form is the add/edit dialog as the user typed it. Dates are YYYY-MM-DD.
type Form struct {
	ID          int64
	Name        string
	Designation string
	DateOfJoin  string
	Salary      string
	Gender      string
	State       string
	DateOfBirth string
}

// Field keys used in FormErrors.
const (
	FieldName        = "name"
	FieldDesignation = "designation"
	FieldDateOfJoin  = "dateOfJoin"
	FieldSalary      = "salary"
	FieldGender      = "gender"
	FieldState       = "state"
	FieldDateOfBirth = "dateOfBirth"
)

// FormErrors maps a field key to the message shown next to it.
type FormErrors map[string]string

var ErrFormInvalid = errors.New("form has validation errors")

// NewForm pre-fills the dialog from e, or returns a blank form for nil.
func NewForm(e *employee.Employee) Form {
	if e == nil {
		return Form{}
	}
	f := Form{
		ID:          e.ID,
		Name:        e.Name,
		Designation: e.Designation,
		Gender:      e.Gender,
		State:       e.State,
	}
	if !e.DateOfJoin.IsZero() {
		f.DateOfJoin = e.DateOfJoin.String()
	}
	if !e.DateOfBirth.IsZero() {
		f.DateOfBirth = e.DateOfBirth.String()
	}
	if !e.Salary.IsZero() {
		f.Salary = e.Salary.String()
	}
	return f
}

// ValidateForm checks the form the way the dialog does before submitting.
// today is compared at day granularity.
func ValidateForm(f Form, today time.Time) FormErrors {
	errs := FormErrors{}
	required := func(key, value, msg string) {
		if strings.TrimSpace(value) == "" {
			errs[key] = msg
		}
	}
	required(FieldName, f.Name, "Name is required.")
	required(FieldDesignation, f.Designation, "Designation is required.")
	required(FieldDateOfJoin, f.DateOfJoin, "Date of Join is required.")
	required(FieldSalary, f.Salary, "Salary is required.")
	required(FieldGender, f.Gender, "Gender is required.")
	required(FieldState, f.State, "State is required.")
	required(FieldDateOfBirth, f.DateOfBirth, "Date of Birth is required.")

	if _, ok := errs[FieldSalary]; !ok {
		s, err := decimal.NewFromString(strings.TrimSpace(f.Salary))
		scaleOK, rangeOK := employee.SalaryFits(s)
		switch {
		case err != nil || !s.IsPositive():
			errs[FieldSalary] = "Salary must be a positive number."
		case !scaleOK:
			errs[FieldSalary] = "Salary can have at most two decimal places."
		case !rangeOK:
			errs[FieldSalary] = "Salary is too large."
		}
	}

	join, joinErr := parseFormDate(f.DateOfJoin)
	birth, birthErr := parseFormDate(f.DateOfBirth)
	day := employee.DateOf(today)

	if joinErr == nil && birthErr == nil {
		switch {
		case join.Equal(birth.Time):
			errs[FieldDateOfJoin] = "Date of Join cannot be same as Date of Birth."
		case join.Before(birth.Time):
			errs[FieldDateOfJoin] = "Date of Join cannot be before Date of Birth."
		}
	}
	if birthErr == nil && Age(birth, today) < 0 {
		errs[FieldDateOfBirth] = "Age cannot be negative."
	}
	if joinErr == nil && join.After(day.Time) {
		errs[FieldDateOfJoin] = "Date of Join cannot be in the future."
	}

	if _, missing := errs[FieldDateOfJoin]; !missing && f.DateOfJoin != "" && joinErr != nil {
		errs[FieldDateOfJoin] = "Date of Join is not a valid date."
	}
	if _, missing := errs[FieldDateOfBirth]; !missing && f.DateOfBirth != "" && birthErr != nil {
		errs[FieldDateOfBirth] = "Date of Birth is not a valid date."
	}
	return errs
}

func parseFormDate(s string) (employee.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return employee.Date{}, errors.New("empty date")
	}
	return employee.ParseDate(s)
}

// Employee converts a validated form. Call ValidateForm first.
func (f Form) Employee(today time.Time) (*employee.Employee, error) {
	if errs := ValidateForm(f, today); len(errs) > 0 {
		return nil, ErrFormInvalid
	}
	join, _ := parseFormDate(f.DateOfJoin)
	birth, _ := parseFormDate(f.DateOfBirth)
	salary, _ := decimal.NewFromString(strings.TrimSpace(f.Salary))
	return &employee.Employee{
		ID:          f.ID,
		Name:        strings.TrimSpace(f.Name),
		Designation: strings.TrimSpace(f.Designation),
		DateOfJoin:  join,
		Salary:      salary,
		Gender:      f.Gender,
		State:       f.State,
		DateOfBirth: birth,
	}, nil
}

// Age is the number of whole years between birth and today. It is negative
// when birth lies in the future.
func Age(birth employee.Date, today time.Time) int {
	if birth.IsZero() {
		return 0
	}
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}
