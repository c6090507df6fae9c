package employee

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator checks create and update payloads. Date rules are evaluated
// against the injected clock.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	v := &Validator{validate: validator.New(), now: now}

	v.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.validate.RegisterStructValidation(v.employeeRules, Employee{})
	return v
}

func (v *Validator) employeeRules(sl validator.StructLevel) {
	e := sl.Current().Interface().(Employee)

	if !e.Salary.IsPositive() {
		sl.ReportError(e.Salary, "salary", "Salary", "positive", "")
	}
	scaleOK, rangeOK := SalaryFits(e.Salary)
	if !scaleOK {
		sl.ReportError(e.Salary, "salary", "Salary", "scale", "")
	}
	if !rangeOK {
		sl.ReportError(e.Salary, "salary", "Salary", "range", "")
	}
	if e.DateOfBirth.IsZero() {
		sl.ReportError(e.DateOfBirth, "dateOfBirth", "DateOfBirth", "required", "")
	}
	if e.DateOfJoin.IsZero() {
		sl.ReportError(e.DateOfJoin, "dateOfJoin", "DateOfJoin", "required", "")
		return
	}
	if !e.DateOfBirth.IsZero() && !e.DateOfJoin.After(e.DateOfBirth.Time) {
		sl.ReportError(e.DateOfJoin, "dateOfJoin", "DateOfJoin", "afterbirth", "")
	}
	if e.DateOfJoin.After(DateOf(v.now()).Time) {
		sl.ReportError(e.DateOfJoin, "dateOfJoin", "DateOfJoin", "notfuture", "")
	}
}

// Validate returns nil or an error wrapping ErrInvalidInput whose text lists
// every violated rule.
func (v *Validator) Validate(e *Employee) error {
	err := v.validate.Struct(e)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "positive":
		return "salary must be greater than zero"
	case "scale":
		return fmt.Sprintf("salary must have at most %d decimal places", SalaryScale)
	case "range":
		return "salary must be less than " + SalaryLimit.String()
	case "afterbirth":
		return "dateOfJoin must be after dateOfBirth"
	case "notfuture":
		return "dateOfJoin cannot be in the future"
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
