package ui_test

import (
	"errors"
	"testing"

	"employee-service/internal/employee"
	"employee-service/internal/ui"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loaded() ui.State {
	return ui.Reduce(ui.InitialState(), ui.Loaded{
		Employees: sampleEmployees(),
		States:    []employee.State{{StateName: "Andhra Pradesh"}, {StateName: "Kerala"}},
	})
}

func TestReduce_LoadedProjectsStateNames(t *testing.T) {
	s := loaded()

	assert.Len(t, s.Employees, 3)
	assert.Equal(t, []string{"Andhra Pradesh", "Kerala"}, s.States)
	assert.Equal(t, ui.DialogNone, s.Dialog)
	assert.Equal(t, ui.ChartPie, s.ChartType)
	assert.Equal(t, 5, s.PageSize)
}

func TestState_VisibleMatchesNameCaseInsensitively(t *testing.T) {
	names := func(s ui.State) []string {
		var out []string
		for _, e := range s.Visible() {
			out = append(out, e.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Anand Rao"}, names(ui.Reduce(loaded(), ui.SearchChanged{Text: "AN"})))
	assert.Equal(t, []string{"Asha Nair", "Ravi Kumar"}, names(ui.Reduce(loaded(), ui.SearchChanged{Text: "a"}))[:2])
	assert.Len(t, names(ui.Reduce(loaded(), ui.SearchChanged{Text: ""})), 3)
}

func TestState_VisibleIgnoresDesignation(t *testing.T) {
	s := ui.Reduce(loaded(), ui.SearchChanged{Text: "B"})
	assert.Empty(t, s.Visible())
}

func TestState_PagingAndTotalSalary(t *testing.T) {
	var many []employee.Employee
	for i := int64(1); i <= 12; i++ {
		many = append(many, emp(i, "Emp", "A", 10*i, employee.Date{}))
	}
	s := ui.Reduce(ui.InitialState(), ui.Loaded{Employees: many})

	assert.Equal(t, 3, s.PageCount())
	assert.Len(t, s.PageRows(), 5)
	assert.True(t, decimal.NewFromInt(150).Equal(s.TotalSalary()), s.TotalSalary().String())

	s = ui.Reduce(s, ui.SetPage{Page: 2})
	assert.Len(t, s.PageRows(), 2)
	assert.True(t, decimal.NewFromInt(230).Equal(s.TotalSalary()))

	s = ui.Reduce(s, ui.SetPage{Page: 9})
	assert.Equal(t, 2, s.Page)

	s = ui.Reduce(s, ui.SetPageSize{Size: 10})
	assert.Equal(t, 0, s.Page)
	assert.Equal(t, 2, s.PageCount())

	s = ui.Reduce(s, ui.SetPageSize{Size: 7})
	assert.Equal(t, 10, s.PageSize)
}

func TestReduce_SelectionToggle(t *testing.T) {
	s := ui.Reduce(loaded(), ui.ToggleSelected{ID: 1})
	s = ui.Reduce(s, ui.ToggleSelected{ID: 3})
	assert.Equal(t, []int64{1, 3}, s.Selected)

	s = ui.Reduce(s, ui.ToggleSelected{ID: 1})
	assert.Equal(t, []int64{3}, s.Selected)
}

func TestReduce_DoesNotMutatePreviousState(t *testing.T) {
	before := loaded()
	for _, id := range []int64{1, 2, 3} {
		before = ui.Reduce(before, ui.ToggleSelected{ID: id})
	}
	after := ui.Reduce(before, ui.ToggleSelected{ID: 2})

	assert.Equal(t, []int64{1, 2, 3}, before.Selected)
	assert.Equal(t, []int64{1, 3}, after.Selected)
}

func TestReduce_MultiDeleteNeedsSelection(t *testing.T) {
	s := ui.Reduce(loaded(), ui.RequestDelete{Mode: ui.DeleteMulti})
	assert.Equal(t, ui.DialogNone, s.Dialog)

	s = ui.Reduce(ui.Reduce(s, ui.ToggleSelected{ID: 2}), ui.RequestDelete{Mode: ui.DeleteMulti})
	assert.Equal(t, ui.DialogConfirmDelete, s.Dialog)
	assert.Equal(t, ui.DeleteMulti, s.DeleteMode)

	s = ui.Reduce(s, ui.DeleteSucceeded{})
	assert.Empty(t, s.Selected)
	assert.Equal(t, ui.DialogNone, s.Dialog)
}

func TestReduce_SingleDeleteKeepsSelection(t *testing.T) {
	s := ui.Reduce(loaded(), ui.ToggleSelected{ID: 3})
	s = ui.Reduce(s, ui.RequestDelete{Mode: ui.DeleteSingle, ID: 2})
	assert.Equal(t, int64(2), s.DeleteTarget)

	s = ui.Reduce(s, ui.DeleteSucceeded{})
	assert.Equal(t, []int64{3}, s.Selected)
	assert.Equal(t, ui.DeleteNone, s.DeleteMode)
}

func TestReduce_OpenFormCopiesRecord(t *testing.T) {
	e := sampleEmployees()[0]
	s := ui.Reduce(loaded(), ui.OpenForm{Employee: &e})
	require.NotNil(t, s.Editing)
	e.Name = "changed"
	assert.Equal(t, "Asha Nair", s.Editing.Name)

	s = ui.Reduce(s, ui.SubmitSucceeded{})
	assert.Nil(t, s.Editing)
	assert.Equal(t, ui.DialogNone, s.Dialog)
}

func TestReduce_ChartType(t *testing.T) {
	s := ui.Reduce(loaded(), ui.SetChartType{Type: ui.ChartLine})
	assert.Equal(t, ui.ChartLine, s.ChartType)

	s = ui.Reduce(s, ui.SetChartType{Type: "radar"})
	assert.Equal(t, ui.ChartLine, s.ChartType)
}

func TestReduce_ErrorLifecycle(t *testing.T) {
	s := ui.Reduce(loaded(), ui.RequestFailed{Err: errors.New("boom")})
	assert.Equal(t, "boom", s.Err)

	s = ui.Reduce(s, ui.EmployeesFetched{Employees: sampleEmployees()})
	assert.Empty(t, s.Err)
}

func TestReduce_FetchPrunesVanishedSelection(t *testing.T) {
	s := ui.Reduce(ui.Reduce(loaded(), ui.ToggleSelected{ID: 1}), ui.ToggleSelected{ID: 2})
	s = ui.Reduce(s, ui.EmployeesFetched{Employees: sampleEmployees()[1:]})
	assert.Equal(t, []int64{2}, s.Selected)
}

func TestStore_NotifiesSubscribers(t *testing.T) {
	store := ui.NewStore(ui.InitialState())
	var seen []ui.Dialog
	store.Subscribe(func(s ui.State) { seen = append(seen, s.Dialog) })

	store.Dispatch(ui.OpenChart{})
	store.Dispatch(ui.CloseDialog{})

	assert.Equal(t, []ui.Dialog{ui.DialogChart, ui.DialogNone}, seen)
	assert.Equal(t, ui.DialogNone, store.State().Dialog)
}
