package ui_test

import (
	"context"
	"testing"

	"employee-service/internal/logger"
	"employee-service/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) (*ui.Controller, *fakeAPI) {
	t.Helper()
	api := newFakeAPI()
	c := ui.NewController(api, ui.NewStore(ui.InitialState()), logger.Discard(), fixedNow)
	require.NoError(t, c.Load(context.Background()))
	return c, api
}

func TestController_Load(t *testing.T) {
	c, api := newTestController(t)

	s := c.Store().State()
	assert.Len(t, s.Employees, 3)
	assert.Equal(t, []string{"Andhra Pradesh", "Kerala"}, s.States)
	assert.Equal(t, []string{"GetAllEmployees", "GetAllStates"}, api.Calls())
}

func TestController_LoadFailureIsRecorded(t *testing.T) {
	api := newFakeAPI()
	api.err = errNetwork
	c := ui.NewController(api, ui.NewStore(ui.InitialState()), logger.Discard(), fixedNow)

	err := c.Load(context.Background())
	require.ErrorIs(t, err, errNetwork)
	assert.Contains(t, c.Store().State().Err, "connection refused")
	assert.Empty(t, c.Store().State().Employees)
}

func TestController_SubmitAddRefetches(t *testing.T) {
	c, api := newTestController(t)
	c.Store().Dispatch(ui.OpenForm{})

	errs, err := c.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.Nil(t, errs)

	s := c.Store().State()
	assert.Len(t, s.Employees, 4)
	assert.Equal(t, ui.DialogNone, s.Dialog)
	assert.Equal(t, []string{"GetAllEmployees", "GetAllStates", "AddEmployee", "GetAllEmployees"}, api.Calls())
}

func TestController_SubmitUpdate(t *testing.T) {
	c, api := newTestController(t)
	e := sampleEmployees()[1]
	c.Store().Dispatch(ui.OpenForm{Employee: &e})

	f := ui.NewForm(&e)
	f.Designation = "Lead"
	_, err := c.Submit(context.Background(), f)
	require.NoError(t, err)

	assert.Contains(t, api.Calls(), "UpdateEmployee")
	assert.Equal(t, "Lead", c.Store().State().Employees[1].Designation)
}

func TestController_SubmitInvalidSkipsAPI(t *testing.T) {
	c, api := newTestController(t)
	f := validForm()
	f.Salary = "0"

	errs, err := c.Submit(context.Background(), f)
	assert.ErrorIs(t, err, ui.ErrFormInvalid)
	assert.Equal(t, "Salary must be a positive number.", errs[ui.FieldSalary])
	assert.Len(t, api.Calls(), 2)
}

func TestController_ConfirmMultiDelete(t *testing.T) {
	c, api := newTestController(t)
	store := c.Store()
	store.Dispatch(ui.ToggleSelected{ID: 1})
	store.Dispatch(ui.ToggleSelected{ID: 3})
	store.Dispatch(ui.RequestDelete{Mode: ui.DeleteMulti})

	require.NoError(t, c.ConfirmDelete(context.Background()))

	s := store.State()
	assert.Empty(t, s.Selected)
	assert.Equal(t, ui.DialogNone, s.Dialog)
	require.Len(t, s.Employees, 1)
	assert.Equal(t, int64(2), s.Employees[0].ID)
	assert.Equal(t, "GetAllEmployees", api.Calls()[len(api.Calls())-1])
}

func TestController_ConfirmSingleDelete(t *testing.T) {
	c, api := newTestController(t)
	c.Store().Dispatch(ui.RequestDelete{Mode: ui.DeleteSingle, ID: 2})

	require.NoError(t, c.ConfirmDelete(context.Background()))

	assert.Len(t, c.Store().State().Employees, 2)
	assert.Contains(t, api.Calls(), "DeleteEmployee")
}

func TestController_ConfirmDeleteWithoutDialogIsNoop(t *testing.T) {
	c, api := newTestController(t)

	require.NoError(t, c.ConfirmDelete(context.Background()))
	assert.Len(t, api.Calls(), 2)
}

func TestController_DeleteFailureIsRecorded(t *testing.T) {
	c, api := newTestController(t)
	c.Store().Dispatch(ui.RequestDelete{Mode: ui.DeleteSingle, ID: 2})
	api.err = errNetwork

	err := c.ConfirmDelete(context.Background())
	require.ErrorIs(t, err, errNetwork)

	s := c.Store().State()
	assert.Contains(t, s.Err, "failed to delete employees")
	assert.Equal(t, ui.DialogNone, s.Dialog)
	assert.Len(t, s.Employees, 3)
}
