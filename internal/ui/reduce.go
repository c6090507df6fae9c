package ui

import (
	"slices"

	"employee-service/internal/employee"
)

// Reduce returns the state that follows s after a. Unknown actions leave s
// unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Loaded:
		s.Employees = slices.Clone(a.Employees)
		s.States = make([]string, 0, len(a.States))
		for _, st := range a.States {
			s.States = append(s.States, st.StateName)
		}
		s.Err = ""
		s.Page = 0

	case EmployeesFetched:
		s.Employees = slices.Clone(a.Employees)
		s.Selected = pruneSelection(s.Selected, a.Employees)
		s.Err = ""
		s = clampPage(s)

	case SearchChanged:
		s.Search = a.Text
		s.Page = 0

	case OpenForm:
		s.Dialog = DialogForm
		s.Editing = nil
		if a.Employee != nil {
			e := *a.Employee
			s.Editing = &e
		}

	case SubmitSucceeded:
		s.Dialog = DialogNone
		s.Editing = nil

	case CloseDialog:
		s.Dialog = DialogNone
		s.Editing = nil
		s.DeleteMode = DeleteNone
		s.DeleteTarget = 0

	case ToggleSelected:
		if s.IsSelected(a.ID) {
			s.Selected = slices.DeleteFunc(slices.Clone(s.Selected), func(id int64) bool { return id == a.ID })
		} else {
			s.Selected = append(slices.Clone(s.Selected), a.ID)
		}

	case RequestDelete:
		if a.Mode == DeleteMulti && len(s.Selected) == 0 {
			return s
		}
		s.Dialog = DialogConfirmDelete
		s.DeleteMode = a.Mode
		s.DeleteTarget = 0
		if a.Mode == DeleteSingle {
			s.DeleteTarget = a.ID
		}

	case DeleteSucceeded:
		if s.DeleteMode == DeleteMulti {
			s.Selected = nil
		}
		s.Dialog = DialogNone
		s.DeleteMode = DeleteNone
		s.DeleteTarget = 0

	case OpenChart:
		s.Dialog = DialogChart

	case SetChartType:
		switch a.Type {
		case ChartPie, ChartBar, ChartLine:
			s.ChartType = a.Type
		}

	case OpenReport:
		s.Dialog = DialogReport

	case SetPage:
		s.Page = a.Page
		s = clampPage(s)

	case SetPageSize:
		if slices.Contains(PageSizes, a.Size) {
			s.PageSize = a.Size
			s.Page = 0
		}

	case RequestFailed:
		if a.Err != nil {
			s.Err = a.Err.Error()
		}
	}
	return s
}

func clampPage(s State) State {
	if s.Page < 0 {
		s.Page = 0
	}
	if last := s.PageCount() - 1; s.Page > last {
		s.Page = last
	}
	return s
}

// pruneSelection drops selected ids that no longer exist.
func pruneSelection(selected []int64, employees []employee.Employee) []int64 {
	if len(selected) == 0 {
		return selected
	}
	out := make([]int64, 0, len(selected))
	for _, id := range selected {
		if slices.ContainsFunc(employees, func(e employee.Employee) bool { return e.ID == id }) {
			out = append(out, id)
		}
	}
	return out
}
