package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"employee-service/internal/client"
	"employee-service/internal/employee"
	"employee-service/internal/ui"

	"github.com/spf13/cobra"
)

func (cl *commandline) list(cmd *cobra.Command) {
	ccmd := &cobra.Command{
		Use:     "list",
		Short:   "List employees, optionally filtered by name",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cl.controller()
			if err := c.Load(cmd.Context()); err != nil {
				return err
			}
			store := c.Store()

			search, _ := cmd.Flags().GetString("search")
			page, _ := cmd.Flags().GetInt("page")
			size, _ := cmd.Flags().GetInt("page-size")
			store.Dispatch(ui.SearchChanged{Text: search})
			store.Dispatch(ui.SetPageSize{Size: size})
			s := store.Dispatch(ui.SetPage{Page: page - 1})
			if s.PageSize != size {
				return fmt.Errorf("page size must be one of %v", ui.PageSizes)
			}

			total := s.TotalSalary()
			printEmployees(cmd.OutOrStdout(), s.PageRows(), &total)
			fmt.Fprintf(cmd.OutOrStdout(), "Page %d of %d (%d employees)\n", s.Page+1, s.PageCount(), len(s.Visible()))
			return nil
		},
	}
	ccmd.Flags().StringP("search", "s", "", "case-insensitive name filter")
	ccmd.Flags().Int("page", 1, "page to show, starting at 1")
	ccmd.Flags().Int("page-size", ui.PageSizes[0], "rows per page (5, 10 or 20)")
	cmd.AddCommand(ccmd)
}

func (cl *commandline) search(cmd *cobra.Command) {
	ccmd := &cobra.Command{
		Use:   "search <value>",
		Short: "Search employees on the server by one column",
		Long: fmt.Sprintf(`Search employees on the server by one column.

Search columns: %s
Sort columns:   %s`, strings.Join(employee.SearchColumns(), ", "), strings.Join(employee.SortColumns(), ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter employee.Filter
			if len(args) == 1 {
				filter.SearchValue = args[0]
			}
			filter.SearchColumn, _ = cmd.Flags().GetString("column")
			filter.SortColumn, _ = cmd.Flags().GetString("sort")
			filter.Descending, _ = cmd.Flags().GetBool("desc")
			if cmd.Flags().Changed("page") || cmd.Flags().Changed("page-size") {
				page, _ := cmd.Flags().GetInt("page")
				size, _ := cmd.Flags().GetInt("page-size")
				filter.Paging = &employee.Paging{Page: page, PageSize: size}
			}

			employees, err := cl.api.Search(cmd.Context(), filter)
			if err != nil {
				return err
			}
			printEmployees(cmd.OutOrStdout(), employees, nil)
			return nil
		},
	}
	ccmd.Flags().String("column", "Name", "column to search")
	ccmd.Flags().String("sort", "", "column to sort by")
	ccmd.Flags().Bool("desc", false, "sort descending")
	ccmd.Flags().Int("page", 1, "page number, starting at 1")
	ccmd.Flags().Int("page-size", 5, "rows per page")
	cmd.AddCommand(ccmd)
}

func (cl *commandline) get(cmd *cobra.Command) {
	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			e, err := cl.api.GetEmployee(cmd.Context(), id)
			if errors.Is(err, client.ErrNotFound) {
				return fmt.Errorf("employee %d not found", id)
			}
			if err != nil {
				return err
			}
			printEmployees(cmd.OutOrStdout(), []employee.Employee{*e}, nil)
			fmt.Fprintf(cmd.OutOrStdout(), "Age: %d\n", ui.Age(e.DateOfBirth, cl.now()))
			return nil
		},
	})
}

func (cl *commandline) add(cmd *cobra.Command) {
	ccmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cl.submit(cmd, nil, "Employee added.")
		},
	}
	formFlags(ccmd)
	cmd.AddCommand(ccmd)
}

func (cl *commandline) update(cmd *cobra.Command) {
	ccmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an existing employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			e, err := cl.api.GetEmployee(cmd.Context(), id)
			if errors.Is(err, client.ErrNotFound) {
				return fmt.Errorf("employee %d not found", id)
			}
			if err != nil {
				return err
			}
			return cl.submit(cmd, e, "Employee updated.")
		},
	}
	formFlags(ccmd)
	cmd.AddCommand(ccmd)
}

// submit opens the form on e (nil for a new record), overlays the flags and
// sends it.
func (cl *commandline) submit(cmd *cobra.Command, e *employee.Employee, done string) error {
	c := cl.controller()
	s := c.Store().Dispatch(ui.OpenForm{Employee: e})
	f := ui.NewForm(s.Editing)
	applyFormFlags(cmd, &f)

	errs, err := c.Submit(cmd.Context(), f)
	if len(errs) > 0 {
		keys := make([]string, 0, len(errs))
		for k := range errs {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", k, errs[k])
		}
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), done)
	return nil
}

var formFields = []struct {
	flag, usage string
	set         func(*ui.Form, string)
}{
	{"name", "full name", func(f *ui.Form, v string) { f.Name = v }},
	{"designation", "job title", func(f *ui.Form, v string) { f.Designation = v }},
	{"joined", "date of join (YYYY-MM-DD)", func(f *ui.Form, v string) { f.DateOfJoin = v }},
	{"salary", "salary", func(f *ui.Form, v string) { f.Salary = v }},
	{"gender", "gender", func(f *ui.Form, v string) { f.Gender = v }},
	{"state", "state name", func(f *ui.Form, v string) { f.State = v }},
	{"born", "date of birth (YYYY-MM-DD)", func(f *ui.Form, v string) { f.DateOfBirth = v }},
}

func formFlags(cmd *cobra.Command) {
	for _, ff := range formFields {
		cmd.Flags().String(ff.flag, "", ff.usage)
	}
}

// applyFormFlags overlays only the flags the user passed.
func applyFormFlags(cmd *cobra.Command, f *ui.Form) {
	for _, ff := range formFields {
		if cmd.Flags().Changed(ff.flag) {
			v, _ := cmd.Flags().GetString(ff.flag)
			ff.set(f, v)
		}
	}
}

func (cl *commandline) delete(cmd *cobra.Command) {
	ccmd := &cobra.Command{
		Use:     "delete <id>...",
		Short:   "Delete one or more employees",
		Aliases: []string{"rm"},
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, a := range args {
				id, err := parseID(a)
				if err != nil {
					return err
				}
				if !slices.Contains(ids, id) {
					ids = append(ids, id)
				}
			}

			c := cl.controller()
			if err := c.Load(cmd.Context()); err != nil {
				return err
			}
			store := c.Store()
			if len(ids) == 1 {
				store.Dispatch(ui.RequestDelete{Mode: ui.DeleteSingle, ID: ids[0]})
			} else {
				for _, id := range ids {
					store.Dispatch(ui.ToggleSelected{ID: id})
				}
				store.Dispatch(ui.RequestDelete{Mode: ui.DeleteMulti})
			}

			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				prompt := "Are you sure you want to delete this employee?"
				if len(ids) > 1 {
					prompt = fmt.Sprintf("Are you sure you want to delete %d employees?", len(ids))
				}
				if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt) {
					store.Dispatch(ui.CloseDialog{})
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := c.ConfirmDelete(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted. %d employees remain.\n", len(store.State().Employees))
			return nil
		},
	}
	ccmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
	cmd.AddCommand(ccmd)
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N] ", prompt)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func (cl *commandline) states(cmd *cobra.Command) {
	cmd.AddCommand(&cobra.Command{
		Use:   "states",
		Short: "List the states an employee can belong to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			states, err := cl.api.GetAllStates(cmd.Context())
			if err != nil {
				return err
			}
			printStates(cmd.OutOrStdout(), states)
			return nil
		},
	})
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid employee id %q", s)
	}
	return id, nil
}
