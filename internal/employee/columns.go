package employee

import (
	"fmt"
	"strings"
)

type column struct {
	name   string // as exposed to API callers
	sql    string
	isText bool
}

// columns enumerates every Employee attribute that can be searched or
// sorted on. Lookups never reflect over the struct.
var columns = []column{
	{name: "Id", sql: "id"},
	{name: "Name", sql: "name", isText: true},
	{name: "Designation", sql: "designation", isText: true},
	{name: "DateOfJoin", sql: "date_of_join"},
	{name: "Salary", sql: "salary"},
	{name: "Gender", sql: "gender", isText: true},
	{name: "State", sql: "state", isText: true},
	{name: "DateOfBirth", sql: "date_of_birth"},
}

func lookupColumn(name string) (column, bool) {
	for _, c := range columns {
		if strings.EqualFold(c.name, name) {
			return c, true
		}
	}
	return column{}, false
}

// searchColumnSQL resolves a searchable (text) column. Empty means Name.
func searchColumnSQL(name string) (string, error) {
	if name == "" {
		name = "Name"
	}
	c, ok := lookupColumn(name)
	if !ok || !c.isText {
		return "", fmt.Errorf("%w: %q is not a searchable column", ErrInvalidColumn, name)
	}
	return c.sql, nil
}

func sortColumnSQL(name string) (string, error) {
	c, ok := lookupColumn(name)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a sortable column", ErrInvalidColumn, name)
	}
	return c.sql, nil
}

// SearchColumns lists the columns accepted as a search column.
func SearchColumns() []string {
	var names []string
	for _, c := range columns {
		if c.isText {
			names = append(names, c.name)
		}
	}
	return names
}

// SortColumns lists the columns accepted as a sort column.
func SortColumns() []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.name
	}
	return names
}

// escapeLike makes s match literally inside a LIKE pattern. Postgres uses
// backslash as the default LIKE escape character.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
