package employee

import (
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

func init() {
	// Salary goes over the wire as a JSON number, not a quoted string.
	decimal.MarshalJSONWithoutQuotes = true
}

type Employee struct {
	bun.BaseModel `bun:"table:employees,alias:e"`

	ID          int64           `bun:"id,pk,autoincrement" json:"id"`
	Name        string          `bun:"name,notnull" json:"name" validate:"required,max=100"`
	Designation string          `bun:"designation,notnull" json:"designation" validate:"required,max=100"`
	DateOfJoin  Date            `bun:"date_of_join,type:date,notnull" json:"dateOfJoin"`
	Salary      decimal.Decimal `bun:"salary,type:numeric(18,2),notnull" json:"salary"`
	Gender      string          `bun:"gender,notnull" json:"gender" validate:"required"`
	State       string          `bun:"state,notnull" json:"state" validate:"required"`
	DateOfBirth Date            `bun:"date_of_birth,type:date,notnull" json:"dateOfBirth"`
}

// Salary is stored as NUMERIC(18,2).
const SalaryScale = 2

// SalaryLimit is the smallest value the salary column cannot hold.
var SalaryLimit = decimal.New(1, 18-SalaryScale)

// SalaryFits reports whether s can be stored without rounding or overflow.
func SalaryFits(s decimal.Decimal) (scaleOK, rangeOK bool) {
	return s.Equal(s.Truncate(SalaryScale)), s.Abs().LessThan(SalaryLimit)
}

type State struct {
	bun.BaseModel `bun:"table:states,alias:s"`

	ID        int64  `bun:"id,pk,autoincrement" json:"id"`
	StateCode string `bun:"state_code,notnull" json:"stateCode"`
	StateName string `bun:"state_name,notnull" json:"stateName"`
}

// Filter drives GetFiltered. SearchColumn defaults to Name. Sorting is only
// applied when SortColumn is set or Paging is supplied; without a
// SortColumn paged results are ordered by id.
type Filter struct {
	SearchValue  string
	SearchColumn string
	SortColumn   string
	Descending   bool
	Paging       *Paging
}

type Paging struct {
	Page     int
	PageSize int
}

func (p Paging) Offset() int { return (p.Page - 1) * p.PageSize }
