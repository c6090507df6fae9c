package employee

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"employee-service/internal/metrics"

	"github.com/uptrace/bun"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Employee, error)
	GetAll(ctx context.Context) ([]Employee, error)
	GetFiltered(ctx context.Context, filter Filter) ([]Employee, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Add(ctx context.Context, employee *Employee) (*Employee, error)
	Update(ctx context.Context, employee *Employee) error
	DeleteByID(ctx context.Context, id int64) error
	DeleteByIDs(ctx context.Context, ids []int64) error
	GetAllStates(ctx context.Context) ([]State, error)
}

type repository struct {
	db      *bun.DB
	metrics *metrics.Metrics
}

func NewRepository(db *bun.DB, m *metrics.Metrics) Repository {
	return &repository{
		db:      db,
		metrics: m,
	}
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Employee, error) {
	start := time.Now()
	employee := new(Employee)
	err := r.db.NewSelect().Model(employee).Where("id = ?", id).Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "employees", time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Employee, error) {
	start := time.Now()
	employees := []Employee{}
	err := r.db.NewSelect().Model(&employees).Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "employees", time.Since(start), err)

	return employees, err
}

func (r *repository) GetFiltered(ctx context.Context, filter Filter) ([]Employee, error) {
	searchCol, err := searchColumnSQL(filter.SearchColumn)
	if err != nil {
		return nil, err
	}

	sortCol := ""
	if filter.SortColumn != "" {
		if sortCol, err = sortColumnSQL(filter.SortColumn); err != nil {
			return nil, err
		}
	}

	if p := filter.Paging; p != nil {
		if p.Page < 1 || p.PageSize < 1 {
			return nil, ErrInvalidInput
		}
		if sortCol == "" {
			sortCol = "id"
		}
	}

	employees := []Employee{}
	q := r.db.NewSelect().Model(&employees)

	if filter.SearchValue != "" {
		q = q.Where("? ILIKE ?", bun.Ident(searchCol), "%"+escapeLike(filter.SearchValue)+"%")
	}

	if sortCol != "" {
		dir := " ASC"
		if filter.Descending {
			dir = " DESC"
		}
		q = q.OrderExpr("?"+dir, bun.Ident(sortCol))
		if sortCol != "id" {
			q = q.OrderExpr("id ASC")
		}
	}

	if p := filter.Paging; p != nil {
		q = q.Offset(p.Offset()).Limit(p.PageSize)
	}

	start := time.Now()
	err = q.Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "employees", time.Since(start), err)

	return employees, err
}

func (r *repository) ExistsByName(ctx context.Context, name string) (bool, error) {
	start := time.Now()
	exists, err := r.db.NewSelect().
		Model((*Employee)(nil)).
		Where("name = ?", name).
		Exists(ctx)

	r.metrics.Database.RecordQuery(ctx, "exists", "employees", time.Since(start), err)

	return exists, err
}

func (r *repository) Add(ctx context.Context, employee *Employee) (*Employee, error) {
	employee.ID = 0

	start := time.Now()
	_, err := r.db.NewInsert().Model(employee).Returning("*").Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "insert", "employees", time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return employee, nil
}

func (r *repository) Update(ctx context.Context, employee *Employee) error {
	start := time.Now()
	result, err := r.db.NewUpdate().Model(employee).WherePK().Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "update", "employees", time.Since(start), err)

	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// DeleteByID is a no-op when the row does not exist.
func (r *repository) DeleteByID(ctx context.Context, id int64) error {
	start := time.Now()
	_, err := r.db.NewDelete().Model((*Employee)(nil)).Where("id = ?", id).Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "delete", "employees", time.Since(start), err)

	return err
}

func (r *repository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	start := time.Now()
	_, err := r.db.NewDelete().Model((*Employee)(nil)).Where("id IN (?)", bun.In(ids)).Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "delete", "employees", time.Since(start), err)

	return err
}

func (r *repository) GetAllStates(ctx context.Context) ([]State, error) {
	start := time.Now()
	states := []State{}
	err := r.db.NewSelect().Model(&states).Order("id").Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "states", time.Since(start), err)

	return states, err
}
