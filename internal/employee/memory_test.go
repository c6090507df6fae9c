package employee_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"employee-service/internal/employee"
)

// memoryRepository is an in-memory Repository for service and handler
// tests. Setting err makes every call fail like an unreachable store.
type memoryRepository struct {
	mu      sync.Mutex
	nextID  int64
	rows    []employee.Employee
	states  []employee.State
	err     error
	adds    int
	updates int
	deletes int
}

func newMemoryRepository(seed ...employee.Employee) *memoryRepository {
	repo := &memoryRepository{
		states: []employee.State{
			{ID: 1, StateCode: "KA", StateName: "Karnataka"},
			{ID: 2, StateCode: "KL", StateName: "Kerala"},
		},
	}
	for _, e := range seed {
		repo.nextID++
		if e.ID == 0 {
			e.ID = repo.nextID
		} else if e.ID > repo.nextID {
			repo.nextID = e.ID
		}
		repo.rows = append(repo.rows, e)
	}
	return repo
}

func (m *memoryRepository) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, e := range m.rows {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}

func (m *memoryRepository) GetAll(ctx context.Context) ([]employee.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]employee.Employee{}, m.rows...), nil
}

func (m *memoryRepository) GetFiltered(ctx context.Context, f employee.Filter) ([]employee.Employee, error) {
	searchCol := f.SearchColumn
	if searchCol == "" {
		searchCol = "Name"
	}
	if !containsFold(employee.SearchColumns(), searchCol) {
		return nil, employee.ErrInvalidColumn
	}
	if f.SortColumn != "" && !containsFold(employee.SortColumns(), f.SortColumn) {
		return nil, employee.ErrInvalidColumn
	}
	if f.Paging != nil && (f.Paging.Page < 1 || f.Paging.PageSize < 1) {
		return nil, employee.ErrInvalidInput
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	out := []employee.Employee{}
	for _, e := range m.rows {
		if strings.Contains(strings.ToLower(textValue(e, searchCol)), strings.ToLower(f.SearchValue)) {
			out = append(out, e)
		}
	}
	if f.Paging != nil {
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
		start := min(f.Paging.Offset(), len(out))
		end := min(start+f.Paging.PageSize, len(out))
		out = out[start:end]
	}
	return out, nil
}

func (m *memoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	for _, e := range m.rows {
		if e.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepository) Add(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.adds++
	m.nextID++
	e.ID = m.nextID
	m.rows = append(m.rows, *e)
	return e, nil
}

func (m *memoryRepository) Update(ctx context.Context, e *employee.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for i := range m.rows {
		if m.rows[i].ID == e.ID {
			m.updates++
			m.rows[i] = *e
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (m *memoryRepository) DeleteByID(ctx context.Context, id int64) error {
	return m.DeleteByIDs(ctx, []int64{id})
}

func (m *memoryRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.deletes++
	kept := m.rows[:0]
	for _, e := range m.rows {
		if !containsID(ids, e.ID) {
			kept = append(kept, e)
		}
	}
	m.rows = kept
	return nil
}

func (m *memoryRepository) GetAllStates(ctx context.Context) ([]employee.State, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.states, nil
}

func (m *memoryRepository) mutations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.adds + m.updates + m.deletes
}

func textValue(e employee.Employee, col string) string {
	switch strings.ToLower(col) {
	case "designation":
		return e.Designation
	case "gender":
		return e.Gender
	case "state":
		return e.State
	default:
		return e.Name
	}
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

var errStoreDown = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

type recordingPublisher struct {
	mu     sync.Mutex
	events []employee.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event employee.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
