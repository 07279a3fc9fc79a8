package client

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"retail-api/dtos"

	"golang.org/x/sync/errgroup"
)

// API is the part of Client the DataStore depends on.
type API interface {
	SetToken(token string)

	Stores(ctx context.Context) ([]dtos.StoreResponse, error)
	CreateStore(ctx context.Context, input dtos.StoreInput) (*dtos.StoreResponse, error)
	UpdateStore(ctx context.Context, id uint, input dtos.StoreUpdateInput) (*dtos.StoreResponse, error)
	DeleteStore(ctx context.Context, id uint) error

	Products(ctx context.Context) ([]dtos.ProductResponse, error)
	CreateProduct(ctx context.Context, input dtos.ProductInput) (*dtos.ProductResponse, error)
	UpdateProduct(ctx context.Context, id uint, input dtos.ProductUpdateInput) (*dtos.ProductResponse, error)
	UpdateStock(ctx context.Context, id uint, stock int) (*dtos.ProductResponse, error)
	DeleteProduct(ctx context.Context, id uint) error

	Sales(ctx context.Context) ([]dtos.SaleResponse, error)
	CreateSale(ctx context.Context, input dtos.SaleInput) (*dtos.SaleResponse, error)
	UpdateSale(ctx context.Context, id uint, input dtos.SaleUpdateInput) (*dtos.SaleResponse, error)
	DeleteSale(ctx context.Context, id uint) error

	Employees(ctx context.Context) ([]dtos.EmployeeResponse, error)
	CreateEmployee(ctx context.Context, input dtos.EmployeeInput) (*dtos.EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id uint, input dtos.EmployeeUpdateInput) (*dtos.EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id uint) error

	Expenses(ctx context.Context) ([]dtos.ExpenseResponse, error)
	CreateExpense(ctx context.Context, input dtos.ExpenseInput) (*dtos.ExpenseResponse, error)
	UpdateExpense(ctx context.Context, id uint, input dtos.ExpenseUpdateInput) (*dtos.ExpenseResponse, error)
	DeleteExpense(ctx context.Context, id uint) error

	Payrolls(ctx context.Context) ([]dtos.PayrollResponse, error)
	CreatePayroll(ctx context.Context, input dtos.PayrollInput) (*dtos.PayrollResponse, error)
	UpdatePayroll(ctx context.Context, id uint, input dtos.PayrollUpdateInput) (*dtos.PayrollResponse, error)
	DeletePayroll(ctx context.Context, id uint) error
}

// Snapshot is an immutable view of the cached collections.
type Snapshot struct {
	Stores    []dtos.StoreResponse
	Products  []dtos.ProductResponse
	Sales     []dtos.SaleResponse
	Employees []dtos.EmployeeResponse
	Expenses  []dtos.ExpenseResponse
	Payrolls  []dtos.PayrollResponse
}

func (s Snapshot) clone() Snapshot {
	return Snapshot{
		Stores:    slices.Clone(s.Stores),
		Products:  slices.Clone(s.Products),
		Sales:     slices.Clone(s.Sales),
		Employees: slices.Clone(s.Employees),
		Expenses:  slices.Clone(s.Expenses),
		Payrolls:  slices.Clone(s.Payrolls),
	}
}

// DataStore caches every collection for one session. Mutations go to the
// API first and, only on success, patch the cache in place without a
// refetch. Subscribers get a fresh Snapshot after every change.
type DataStore struct {
	api API

	mu     sync.RWMutex
	snap   Snapshot
	subs   map[int]func(Snapshot)
	nextID int
	// session changes on every SetToken; results fetched under an older
	// session are dropped.
	session uint64
}

// ErrSessionChanged is returned by Refresh when the token changed while it
// was fetching; the fetched data is discarded.
var ErrSessionChanged = errors.New("client: session changed during refresh")

func NewDataStore(api API) *DataStore {
	return &DataStore{api: api, subs: map[int]func(Snapshot){}}
}

func (s *DataStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.clone()
}

// Subscribe registers fn for change notifications and returns the function
// that removes it.
func (s *DataStore) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *DataStore) currentSession() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// apply mutates the cache under the lock, then notifies subscribers outside
// it. Nothing happens when session is no longer current.
func (s *DataStore) apply(session uint64, mutate func(*Snapshot)) bool {
	s.mu.Lock()
	if s.session != session {
		s.mu.Unlock()
		return false
	}
	mutate(&s.snap)
	snap := s.snap.clone()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return true
}

// SetToken starts or ends a session: a token refreshes everything, an empty
// token clears the cache.
func (s *DataStore) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	s.session++
	session := s.session
	s.mu.Unlock()

	s.api.SetToken(token)
	if token == "" {
		s.apply(session, func(snap *Snapshot) { *snap = Snapshot{} })
		return nil
	}
	return s.Refresh(ctx)
}

// Refresh refetches all collections in parallel and replaces the cache. A
// collection whose fetch fails is cached as empty; the failures are joined
// into the returned error. A refresh overtaken by SetToken leaves the cache
// alone and returns ErrSessionChanged.
func (s *DataStore) Refresh(ctx context.Context) error {
	session := s.currentSession()
	var (
		next   Snapshot
		errMu  sync.Mutex
		failed []error
	)
	record := func(name string, err error) {
		errMu.Lock()
		failed = append(failed, fmt.Errorf("refresh %s: %w", name, err))
		errMu.Unlock()
	}

	var g errgroup.Group
	g.Go(func() error {
		list, err := s.api.Stores(ctx)
		if err != nil {
			record("stores", err)
			list = nil
		}
		next.Stores = list
		return nil
	})
	g.Go(func() error {
		list, err := s.api.Products(ctx)
		if err != nil {
			record("products", err)
			list = nil
		}
		next.Products = list
		return nil
	})
	g.Go(func() error {
		list, err := s.api.Sales(ctx)
		if err != nil {
			record("sales", err)
			list = nil
		}
		next.Sales = list
		return nil
	})
	g.Go(func() error {
		list, err := s.api.Employees(ctx)
		if err != nil {
			record("employees", err)
			list = nil
		}
		next.Employees = list
		return nil
	})
	g.Go(func() error {
		list, err := s.api.Expenses(ctx)
		if err != nil {
			record("expenses", err)
			list = nil
		}
		next.Expenses = list
		return nil
	})
	g.Go(func() error {
		list, err := s.api.Payrolls(ctx)
		if err != nil {
			record("payroll", err)
			list = nil
		}
		next.Payrolls = list
		return nil
	})
	_ = g.Wait()

	if !s.apply(session, func(snap *Snapshot) { *snap = next }) {
		return ErrSessionChanged
	}
	return errors.Join(failed...)
}

// upsert replaces the element with item's id or prepends item.
func upsert[T any](list []T, item T, idOf func(T) uint) []T {
	id := idOf(item)
	if i := slices.IndexFunc(list, func(v T) bool { return idOf(v) == id }); i >= 0 {
		list[i] = item
		return list
	}
	return append([]T{item}, list...)
}

func remove[T any](list []T, drop func(T) bool) []T {
	return slices.DeleteFunc(list, drop)
}

func storeID(v dtos.StoreResponse) uint       { return v.ID }
func productID(v dtos.ProductResponse) uint   { return v.ID }
func saleID(v dtos.SaleResponse) uint         { return v.ID }
func employeeID(v dtos.EmployeeResponse) uint { return v.ID }
func expenseID(v dtos.ExpenseResponse) uint   { return v.ID }
func payrollID(v dtos.PayrollResponse) uint   { return v.ID }

// Stores

func (s *DataStore) AddStore(ctx context.Context, input dtos.StoreInput) (*dtos.StoreResponse, error) {
	session := s.currentSession()
	store, err := s.api.CreateStore(ctx, input)
	if err != nil {
		return nil, err
	}
	s.apply(session, func(snap *Snapshot) { snap.Stores = upsert(snap.Stores, *store, storeID) })
	return store, nil
}

func (s *DataStore) UpdateStore(ctx context.Context, id uint, input dtos.StoreUpdateInput) (*dtos.StoreResponse, error) {
	session := s.currentSession()
	store, err := s.api.UpdateStore(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.apply(session, func(snap *Snapshot) { snap.Stores = upsert(snap.Stores, *store, storeID) })
	return store, nil
}

// DeleteStore drops the store and the cached rows the server cascades with it.
func (s *DataStore) DeleteStore(ctx context.Context, id uint) error {
	session := s.currentSession()
	if err := s.api.DeleteStore(ctx, id); err != nil {
		return err
	}
	s.apply(session, func(snap *Snapshot) {
		snap.Stores = remove(snap.Stores, func(v dtos.StoreResponse) bool { return v.ID == id })
		snap.Products = remove(snap.Products, func(v dtos.ProductResponse) bool { return v.StoreID == id })
		snap.Sales = remove(snap.Sales, func(v dtos.SaleResponse) bool { return v.StoreID == id })
		snap.Expenses = remove(snap.Expenses, func(v dtos.ExpenseResponse) bool {
			return v.StoreID != nil && *v.StoreID == id
		})

		gone := map[uint]bool{}
		snap.Employees = remove(snap.Employees, func(v dtos.EmployeeResponse) bool {
			if v.StoreID == id {
				gone[v.ID] = true
				return true
			}
			return false
		})
		snap.Payrolls = remove(snap.Payrolls, func(v dtos.PayrollResponse) bool { return gone[v.EmployeeID] })
	})
	return nil
}

// Products

func (s *DataStore) AddProduct(ctx context.Context, input dtos.ProductInput) (*dtos.ProductResponse, error) {
	session := s.currentSession()
	product, err := s.api.CreateProduct(ctx, input)
	if err != nil {
		return nil, err
	}
	s.apply(session, func(snap *Snapshot) { snap.Products = upsert(snap.Products, *product, productID) })
	return product, nil
}

func (s *DataStore) UpdateProduct(ctx context.Context, id uint, input dtos.ProductUpdateInput) (*dtos.ProductResponse, error) {
	session := s.currentSession()
	product, err := s.api.UpdateProduct(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.apply(session, func(snap *Snapshot) { snap.Products = upsert(snap.Products, *product, productID) })
	return product, nil
}

func (s *DataStore) UpdateStock(ctx context.Context, id uint, stock int) (*dtos.ProductResponse, error) {
	session := s.currentSession()
	product, err := s.api.UpdateStock(ctx, id, stock)
	if err != nil {
		return nil, err
	}
	s.apply(session, func(snap *Snapshot) { snap.Products = upsert(snap.Products, *product, productID) })
	return product, nil
}

func (s *DataStore) DeleteProduct(ctx context.Context, id uint) error {
	session := s.currentSession()
	if err := s.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.apply(session, func(snap *Snapshot) {
		snap.Products = remove(snap.Products, func(v dtos.ProductResponse) bool { return v.ID == id })
	})
	return nil
}

// Sales

func (s *DataStore) AddSale(ctx context.Context, input dtos.SaleInput) (*dtos.SaleResponse, error) {
	session := s.currentSession()
	sale, err := s.api.CreateSale(ctx, input)
	if err != nil {
		return nil, err
	}
	s.apply(session, func(snap *Snapshot) { snap.Sales = upsert(snap.Sales, *sale, saleID) })
	return sale, nil
}

func (s *DataStore) UpdateSale(ctx context.Context, id uint, input dtos.SaleUpdateInput) (*dtos.SaleResponse, error) {
	session := s.currentSession()
	sale, err := s.api.UpdateSale(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.apply(session, func(snap *Snapshot) { snap.Sales = upsert(snap.Sales, *sale, saleID) })
	return sale, nil
}

func (s *DataStore) DeleteSale(ctx context.Context, id uint) error {
	session := s.currentSession()
	if err := s.api.DeleteSale(ctx, id); err != nil {
		return err
	}
	s.apply(session, func(snap *Snapshot) {
		snap.Sales = remove(snap.Sales, func(v dtos.SaleResponse) bool { return v.ID == id })
	})
	return nil
}

// Employees

func (s *DataStore) AddEmployee(ctx context.Context, input dtos.EmployeeInput) (*dtos.EmployeeResponse, error) {
	session := s.currentSession()
	employee, err := s.api.CreateEmployee(ctx, input)
	if err != nil {
		return nil, err
	}
	s.apply(session, func(snap *Snapshot) { snap.Employees = upsert(snap.Employees, *employee, employeeID) })
	return employee, nil
}

func (s *DataStore) UpdateEmployee(ctx context.Context, id uint, input dtos.EmployeeUpdateInput) (*dtos.EmployeeResponse, error) {
	session := s.currentSession()
	employee, err := s.api.UpdateEmployee(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.apply(session, func(snap *Snapshot) { snap.Employees = upsert(snap.Employees, *employee, employeeID) })
	return employee, nil
}

func (s *DataStore) DeleteEmployee(ctx context.Context, id uint) error {
	session := s.currentSession()
	if err := s.api.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	s.apply(session, func(snap *Snapshot) {
		snap.Employees = remove(snap.Employees, func(v dtos.EmployeeResponse) bool { return v.ID == id })
		snap.Payrolls = remove(snap.Payrolls, func(v dtos.PayrollResponse) bool { return v.EmployeeID == id })
	})
	return nil
}

// Expenses

func (s *DataStore) AddExpense(ctx context.Context, input dtos.ExpenseInput) (*dtos.ExpenseResponse, error) {
	session := s.currentSession()
	expense, err := s.api.CreateExpense(ctx, input)
	if err != nil {
		return nil, err
	}
	s.apply(session, func(snap *Snapshot) { snap.Expenses = upsert(snap.Expenses, *expense, expenseID) })
	return expense, nil
}

func (s *DataStore) UpdateExpense(ctx context.Context, id uint, input dtos.ExpenseUpdateInput) (*dtos.ExpenseResponse, error) {
	session := s.currentSession()
	expense, err := s.api.UpdateExpense(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.apply(session, func(snap *Snapshot) { snap.Expenses = upsert(snap.Expenses, *expense, expenseID) })
	return expense, nil
}

func (s *DataStore) DeleteExpense(ctx context.Context, id uint) error {
	session := s.currentSession()
	if err := s.api.DeleteExpense(ctx, id); err != nil {
		return err
	}
	s.apply(session, func(snap *Snapshot) {
		snap.Expenses = remove(snap.Expenses, func(v dtos.ExpenseResponse) bool { return v.ID == id })
	})
	return nil
}

// Payroll

func (s *DataStore) AddPayroll(ctx context.Context, input dtos.PayrollInput) (*dtos.PayrollResponse, error) {
	session := s.currentSession()
	payroll, err := s.api.CreatePayroll(ctx, input)
	if err != nil {
		return nil, err
	}
	s.apply(session, func(snap *Snapshot) { snap.Payrolls = upsert(snap.Payrolls, *payroll, payrollID) })
	return payroll, nil
}

func (s *DataStore) UpdatePayroll(ctx context.Context, id uint, input dtos.PayrollUpdateInput) (*dtos.PayrollResponse, error) {
	session := s.currentSession()
	payroll, err := s.api.UpdatePayroll(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.apply(session, func(snap *Snapshot) { snap.Payrolls = upsert(snap.Payrolls, *payroll, payrollID) })
	return payroll, nil
}

func (s *DataStore) DeletePayroll(ctx context.Context, id uint) error {
	session := s.currentSession()
	if err := s.api.DeletePayroll(ctx, id); err != nil {
		return err
	}
	s.apply(session, func(snap *Snapshot) {
		snap.Payrolls = remove(snap.Payrolls, func(v dtos.PayrollResponse) bool { return v.ID == id })
	})
	return nil
}
