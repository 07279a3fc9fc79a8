package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"retail-api/client"
	"retail-api/dtos"
	"retail-api/testutil"
)

func newSession(t *testing.T) (*client.Client, *client.DataStore, dtos.StoreResponse) {
	t.Helper()

	db := testutil.NewDB(t)
	srv := httptest.NewServer(testutil.NewRouter(t, db))
	t.Cleanup(srv.Close)

	api := client.New(srv.URL+"/api", srv.Client())
	ctx := context.Background()
	if _, err := api.Register(ctx, dtos.RegisterInput{Name: "Owner", Email: "o@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	auth, err := api.Login(ctx, "o@x.com", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	store := client.NewDataStore(api)
	if err := store.SetToken(ctx, auth.Token); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	created, err := store.AddStore(ctx, dtos.StoreInput{Name: "Main", Address: "1 Main St"})
	if err != nil {
		t.Fatalf("AddStore: %v", err)
	}
	return api, store, *created
}

func TestMutationsPatchCache(t *testing.T) {
	_, ds, shop := newSession(t)
	ctx := context.Background()

	var mu sync.Mutex
	var notified []client.Snapshot
	unsubscribe := ds.Subscribe(func(s client.Snapshot) {
		mu.Lock()
		notified = append(notified, s)
		mu.Unlock()
	})

	amount := 100.0
	sale, err := ds.AddSale(ctx, dtos.SaleInput{Customer: "Bob", Store: dtos.FlexibleID(shop.ID), Amount: &amount, Advance: 20})
	if err != nil {
		t.Fatalf("AddSale: %v", err)
	}
	snap := ds.Snapshot()
	if len(snap.Sales) != 1 || snap.Sales[0].Balance != 80 || snap.Sales[0].BillID != sale.BillID {
		t.Fatalf("cached sales = %+v", snap.Sales)
	}

	product, err := ds.AddProduct(ctx, dtos.ProductInput{Name: "Cap", Code: "CAP", Stock: 9, StoreID: dtos.FlexibleID(shop.ID)})
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if _, err := ds.UpdateStock(ctx, product.ID, 2); err != nil {
		t.Fatalf("UpdateStock: %v", err)
	}
	if snap := ds.Snapshot(); len(snap.Products) != 1 || snap.Products[0].Stock != 2 {
		t.Fatalf("cached products = %+v", snap.Products)
	}

	if err := ds.DeleteSale(ctx, sale.ID); err != nil {
		t.Fatalf("DeleteSale: %v", err)
	}
	if snap := ds.Snapshot(); len(snap.Sales) != 0 {
		t.Fatalf("sale still cached: %+v", snap.Sales)
	}

	unsubscribe()
	if _, err := ds.AddExpense(ctx, dtos.ExpenseInput{Name: "Tea", Amount: 3}); err != nil {
		t.Fatalf("AddExpense: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(notified) != 4 {
		t.Fatalf("notifications = %d, want 4 before unsubscribe", len(notified))
	}
}

func TestFailedMutationLeavesCache(t *testing.T) {
	_, ds, shop := newSession(t)
	ctx := context.Background()

	if _, err := ds.AddProduct(ctx, dtos.ProductInput{Name: "Cap", Code: "CAP", StoreID: dtos.FlexibleID(shop.ID)}); err != nil {
		t.Fatal(err)
	}
	before := ds.Snapshot()

	_, err := ds.AddProduct(ctx, dtos.ProductInput{Name: "Cap 2", Code: "CAP", StoreID: dtos.FlexibleID(shop.ID)})
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest || apiErr.Message != "Product code already exists" {
		t.Fatalf("duplicate product = %v", err)
	}

	after := ds.Snapshot()
	if len(after.Products) != len(before.Products) || after.Products[0].Name != "Cap" {
		t.Fatalf("cache changed after failed mutation: %+v", after.Products)
	}
}

func TestDeleteStoreDropsDependents(t *testing.T) {
	_, ds, shop := newSession(t)
	ctx := context.Background()

	if _, err := ds.AddProduct(ctx, dtos.ProductInput{Name: "Cap", Code: "CAP", StoreID: dtos.FlexibleID(shop.ID)}); err != nil {
		t.Fatal(err)
	}
	emp, err := ds.AddEmployee(ctx, dtos.EmployeeInput{Name: "E", Email: "e@x.com", StoreID: dtos.FlexibleID(shop.ID)})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ds.AddPayroll(ctx, dtos.PayrollInput{EmployeeID: dtos.FlexibleID(emp.ID), Month: 1, Year: 2024}); err != nil {
		t.Fatal(err)
	}

	if err := ds.DeleteStore(ctx, shop.ID); err != nil {
		t.Fatalf("DeleteStore: %v", err)
	}
	snap := ds.Snapshot()
	if len(snap.Stores)+len(snap.Products)+len(snap.Employees)+len(snap.Payrolls) != 0 {
		t.Fatalf("cache after store delete = %+v", snap)
	}

	if err := ds.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if snap := ds.Snapshot(); len(snap.Products)+len(snap.Employees)+len(snap.Payrolls) != 0 {
		t.Fatalf("server still has dependents: %+v", snap)
	}
}

// flakyAPI fails the expense listing to exercise degraded refreshes.
type flakyAPI struct {
	*client.Client
}

func (flakyAPI) Expenses(context.Context) ([]dtos.ExpenseResponse, error) {
	return nil, &client.APIError{Status: http.StatusInternalServerError, Message: "Internal server error"}
}

func TestRefreshDegradesFailedCollection(t *testing.T) {
	api, ds, shop := newSession(t)
	ctx := context.Background()

	if _, err := ds.AddExpense(ctx, dtos.ExpenseInput{Name: "Tea", Amount: 3}); err != nil {
		t.Fatal(err)
	}

	flaky := client.NewDataStore(flakyAPI{api})
	err := flaky.SetToken(ctx, api.Token())
	if err == nil {
		t.Fatal("refresh should report the failing collection")
	}
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusInternalServerError {
		t.Fatalf("refresh error = %v", err)
	}

	snap := flaky.Snapshot()
	if len(snap.Expenses) != 0 {
		t.Fatalf("failed collection should be empty, got %+v", snap.Expenses)
	}
	if len(snap.Stores) != 1 || snap.Stores[0].ID != shop.ID {
		t.Fatalf("healthy collections should still load: %+v", snap.Stores)
	}
}

func TestClearTokenEmptiesCache(t *testing.T) {
	_, ds, _ := newSession(t)
	ctx := context.Background()

	if len(ds.Snapshot().Stores) != 1 {
		t.Fatal("expected a cached store")
	}
	if err := ds.SetToken(ctx, ""); err != nil {
		t.Fatalf("SetToken empty: %v", err)
	}
	if snap := ds.Snapshot(); len(snap.Stores) != 0 {
		t.Fatalf("cache not cleared: %+v", snap)
	}
}

// slowStoresAPI holds the store listing until release is closed.
type slowStoresAPI struct {
	*client.Client
	once    sync.Once
	started chan struct{}
	release chan struct{}
}

func (a *slowStoresAPI) Stores(ctx context.Context) ([]dtos.StoreResponse, error) {
	a.once.Do(func() { close(a.started) })
	<-a.release
	return a.Client.Stores(ctx)
}

func TestLogoutDuringRefreshKeepsCacheEmpty(t *testing.T) {
	api, _, _ := newSession(t)
	ctx := context.Background()

	slow := &slowStoresAPI{Client: api, started: make(chan struct{}), release: make(chan struct{})}
	ds := client.NewDataStore(slow)

	done := make(chan error, 1)
	go func() { done <- ds.Refresh(ctx) }()
	<-slow.started

	if err := ds.SetToken(ctx, ""); err != nil {
		t.Fatalf("SetToken empty: %v", err)
	}
	close(slow.release)

	if err := <-done; !errors.Is(err, client.ErrSessionChanged) {
		t.Fatalf("Refresh = %v, want ErrSessionChanged", err)
	}
	snap := ds.Snapshot()
	if len(snap.Stores)+len(snap.Products)+len(snap.Sales)+len(snap.Employees)+len(snap.Expenses)+len(snap.Payrolls) != 0 {
		t.Fatalf("cache after logout = %+v", snap)
	}
}
