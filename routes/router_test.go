package routes_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"retail-api/dtos"
	"retail-api/routes"
	"retail-api/testutil"

	"github.com/gin-gonic/gin"
)

func TestPing(t *testing.T) {
	r := testutil.NewRouter(t, testutil.NewDB(t))

	rec := testutil.Do(t, r, http.MethodGet, "/api/ping", "", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != `{"ok":true}` {
		t.Fatalf("ping = %d %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterScenario(t *testing.T) {
	r := testutil.NewRouter(t, testutil.NewDB(t))
	body := map[string]string{"name": "Alice", "email": "a@x.com", "password": "secret1"}

	rec := testutil.Do(t, r, http.MethodPost, "/api/auth/register", "", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("register = %d %s", rec.Code, rec.Body.String())
	}
	auth := testutil.Decode[dtos.AuthResponse](t, rec)
	if auth.Token == "" || auth.User.Email != "a@x.com" {
		t.Fatalf("auth = %+v", auth)
	}
	if regexp.MustCompile(`password`).MatchString(rec.Body.String()) {
		t.Fatalf("response leaks password: %s", rec.Body.String())
	}

	rec = testutil.Do(t, r, http.MethodPost, "/api/auth/register", "", body)
	if rec.Code != http.StatusBadRequest || testutil.ErrorMessage(t, rec) != "User already exists" {
		t.Fatalf("second register = %d %s", rec.Code, rec.Body.String())
	}

	rec = testutil.Do(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{"email": "b@x.com"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("register without password = %d", rec.Code)
	}
}

func TestLoginFailuresShareShape(t *testing.T) {
	r := testutil.NewRouter(t, testutil.NewDB(t))
	testutil.Do(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{"email": "a@x.com", "password": "secret1"})

	wrong := testutil.Do(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": "bad"})
	unknown := testutil.Do(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "z@x.com", "password": "secret1"})

	if wrong.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d / %d", wrong.Code, unknown.Code)
	}
	if wrong.Body.String() != unknown.Body.String() {
		t.Fatalf("bodies differ: %s vs %s", wrong.Body.String(), unknown.Body.String())
	}

	ok := testutil.Do(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": "secret1"})
	if ok.Code != http.StatusOK {
		t.Fatalf("login = %d %s", ok.Code, ok.Body.String())
	}
	token := testutil.Decode[dtos.AuthResponse](t, ok).Token

	verify := testutil.Do(t, r, http.MethodGet, "/api/auth/verify", token, nil)
	if verify.Code != http.StatusOK {
		t.Fatalf("verify = %d", verify.Code)
	}
	if v := testutil.Decode[dtos.VerifyResponse](t, verify); !v.Valid || v.User.Email != "a@x.com" {
		t.Fatalf("verify body = %+v", v)
	}

	profile := testutil.Do(t, r, http.MethodGet, "/api/auth/profile", token, nil)
	if profile.Code != http.StatusOK || testutil.Decode[dtos.UserResponse](t, profile).Email != "a@x.com" {
		t.Fatalf("profile = %d %s", profile.Code, profile.Body.String())
	}
}

func TestBearerRequired(t *testing.T) {
	r := testutil.NewRouter(t, testutil.NewDB(t))

	paths := []string{
		"/api/auth/profile", "/api/auth/verify", "/api/inventory", "/api/sales",
		"/api/employees", "/api/expenses", "/api/expenses/stats/summary",
		"/api/payroll", "/api/payroll/stats/summary", "/api/dashboard", "/api/stores/1",
	}
	for _, path := range paths {
		rec := testutil.Do(t, r, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusUnauthorized || testutil.ErrorMessage(t, rec) == "" {
			t.Errorf("GET %s without token = %d %s", path, rec.Code, rec.Body.String())
		}
	}

	if rec := testutil.Do(t, r, http.MethodGet, "/api/stores", "", nil); rec.Code != http.StatusOK {
		t.Errorf("public store list = %d", rec.Code)
	}
	if rec := testutil.Do(t, r, http.MethodGet, "/api/sales", "garbage", nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token = %d", rec.Code)
	}
}

func TestSaleScenario(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)
	_, token := testutil.CreateUser(t, db, "u@x.com")
	store := testutil.CreateStore(t, db, "Main")

	body := fmt.Sprintf(`{"customer":"Bob","store":"%d","amount":100,"items":2,"advance":20}`, store.ID)
	rec := testutil.Do(t, r, http.MethodPost, "/api/sales", token, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create sale = %d %s", rec.Code, rec.Body.String())
	}
	sale := testutil.Decode[dtos.SaleResponse](t, rec)
	if sale.Balance != 80 || !regexp.MustCompile(`^BILL-\d+-[a-z0-9]+$`).MatchString(sale.BillID) {
		t.Fatalf("sale = %+v", sale)
	}

	rec = testutil.Do(t, r, http.MethodGet, fmt.Sprintf("/api/sales/%d", sale.ID), token, nil)
	got := testutil.Decode[dtos.SaleResponse](t, rec)
	if got.Customer != "Bob" || got.Items != 2 || got.Amount != 100 || got.StoreID != store.ID || got.BillID != sale.BillID {
		t.Fatalf("refetched sale = %+v", got)
	}

	rec = testutil.Do(t, r, http.MethodPost, "/api/sales", token, map[string]interface{}{"customer": "Bob"})
	if rec.Code != http.StatusBadRequest || testutil.ErrorMessage(t, rec) != "Missing required fields for sale creation" {
		t.Fatalf("missing fields = %d %s", rec.Code, rec.Body.String())
	}
}

func TestProductEndpoints(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)
	_, token := testutil.CreateUser(t, db, "u@x.com")
	store := testutil.CreateStore(t, db, "Main")

	product := map[string]interface{}{"name": "Cap", "code": "CAP-1", "price": 5, "stock": 3, "store_id": store.ID}
	rec := testutil.Do(t, r, http.MethodPost, "/api/inventory", token, product)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create product = %d %s", rec.Code, rec.Body.String())
	}
	created := testutil.Decode[dtos.ProductResponse](t, rec)

	rec = testutil.Do(t, r, http.MethodPost, "/api/inventory", token, product)
	if rec.Code != http.StatusBadRequest || testutil.ErrorMessage(t, rec) != "Product code already exists" {
		t.Fatalf("duplicate code = %d %s", rec.Code, rec.Body.String())
	}

	stockPath := fmt.Sprintf("/api/inventory/%d/stock", created.ID)
	for _, body := range []string{`{"stock":-1}`, `{}`, `{"stock":"x"}`} {
		if rec := testutil.Do(t, r, http.MethodPatch, stockPath, token, body); rec.Code != http.StatusBadRequest {
			t.Errorf("PATCH %s = %d", body, rec.Code)
		}
	}
	rec = testutil.Do(t, r, http.MethodPatch, stockPath, token, `{"stock":0}`)
	if rec.Code != http.StatusOK || testutil.Decode[dtos.ProductResponse](t, rec).Stock != 0 {
		t.Fatalf("PATCH stock 0 = %d %s", rec.Code, rec.Body.String())
	}

	if rec := testutil.Do(t, r, http.MethodGet, "/api/inventory/abc", token, nil); rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric id = %d", rec.Code)
	}
	if rec := testutil.Do(t, r, http.MethodDelete, "/api/inventory/9999", token, nil); rec.Code != http.StatusNotFound {
		t.Errorf("delete missing = %d", rec.Code)
	}
	rec = testutil.Do(t, r, http.MethodGet, "/api/inventory/stats/summary", token, nil)
	if rec.Code != http.StatusOK || testutil.Decode[dtos.InventorySummary](t, rec).LowStock != 1 {
		t.Fatalf("summary = %d %s", rec.Code, rec.Body.String())
	}
}

func TestStoreDeleteCascadesOverHTTP(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)
	_, token := testutil.CreateUser(t, db, "u@x.com")

	rec := testutil.Do(t, r, http.MethodPost, "/api/stores", token, map[string]string{"name": "Temp", "address": "1 Temp St"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create store = %d %s", rec.Code, rec.Body.String())
	}
	store := testutil.Decode[dtos.StoreResponse](t, rec)

	testutil.Do(t, r, http.MethodPost, "/api/inventory", token, map[string]interface{}{"name": "X", "code": "X1", "store_id": store.ID})
	testutil.Do(t, r, http.MethodPost, "/api/employees", token, map[string]interface{}{"name": "E", "email": "e@x.com", "store_id": fmt.Sprint(store.ID)})
	testutil.Do(t, r, http.MethodPost, "/api/sales", token, map[string]interface{}{"customer": "C", "store_id": store.ID, "amount": 10})
	testutil.Do(t, r, http.MethodPost, "/api/expenses", token, map[string]interface{}{"name": "R", "amount": 10, "store_id": store.ID})

	rec = testutil.Do(t, r, http.MethodDelete, fmt.Sprintf("/api/stores/%d", store.ID), token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete store = %d %s", rec.Code, rec.Body.String())
	}

	for _, path := range []string{"/api/inventory", "/api/employees", "/api/sales", "/api/expenses"} {
		rec := testutil.Do(t, r, http.MethodGet, path, token, nil)
		if rec.Code != http.StatusOK || rec.Body.String() != "[]" {
			t.Errorf("GET %s after store delete = %d %s", path, rec.Code, rec.Body.String())
		}
	}
}

func TestEmployeeAndPayrollEndpoints(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)
	_, token := testutil.CreateUser(t, db, "u@x.com")
	store := testutil.CreateStore(t, db, "Main")

	emp := map[string]interface{}{"name": "E", "email": "e@x.com", "store_id": store.ID, "salary": 100}
	rec := testutil.Do(t, r, http.MethodPost, "/api/employees", token, emp)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create employee = %d %s", rec.Code, rec.Body.String())
	}
	employee := testutil.Decode[dtos.EmployeeResponse](t, rec)

	rec = testutil.Do(t, r, http.MethodPost, "/api/employees", token, emp)
	if rec.Code != http.StatusBadRequest || testutil.ErrorMessage(t, rec) != "Employee with this email already exists" {
		t.Fatalf("duplicate employee = %d %s", rec.Code, rec.Body.String())
	}

	rec = testutil.Do(t, r, http.MethodPut, fmt.Sprintf("/api/employees/%d", employee.ID), token, map[string]string{"status": "inactive"})
	if rec.Code != http.StatusOK || testutil.Decode[dtos.EmployeeResponse](t, rec).Status != "inactive" {
		t.Fatalf("update status = %d %s", rec.Code, rec.Body.String())
	}

	slip := map[string]interface{}{"employee_id": employee.ID, "month": 5, "year": 2024, "basic_salary": 100}
	rec = testutil.Do(t, r, http.MethodPost, "/api/payroll", token, slip)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create payroll = %d %s", rec.Code, rec.Body.String())
	}
	rec = testutil.Do(t, r, http.MethodPost, "/api/payroll", token, slip)
	if rec.Code != http.StatusBadRequest || testutil.ErrorMessage(t, rec) != "Payroll already exists for this employee and period" {
		t.Fatalf("duplicate payroll = %d %s", rec.Code, rec.Body.String())
	}

	rec = testutil.Do(t, r, http.MethodGet, fmt.Sprintf("/api/payroll/employee/%d", employee.ID), token, nil)
	if rec.Code != http.StatusOK || len(testutil.Decode[[]dtos.PayrollResponse](t, rec)) != 1 {
		t.Fatalf("payroll by employee = %d %s", rec.Code, rec.Body.String())
	}

	slip["month"] = 13
	if rec := testutil.Do(t, r, http.MethodPost, "/api/payroll", token, slip); rec.Code != http.StatusBadRequest {
		t.Fatalf("month 13 = %d", rec.Code)
	}
}

func TestExpenseSummaryEndpoint(t *testing.T) {
	db := testutil.NewDB(t)
	r := testutil.NewRouter(t, db)
	user, token := testutil.CreateUser(t, db, "u@x.com")

	rec := testutil.Do(t, r, http.MethodPost, "/api/expenses", token, map[string]interface{}{"name": "Tea", "amount": 12.5, "category": "Pantry"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create expense = %d %s", rec.Code, rec.Body.String())
	}
	expense := testutil.Decode[dtos.ExpenseResponse](t, rec)
	if expense.Name != "Tea" || expense.CreatedBy == nil || *expense.CreatedBy != user.ID {
		t.Fatalf("expense = %+v", expense)
	}

	rec = testutil.Do(t, r, http.MethodGet, "/api/expenses/stats/summary", token, nil)
	summary := testutil.Decode[dtos.ExpenseSummary](t, rec)
	if summary.TotalCount != 1 || summary.ThisMonthTotal != 12.5 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestNewEngineCORS(t *testing.T) {
	r := routes.NewEngine([]string{"http://localhost:3000"})
	r.GET("/api/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("allow origin = %q (status %d)", got, rec.Code)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("foreign origin allowed: %q", got)
	}
}
