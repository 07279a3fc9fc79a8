// Package testutil holds the shared fixtures for package tests: an in-memory
// SQLite database with the production schema, a wired router and request
// helpers.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"retail-api/config"
	"retail-api/models"
	"retail-api/routes"
	"retail-api/utils/token"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const Secret = "test-secret"

// NewDB opens a private in-memory database with foreign keys enforced and
// runs the migrations. One connection keeps every query on the same memory
// database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := config.GormConfig()
	cfg.Logger = logger.Default.LogMode(logger.Silent)

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), cfg)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func Tokens() *token.Manager {
	return token.NewManager(Secret, token.DefaultTTL)
}

// NewRouter returns the full API on top of db.
func NewRouter(t testing.TB, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	routes.RegisterRoutes(r, db, Tokens())
	return r
}

// CreateUser inserts a user directly and returns it with a valid bearer token.
func CreateUser(t testing.TB, db *gorm.DB, email string) (models.User, string) {
	t.Helper()

	user := models.User{Name: "Test User", Email: email, Password: "not-a-hash"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	signed, err := Tokens().Generate(user.ID, user.Email)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return user, signed
}

func CreateStore(t testing.TB, db *gorm.DB, name string) models.Store {
	t.Helper()

	store := models.Store{Name: name, Address: name + " road"}
	if err := db.Create(&store).Error; err != nil {
		t.Fatalf("create store: %v", err)
	}
	return store
}

func CreateEmployee(t testing.TB, db *gorm.DB, storeID uint, email string) models.Employee {
	t.Helper()

	employee := models.Employee{
		Name:     "Employee " + email,
		Email:    email,
		Position: "Cashier",
		Salary:   15000,
		Status:   models.EmployeeActive,
		StoreID:  storeID,
	}
	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("create employee: %v", err)
	}
	return employee
}

// Do sends body as JSON to h and returns the recorded response. An empty
// bearer sends no Authorization header.
func Do(t testing.TB, h http.Handler, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func Decode[T any](t testing.TB, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return out
}

// ErrorMessage returns the {"error"} field of a failed response.
func ErrorMessage(t testing.TB, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return Decode[map[string]string](t, rec)["error"]
}
