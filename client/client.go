// Package client is the Go consumer of the HTTP API: a typed request layer
// (Client) and the session cache built on top of it (DataStore).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"retail-api/dtos"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx answer; Message is the server's {"error"} text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api". A nil httpClient gets a 10s timeout client.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func itemPath(collection string, id uint) string {
	return "/" + collection + "/" + strconv.FormatUint(uint64(id), 10)
}

// Auth

func (c *Client) Register(ctx context.Context, input dtos.RegisterInput) (*dtos.AuthResponse, error) {
	var out dtos.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and keeps the returned token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*dtos.AuthResponse, error) {
	var out dtos.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", dtos.LoginInput{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

func (c *Client) Verify(ctx context.Context) (*dtos.VerifyResponse, error) {
	var out dtos.VerifyResponse
	if err := c.do(ctx, http.MethodGet, "/auth/verify", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Profile(ctx context.Context) (*dtos.UserResponse, error) {
	var out dtos.UserResponse
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, input dtos.UpdateProfileInput) (*dtos.UserResponse, error) {
	var out dtos.UserResponse
	if err := c.do(ctx, http.MethodPut, "/auth/profile", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	input := dtos.ChangePasswordInput{CurrentPassword: current, NewPassword: next}
	return c.do(ctx, http.MethodPut, "/auth/change-password", input, nil)
}

// Stores

func (c *Client) Stores(ctx context.Context) ([]dtos.StoreResponse, error) {
	var out []dtos.StoreResponse
	if err := c.do(ctx, http.MethodGet, "/stores", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateStore(ctx context.Context, input dtos.StoreInput) (*dtos.StoreResponse, error) {
	var out dtos.StoreResponse
	if err := c.do(ctx, http.MethodPost, "/stores", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStore(ctx context.Context, id uint, input dtos.StoreUpdateInput) (*dtos.StoreResponse, error) {
	var out dtos.StoreResponse
	if err := c.do(ctx, http.MethodPut, itemPath("stores", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteStore(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, itemPath("stores", id), nil, nil)
}

// Inventory

func (c *Client) Products(ctx context.Context) ([]dtos.ProductResponse, error) {
	var out []dtos.ProductResponse
	if err := c.do(ctx, http.MethodGet, "/inventory", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, input dtos.ProductInput) (*dtos.ProductResponse, error) {
	var out dtos.ProductResponse
	if err := c.do(ctx, http.MethodPost, "/inventory", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id uint, input dtos.ProductUpdateInput) (*dtos.ProductResponse, error) {
	var out dtos.ProductResponse
	if err := c.do(ctx, http.MethodPut, itemPath("inventory", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStock(ctx context.Context, id uint, stock int) (*dtos.ProductResponse, error) {
	var out dtos.ProductResponse
	if err := c.do(ctx, http.MethodPatch, itemPath("inventory", id)+"/stock", dtos.StockInput{Stock: &stock}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, itemPath("inventory", id), nil, nil)
}

func (c *Client) InventorySummary(ctx context.Context) (*dtos.InventorySummary, error) {
	var out dtos.InventorySummary
	if err := c.do(ctx, http.MethodGet, "/inventory/stats/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Sales

func (c *Client) Sales(ctx context.Context) ([]dtos.SaleResponse, error) {
	var out []dtos.SaleResponse
	if err := c.do(ctx, http.MethodGet, "/sales", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSale(ctx context.Context, input dtos.SaleInput) (*dtos.SaleResponse, error) {
	var out dtos.SaleResponse
	if err := c.do(ctx, http.MethodPost, "/sales", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSale(ctx context.Context, id uint, input dtos.SaleUpdateInput) (*dtos.SaleResponse, error) {
	var out dtos.SaleResponse
	if err := c.do(ctx, http.MethodPut, itemPath("sales", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSale(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, itemPath("sales", id), nil, nil)
}

// Employees

func (c *Client) Employees(ctx context.Context) ([]dtos.EmployeeResponse, error) {
	var out []dtos.EmployeeResponse
	if err := c.do(ctx, http.MethodGet, "/employees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateEmployee(ctx context.Context, input dtos.EmployeeInput) (*dtos.EmployeeResponse, error) {
	var out dtos.EmployeeResponse
	if err := c.do(ctx, http.MethodPost, "/employees", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id uint, input dtos.EmployeeUpdateInput) (*dtos.EmployeeResponse, error) {
	var out dtos.EmployeeResponse
	if err := c.do(ctx, http.MethodPut, itemPath("employees", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, itemPath("employees", id), nil, nil)
}

// Expenses

func (c *Client) Expenses(ctx context.Context) ([]dtos.ExpenseResponse, error) {
	var out []dtos.ExpenseResponse
	if err := c.do(ctx, http.MethodGet, "/expenses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateExpense(ctx context.Context, input dtos.ExpenseInput) (*dtos.ExpenseResponse, error) {
	var out dtos.ExpenseResponse
	if err := c.do(ctx, http.MethodPost, "/expenses", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateExpense(ctx context.Context, id uint, input dtos.ExpenseUpdateInput) (*dtos.ExpenseResponse, error) {
	var out dtos.ExpenseResponse
	if err := c.do(ctx, http.MethodPut, itemPath("expenses", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteExpense(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, itemPath("expenses", id), nil, nil)
}

func (c *Client) ExpenseSummary(ctx context.Context) (*dtos.ExpenseSummary, error) {
	var out dtos.ExpenseSummary
	if err := c.do(ctx, http.MethodGet, "/expenses/stats/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Payroll

func (c *Client) Payrolls(ctx context.Context) ([]dtos.PayrollResponse, error) {
	var out []dtos.PayrollResponse
	if err := c.do(ctx, http.MethodGet, "/payroll", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) EmployeePayrolls(ctx context.Context, employeeID uint) ([]dtos.PayrollResponse, error) {
	var out []dtos.PayrollResponse
	if err := c.do(ctx, http.MethodGet, itemPath("payroll/employee", employeeID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePayroll(ctx context.Context, input dtos.PayrollInput) (*dtos.PayrollResponse, error) {
	var out dtos.PayrollResponse
	if err := c.do(ctx, http.MethodPost, "/payroll", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePayroll(ctx context.Context, id uint, input dtos.PayrollUpdateInput) (*dtos.PayrollResponse, error) {
	var out dtos.PayrollResponse
	if err := c.do(ctx, http.MethodPut, itemPath("payroll", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePayroll(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, itemPath("payroll", id), nil, nil)
}

func (c *Client) PayrollSummary(ctx context.Context) (*dtos.PayrollSummary, error) {
	var out dtos.PayrollSummary
	if err := c.do(ctx, http.MethodGet, "/payroll/stats/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Dashboard(ctx context.Context) (*dtos.DashboardSummary, error) {
	var out dtos.DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
