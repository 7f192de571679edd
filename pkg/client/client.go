// Package client is the API proxy for the expense tracker backend.
//
// It mirrors the REST surface and returns a uniform result for every call:
// the decoded data on success, or the parsed error body of the response.
// Transport and decoding failures are not classified further, they are
// reported as a generic error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category mirrors the category resource of the API.
type Category struct {
	ID     uint            `json:"id"`
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
}

// Expense mirrors the flat expense resource of the API.
type Expense struct {
	ID          uint            `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  uint            `json:"categoryId"`
}

// ExpenseDetails mirrors the expense resource with its category embedded.
type ExpenseDetails struct {
	ID          uint            `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
}

// ErrorMessage is the error body of the API.
type ErrorMessage struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// Result is the uniform outcome of an API call.
type Result[T any] struct {
	Data   T
	Status int
	Error  *ErrorMessage
}

// Success reports whether the call succeeded.
func (r Result[T]) Success() bool {
	return r.Error == nil
}

// Client issues HTTP calls against the backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the API reachable under baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewWithHTTPClient returns a Client using the http.Client passed in.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) GetCategories(ctx context.Context) Result[[]Category] {
	return call[[]Category](ctx, c, http.MethodGet, "/api/categories", nil)
}

func (c *Client) GetCategory(ctx context.Context, id uint) Result[Category] {
	return call[Category](ctx, c, http.MethodGet, fmt.Sprintf("/api/categories/%d", id), nil)
}

func (c *Client) CreateCategory(ctx context.Context, category Category) Result[Category] {
	return call[Category](ctx, c, http.MethodPost, "/api/categories", category)
}

func (c *Client) UpdateCategory(ctx context.Context, category Category) Result[Category] {
	return call[Category](ctx, c, http.MethodPut, fmt.Sprintf("/api/categories/%d", category.ID), category)
}

func (c *Client) DeleteCategory(ctx context.Context, id uint) Result[struct{}] {
	return call[struct{}](ctx, c, http.MethodDelete, fmt.Sprintf("/api/categories/%d", id), nil)
}

func (c *Client) GetExpenses(ctx context.Context) Result[[]Expense] {
	return call[[]Expense](ctx, c, http.MethodGet, "/api/expenses", nil)
}

func (c *Client) GetExpense(ctx context.Context, id uint) Result[ExpenseDetails] {
	return call[ExpenseDetails](ctx, c, http.MethodGet, fmt.Sprintf("/api/expenses/%d", id), nil)
}

func (c *Client) CreateExpense(ctx context.Context, expense Expense) Result[ExpenseDetails] {
	return call[ExpenseDetails](ctx, c, http.MethodPost, "/api/expenses", expense)
}

func (c *Client) UpdateExpense(ctx context.Context, expense Expense) Result[ExpenseDetails] {
	return call[ExpenseDetails](ctx, c, http.MethodPut, fmt.Sprintf("/api/expenses/%d", expense.ID), expense)
}

func (c *Client) DeleteExpense(ctx context.Context, id uint) Result[struct{}] {
	return call[struct{}](ctx, c, http.MethodDelete, fmt.Sprintf("/api/expenses/%d", id), nil)
}

// call performs the HTTP request and decodes the response into a result.
func call[T any](ctx context.Context, c *Client, method, path string, body any) Result[T] {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return generalError[T](0)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return generalError[T](0)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return generalError[T](0)
	}
	defer res.Body.Close()

	// Any non-success status carries the error body
	if res.StatusCode >= http.StatusBadRequest {
		var msg ErrorMessage
		if err := json.NewDecoder(res.Body).Decode(&msg); err != nil || msg.Code == "" {
			return generalError[T](res.StatusCode)
		}
		return Result[T]{Status: res.StatusCode, Error: &msg}
	}

	r := Result[T]{Status: res.StatusCode}
	if res.StatusCode == http.StatusNoContent {
		return r
	}

	if err := json.NewDecoder(res.Body).Decode(&r.Data); err != nil {
		return generalError[T](res.StatusCode)
	}

	return r
}

func generalError[T any](status int) Result[T] {
	if status == 0 {
		status = http.StatusInternalServerError
	}

	return Result[T]{
		Status: status,
		Error: &ErrorMessage{
			Code:    "GENERAL_ERROR",
			Message: "Something went wrong, please try again later.",
		},
	}
}
