package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"employee-service/internal/employee"
)

var ErrNotFound = errors.New("employee not found")

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned %d", e.StatusCode)
	}
	return fmt.Sprintf("api returned %d: %s", e.StatusCode, e.Message)
}

// Client talks to the employee REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) GetAllEmployees(ctx context.Context) ([]employee.Employee, error) {
	var employees []employee.Employee
	err := c.doJSON(ctx, http.MethodGet, "/api/Employee/GetAllEmployees", nil, &employees)
	return employees, err
}

// Search calls the server-side filter. The sort direction is sent only when a sort
// column or paging is requested.
func (c *Client) Search(ctx context.Context, filter employee.Filter) ([]employee.Employee, error) {
	q := url.Values{}
	q.Set("searchValue", filter.SearchValue)
	if filter.SearchColumn != "" {
		q.Set("searchColumn", filter.SearchColumn)
	}
	if filter.SortColumn != "" {
		q.Set("sortColumn", filter.SortColumn)
	}
	if filter.SortColumn != "" || filter.Paging != nil {
		q.Set("ascending", strconv.FormatBool(!filter.Descending))
	}
	if p := filter.Paging; p != nil {
		q.Set("page", strconv.Itoa(p.Page))
		q.Set("pageSize", strconv.Itoa(p.PageSize))
	}

	var employees []employee.Employee
	err := c.doJSON(ctx, http.MethodGet, "/api/Employee/SearchDataBySearchParameter?"+q.Encode(), nil, &employees)
	return employees, err
}

func (c *Client) GetEmployee(ctx context.Context, id int64) (*employee.Employee, error) {
	var e employee.Employee
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/Employee/GetEmployee/%d", id), nil, &e)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) AddEmployee(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	var created employee.Employee
	if err := c.doJSON(ctx, http.MethodPost, "/api/Employee/AddEmployee", e, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, e *employee.Employee) error {
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/Employee/UpdateEmployee/%d", e.ID), e, nil)
}

func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/Employee/DeleteEmployee/%d", id), nil, nil)
}

func (c *Client) DeleteEmployees(ctx context.Context, ids []int64) error {
	if ids == nil {
		ids = []int64{}
	}
	return c.doJSON(ctx, http.MethodDelete, "/api/Employee/DeleteMultiple", ids, nil)
}

func (c *Client) GetAllStates(ctx context.Context) ([]employee.State, error) {
	var states []employee.State
	err := c.doJSON(ctx, http.MethodGet, "/api/Employee/GetAllStates", nil, &states)
	return states, err
}

// PDFReport downloads the server-rendered PDF report.
func (c *Client) PDFReport(ctx context.Context, search string) ([]byte, error) {
	return c.download(ctx, "/api/Reports/GeneratePDFReport?SearchValue="+url.QueryEscape(search))
}

// ExcelReport downloads the server-rendered XLSX report.
func (c *Client) ExcelReport(ctx context.Context, search string) ([]byte, error) {
	return c.download(ctx, "/api/Reports/GenerateExcelReport?SearchValue="+url.QueryEscape(search))
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) download(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return data, nil
}

// send executes the request and turns non-2xx answers into *APIError.
func (c *Client) send(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	apiErr := &APIError{StatusCode: resp.StatusCode}
	var payload struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
		apiErr.Message = payload.Error
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return nil, apiErr
}
