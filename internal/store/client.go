// Package store is a thin HTTP client for the hosted table backend
// (PostgREST-style rows plus a password-grant auth endpoint). It moves raw
// JSON rows only; field-name translation belongs to the callers.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Error is a response the backend produced deliberately, as opposed to a
// transport failure.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: %d %s", e.Status, e.Message)
}

// ErrNotFound is returned by Single when no row matches.
var ErrNotFound = errors.New("store: row not found")

// IsUnavailable reports whether err is a transport-level failure (backend
// unreachable) rather than an explicit backend response.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	var se *Error
	if errors.As(err, &se) {
		return false
	}
	return !errors.Is(err, ErrNotFound)
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	auth    *Auth
}

func New(baseURL, apiKey string) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	c.auth = &Auth{c: c}
	return c
}

func (c *Client) Auth() *Auth { return c.auth }

// Table starts a query against a named table.
func (c *Client) Table(name string) *Query {
	return &Query{c: c, table: name}
}

type Query struct {
	c       *Client
	table   string
	filters url.Values
	order   string
	limit   int
}

// Eq adds an equality filter on a column.
func (q *Query) Eq(column string, value any) *Query {
	if q.filters == nil {
		q.filters = url.Values{}
	}
	q.filters.Set(column, fmt.Sprintf("eq.%v", value))
	return q
}

// Order sets the result ordering; descending when desc is true.
func (q *Query) Order(column string, desc bool) *Query {
	q.order = column + ".asc"
	if desc {
		q.order = column + ".desc"
	}
	return q
}

func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

func (q *Query) url() string {
	v := url.Values{}
	for k, vals := range q.filters {
		v.Set(k, vals[0])
	}
	if q.order != "" {
		v.Set("order", q.order)
	}
	if q.limit > 0 {
		v.Set("limit", fmt.Sprintf("%d", q.limit))
	}
	u := q.c.baseURL + "/rest/v1/" + q.table
	if enc := v.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// Select fetches all matching rows as raw JSON objects.
func (q *Query) Select(ctx context.Context) ([]json.RawMessage, error) {
	body, err := q.c.do(ctx, http.MethodGet, q.url(), nil)
	if err != nil {
		return nil, err
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode %s rows: %w", q.table, err)
	}
	return rows, nil
}

// Single fetches exactly one matching row, or ErrNotFound.
func (q *Query) Single(ctx context.Context) (json.RawMessage, error) {
	q.limit = 1
	rows, err := q.Select(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

// Insert writes a new row.
func (q *Query) Insert(ctx context.Context, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s insert: %w", q.table, err)
	}
	_, err = q.c.do(ctx, http.MethodPost, q.url(), payload)
	return err
}

// Update patches every row matched by the filters. At least one filter is
// required so a bad call can never rewrite a whole table.
func (q *Query) Update(ctx context.Context, record any) error {
	if len(q.filters) == 0 {
		return fmt.Errorf("update %s: no filter set", q.table)
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s update: %w", q.table, err)
	}
	_, err = q.c.do(ctx, http.MethodPatch, q.url(), payload)
	return err
}

// Delete removes every row matched by the filters.
func (q *Query) Delete(ctx context.Context) error {
	if len(q.filters) == 0 {
		return fmt.Errorf("delete %s: no filter set", q.table)
	}
	_, err := q.c.do(ctx, http.MethodDelete, q.url(), nil)
	return err
}

func (c *Client) do(ctx context.Context, method, rawURL string, body []byte) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, rd)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	token := c.apiKey
	if s := c.auth.Session(); s != nil {
		token = s.AccessToken
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=minimal")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized {
			// The session went stale out-of-band; drop it and tell listeners.
			c.auth.invalidate()
		}
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(data, &apiErr)
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return nil, &Error{Status: resp.StatusCode, Message: apiErr.Message}
	}

	return data, nil
}
