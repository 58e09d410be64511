package dataservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/carlmjohnson/requests"
	"github.com/tidwall/gjson"
)

// ErrNoRows is returned by Single when the result set is empty.
var ErrNoRows = errors.New("dataservice: no rows in result set")

// Query builds a single request against a table endpoint. Builder methods
// return the query itself for chaining; Execute sends the request.
type Query struct {
	client  *Client
	table   string
	filters [][2]string
	columns string
	order   string
	limit   int
	single  bool
	insert  any
}

func newQuery(c *Client, table string) *Query {
	return &Query{client: c, table: table}
}

// Select restricts the returned columns, e.g. "id,title,done".
func (q *Query) Select(columns string) *Query {
	q.columns = columns
	return q
}

// Insert switches the query to an insert of the given rows. The inserted
// representation is returned by the service and decoded into dest.
func (q *Query) Insert(rows any) *Query {
	q.insert = rows
	return q
}

// Eq adds an equality filter on the given column.
func (q *Query) Eq(column, value string) *Query {
	q.filters = append(q.filters, [2]string{column, "eq." + value})
	return q
}

// Order sorts the result set by the given column.
func (q *Query) Order(column string, ascending bool) *Query {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	q.order = column + "." + dir
	return q
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// Single marks the query as expecting exactly one row. Execute decodes the
// first row of the result set into dest and fails with ErrNoRows when the
// set is empty.
func (q *Query) Single() *Query {
	q.single = true
	return q
}

// Execute sends the query and decodes the response into dest. A nil dest
// discards the response body.
func (q *Query) Execute(ctx context.Context, dest any) error {
	cfg := q.client.cfg

	var raw string
	rb := requests.
		URL(cfg.BaseURL).
		Pathf("/rest/v1/%s", q.table).
		Header("apikey", cfg.APIKey).
		Header("Authorization", cfg.Authorization).
		Client(cfg.HTTPClient).
		ToString(&raw)

	if q.insert != nil {
		rb = rb.
			Method(http.MethodPost).
			Header("Prefer", "return=representation").
			BodyJSON(q.insert)
	}
	if q.columns != "" {
		rb = rb.Param("select", q.columns)
	}
	for _, f := range q.filters {
		rb = rb.Param(f[0], f[1])
	}
	if q.order != "" {
		rb = rb.Param("order", q.order)
	}
	if q.limit > 0 {
		rb = rb.Param("limit", strconv.Itoa(q.limit))
	}

	if err := rb.Fetch(ctx); err != nil {
		return fmt.Errorf("dataservice: query %s: %w", q.table, err)
	}
	if dest == nil {
		return nil
	}

	payload := raw
	if q.single {
		first := gjson.Get(raw, "0")
		if !first.Exists() {
			return ErrNoRows
		}
		payload = first.Raw
	}

	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		return fmt.Errorf("dataservice: decode %s response: %w", q.table, err)
	}
	return nil
}

// RPC invokes a stored procedure by name and returns its raw JSON result.
func (c *Client) RPC(ctx context.Context, name string, args any) (json.RawMessage, error) {
	if args == nil {
		args = map[string]any{}
	}

	var raw string
	err := requests.
		URL(c.cfg.BaseURL).
		Pathf("/rest/v1/rpc/%s", name).
		Header("apikey", c.cfg.APIKey).
		Header("Authorization", c.cfg.Authorization).
		Client(c.cfg.HTTPClient).
		BodyJSON(args).
		ToString(&raw).
		Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("dataservice: rpc %s: %w", name, err)
	}
	return json.RawMessage(raw), nil
}
