// Package sheets talks to the spreadsheet-backed remote store. Each entity
// type is a uniform resource ("prices", "users") whose rows are addressed by
// positional id; responses wrap the rows in a named top-level collection.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"flightdealclub/internal/domain"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient returns a store client for the sheet at baseURL. token, when
// non-empty, is sent as a bearer token on every request.
func NewClient(httpClient *http.Client, baseURL, token string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, baseURL: baseURL, token: token}
}

var (
	_ domain.CatalogStore = (*Client)(nil)
	_ domain.UserStore    = (*Client)(nil)
)

type pricesEnvelope struct {
	Prices []domain.Destination `json:"prices"`
}

type priceRowEnvelope struct {
	Price domain.Destination `json:"price"`
}

type usersEnvelope struct {
	Users []domain.User `json:"users"`
}

type userRowEnvelope struct {
	User domain.User `json:"user"`
}

func (c *Client) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	var envelope pricesEnvelope
	if err := c.get(ctx, "prices", &envelope); err != nil {
		return nil, err
	}
	return envelope.Prices, nil
}

func (c *Client) AppendDestination(ctx context.Context, d domain.Destination) error {
	return c.write(ctx, http.MethodPost, "prices", 0, priceRowEnvelope{Price: d})
}

func (c *Client) UpdateDestination(ctx context.Context, d domain.Destination) error {
	return c.write(ctx, http.MethodPut, "prices", d.RowID, priceRowEnvelope{Price: d})
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var envelope usersEnvelope
	if err := c.get(ctx, "users", &envelope); err != nil {
		return nil, err
	}
	return envelope.Users, nil
}

func (c *Client) AppendUser(ctx context.Context, u domain.User) error {
	return c.write(ctx, http.MethodPost, "users", 0, userRowEnvelope{User: u})
}

func (c *Client) get(ctx context.Context, resource string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+resource, nil)
	if err != nil {
		return &domain.RemoteStoreError{Op: "list", Resource: resource, Err: err}
	}
	c.setHeaders(req)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.RemoteStoreError{Op: "list", Resource: resource, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &domain.RemoteStoreError{Op: "list", Resource: resource, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.RemoteStoreError{Op: "list", Resource: resource, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) write(ctx context.Context, method, resource string, rowID int, body any) error {
	op := "append"
	url := c.baseURL + "/" + resource
	if method == http.MethodPut {
		op = "update"
		url = fmt.Sprintf("%s/%d", url, rowID)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return &domain.RemoteStoreError{Op: op, Resource: resource, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return &domain.RemoteStoreError{Op: op, Resource: resource, Err: err}
	}
	c.setHeaders(req)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.RemoteStoreError{Op: op, Resource: resource, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.RemoteStoreError{Op: op, Resource: resource, Status: resp.StatusCode}
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
