package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/partsadmin/internal/client/models"
)

// CustomersClient reads customers through the local proxy. Every call takes
// the Authorization header value explicitly; the client holds no credential.
type CustomersClient struct {
	t transport
}

// NewCustomersClient builds a client for the proxy at baseURL, e.g.
// "http://localhost:3000/api". A nil hc uses http.DefaultClient.
func NewCustomersClient(baseURL string, hc *http.Client) *CustomersClient {
	return &CustomersClient{t: newTransport(baseURL, hc)}
}

func (c *CustomersClient) List(ctx context.Context, authorization string) ([]models.Customer, error) {
	return c.list(ctx, authorization, "/customers")
}

func (c *CustomersClient) ListByState(ctx context.Context, authorization, state string) ([]models.Customer, error) {
	return c.list(ctx, authorization, "/customers/state/"+url.PathEscape(state))
}

func (c *CustomersClient) ListByCity(ctx context.Context, authorization, city string) ([]models.Customer, error) {
	return c.list(ctx, authorization, "/customers/city/"+url.PathEscape(city))
}

func (c *CustomersClient) Get(ctx context.Context, authorization, id string) (*models.Customer, error) {
	var out models.Customer
	if err := c.t.do(ctx, http.MethodGet, "/customers/"+url.PathEscape(id), authorization, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *CustomersClient) list(ctx context.Context, authorization, path string) ([]models.Customer, error) {
	var out []models.Customer
	if err := c.t.do(ctx, http.MethodGet, path, authorization, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Customer{}
	}
	return out, nil
}
