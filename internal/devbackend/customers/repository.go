// Package customers holds the development backend's read-only customer
// records.
package customers

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/partsadmin/internal/common"
	"github.com/dmitrijs2005/partsadmin/internal/filex"
)

// Customer is the wire shape served under /api/Customers.
type Customer struct {
	CustomerID string `json:"customerId" yaml:"customerId"`
	Name       string `json:"name" yaml:"name"`
	Address    string `json:"address" yaml:"address"`
	City       string `json:"city" yaml:"city"`
	State      string `json:"state" yaml:"state"`
	Pincode    string `json:"pincode" yaml:"pincode"`
}

// Repository serves customers in insertion order.
type Repository struct {
	mu    sync.RWMutex
	items []Customer
}

func NewRepository(items []Customer) *Repository {
	return &Repository{items: append([]Customer(nil), items...)}
}

func (r *Repository) All(ctx context.Context) []Customer {
	return r.filter(func(Customer) bool { return true })
}

// ByState matches the state exactly, as the client-side predicate does.
func (r *Repository) ByState(ctx context.Context, state string) []Customer {
	return r.filter(func(c Customer) bool { return c.State == state })
}

func (r *Repository) ByCity(ctx context.Context, city string) []Customer {
	return r.filter(func(c Customer) bool { return c.City == city })
}

func (r *Repository) Get(ctx context.Context, id string) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.CustomerID == id {
			return c, nil
		}
	}
	return Customer{}, fmt.Errorf("customer %s: %w", id, common.ErrNotFound)
}

func (r *Repository) filter(keep func(Customer) bool) []Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Customer, 0, len(r.items))
	for _, c := range r.items {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// LoadSeed reads a JSON or YAML list of customers.
func LoadSeed(path string) ([]Customer, error) {
	var items []Customer
	if err := filex.Decode(path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// DefaultSeed is the built-in data set used when no seed file is given.
func DefaultSeed() []Customer {
	return []Customer{
		{CustomerID: "1", Name: "Acme Auto Parts", Address: "12 Sunset Blvd", City: "Los Angeles", State: "CA", Pincode: "90001"},
		{CustomerID: "2", Name: "Bay Brake Supply", Address: "400 Market St", City: "San Francisco", State: "CA", Pincode: "94105"},
		{CustomerID: "3", Name: "Harbor Gear Co", Address: "88 Pier Ave", City: "Los Angeles", State: "CA", Pincode: "90731"},
		{CustomerID: "4", Name: "Lone Star Motors", Address: "5 Congress Ave", City: "Austin", State: "TX", Pincode: "73301"},
		{CustomerID: "5", Name: "Gotham Gaskets", Address: "250 Broadway", City: "New York", State: "NY", Pincode: "10007"},
		{CustomerID: "6", Name: "Hill Country Hubs", Address: "77 Main St", City: "Austin", State: "TX", Pincode: "73344"},
	}
}
